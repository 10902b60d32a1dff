package cli

import (
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/secrets"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
)

// hash prints the encoded hash of a secret, for seeding or migrating records
// by hand.
func (a *App) hash(args []string) error {
	fs := a.flagSet("hash")
	algo := fs.String("algo", a.config.HashAlgorithm, "argon2id or bcrypt")
	cost := fs.Int("cost", a.config.BcryptCost, "bcrypt cost")
	if err := parse(fs, args); err != nil {
		return err
	}

	algorithm, err := secrets.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}
	h, err := secrets.NewHasher(secrets.Params{Algorithm: algorithm, BcryptCost: *cost})
	if err != nil {
		return err
	}

	secret, err := getSecret(a.reader, "Enter secret", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	encoded, err := h.Hash(string(secret))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, encoded)
	return nil
}
