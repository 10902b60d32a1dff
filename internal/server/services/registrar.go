package services

import (
	"context"
	"errors"
	"net/mail"
	"unicode"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
)

const minPasswordLength = 8

// Registrar creates password credentials.
type Registrar struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      SecretHasher
}

func NewRegistrar(db dbx.DBTX, m repomanager.RepositoryManager, h SecretHasher) *Registrar {
	return &Registrar{db: db, repomanager: m, hasher: h}
}

// Register stores a new record for email with a hashed password.
func (s *Registrar) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	email = common.NormalizeEmail(email)
	if !validEmail(email) {
		return nil, common.ErrorInvalidInput
	}
	if !StrongPassword(password) {
		return nil, common.ErrorWeakPassword
	}

	repo := s.repomanager.Credentials(s.db)

	_, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrorAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, common.Internal("find credential", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.Internal("hash password", err)
	}

	rec, err := repo.Create(ctx, &models.CredentialRecord{Email: email, PasswordHash: hashed})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, common.Internal("create credential", err)
	}

	return rec.Identity(), nil
}

// validEmail accepts a bare addr-spec, no display name or angle brackets.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// StrongPassword requires at least eight characters including a lower-case
// letter, an upper-case letter, a digit and a symbol.
func StrongPassword(p string) bool {
	var n int
	var lower, upper, digit, symbol bool
	for _, r := range p {
		n++
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return n >= minPasswordLength && lower && upper && digit && symbol
}
