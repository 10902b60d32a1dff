package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credkeeper/internal/server/secrets"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
)

// openStore opens PostgreSQL and applies migrations. It is a test seam.
var openStore = func(ctx context.Context, dsn string) (dbx.DBTX, repomanager.RepositoryManager, func() error, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("db open error: %w", err)
	}
	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("migration error: %w", err)
	}
	return db, m, db.Close, nil
}

// register creates an account without going through the server. The
// password policy still applies.
func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	dsn := fs.String("d", a.config.DatabaseDSN, "database DSN")
	emailFlag := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}

	h, err := secrets.NewHasher(secrets.Params{
		Algorithm:  secrets.Algorithm(a.config.HashAlgorithm),
		BcryptCost: a.config.BcryptCost,
	})
	if err != nil {
		return err
	}

	email, err := a.email(*emailFlag)
	if err != nil {
		return err
	}
	password, err := getSecret(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	db, m, closeFn, err := openStore(ctx, *dsn)
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := services.NewRegistrar(db, m, h).Register(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s (id %s)\n", id.Email, id.ID)
	return nil
}
