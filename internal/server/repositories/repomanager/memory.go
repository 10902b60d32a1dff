package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/credentials"
)

// InMemoryRepositoryManager serves a single process-local store. The DBTX
// handed to Credentials is ignored and migrations are a no-op.
type InMemoryRepositoryManager struct {
	credentials *credentials.MemoryRepository
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Credentials(dbx.DBTX) credentials.Repository {
	return m.credentials
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{credentials: credentials.NewMemoryRepository()}
}
