package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
)

// Directory exposes stored users as identities. It never returns secrets.
type Directory struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewDirectory(db dbx.DBTX, m repomanager.RepositoryManager) *Directory {
	return &Directory{db: db, repomanager: m}
}

// ListUsers returns every identity in store order.
func (s *Directory) ListUsers(ctx context.Context) ([]*models.Identity, error) {
	records, err := s.repomanager.Credentials(s.db).FindAll(ctx)
	if err != nil {
		return nil, common.Internal("list credentials", err)
	}

	result := make([]*models.Identity, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.Identity())
	}
	return result, nil
}

// GetUser returns the identity stored under id.
func (s *Directory) GetUser(ctx context.Context, id string) (*models.Identity, error) {
	rec, err := s.repomanager.Credentials(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.Internal("find credential", err)
	}
	return rec.Identity(), nil
}
