package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
)

// CredentialValidator checks an email/password pair against the store.
type CredentialValidator struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      SecretHasher

	// dummyHash is verified when there is nothing real to compare against,
	// so unknown emails cost about as much as wrong passwords.
	dummyHash string
}

func NewCredentialValidator(db dbx.DBTX, m repomanager.RepositoryManager, h SecretHasher) (*CredentialValidator, error) {
	seed, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("dummy hash seed: %w", err)
	}
	dummy, err := h.Hash(seed)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &CredentialValidator{db: db, repomanager: m, hasher: h, dummyHash: dummy}, nil
}

// Validate returns the identity owning email if password matches. Unknown
// email, missing password and wrong password all yield
// common.ErrorInvalidCredentials.
func (s *CredentialValidator) Validate(ctx context.Context, email, password string) (*models.Identity, error) {
	repo := s.repomanager.Credentials(s.db)

	rec, err := repo.FindByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.Internal("find credential", err)
	}

	if !rec.HasPassword() {
		s.hasher.Verify(password, s.dummyHash)
		return nil, common.ErrorInvalidCredentials
	}

	if !s.hasher.Verify(password, rec.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return rec.Identity(), nil
}
