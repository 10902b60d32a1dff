// Package credentials is the credential store adapter: lookup, listing,
// creation and update of credential records.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// Repository is the store contract the authentication core depends on.
//
// FindAll returns records in a stable order; callers rely on it for
// deterministic first-match semantics.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.CredentialRecord, error)
	FindByEmail(ctx context.Context, email string) (*models.CredentialRecord, error)
	FindByBiometricDigest(ctx context.Context, digest []byte) (*models.CredentialRecord, error)
	FindAll(ctx context.Context) ([]*models.CredentialRecord, error)
	Create(ctx context.Context, rec *models.CredentialRecord) (*models.CredentialRecord, error)
	Update(ctx context.Context, email string, upd models.CredentialUpdate) error
}
