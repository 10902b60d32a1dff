package credentials

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps records in insertion order. It enforces the same
// uniqueness rules as the PostgreSQL schema. Returned records are copies.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []*models.CredentialRecord
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func clone(rec *models.CredentialRecord) *models.CredentialRecord {
	c := *rec
	if rec.BiometricDigest != nil {
		c.BiometricDigest = bytes.Clone(rec.BiometricDigest)
	}
	return &c
}

func (r *MemoryRepository) indexByEmail(email string) int {
	for i, rec := range r.records {
		if rec.Email == email {
			return i
		}
	}
	return -1
}

func (r *MemoryRepository) digestTaken(digest []byte, exceptEmail string) bool {
	if len(digest) == 0 {
		return false
	}
	for _, rec := range r.records {
		if rec.Email != exceptEmail && bytes.Equal(rec.BiometricDigest, digest) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.CredentialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return clone(rec), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.CredentialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexByEmail(email)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return clone(r.records[i]), nil
}

func (r *MemoryRepository) FindByBiometricDigest(ctx context.Context, digest []byte) (*models.CredentialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(digest) == 0 {
		return nil, common.ErrorNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if bytes.Equal(rec.BiometricDigest, digest) {
			return clone(rec), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]*models.CredentialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.CredentialRecord, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, clone(rec))
	}
	return result, nil
}

func (r *MemoryRepository) Create(ctx context.Context, rec *models.CredentialRecord) (*models.CredentialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByEmail(rec.Email) >= 0 {
		return nil, common.ErrorAlreadyExists
	}
	if r.digestTaken(rec.BiometricDigest, "") {
		return nil, common.ErrorAlreadyInUse
	}

	stored := clone(rec)
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.now()
	stored.UpdatedAt = stored.CreatedAt
	r.records = append(r.records, stored)

	rec.ID = stored.ID
	rec.CreatedAt = stored.CreatedAt
	rec.UpdatedAt = stored.UpdatedAt
	return rec, nil
}

func (r *MemoryRepository) Update(ctx context.Context, email string, upd models.CredentialUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByEmail(email)
	if i < 0 {
		return common.ErrorNotFound
	}
	if r.digestTaken(upd.BiometricDigest, email) {
		return common.ErrorAlreadyInUse
	}

	rec := r.records[i]
	rec.BiometricHash = upd.BiometricHash
	rec.BiometricDigest = bytes.Clone(upd.BiometricDigest)
	rec.UpdatedAt = r.now()
	return nil
}
