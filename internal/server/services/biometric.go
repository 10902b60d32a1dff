package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/lock"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credkeeper/internal/server/secrets"
)

// BiometricMatcher authenticates by biometric key and manages key rotation.
//
// Keys are trimmed before hashing and before matching. When a Digester is
// configured, each stored key also carries a keyed digest used as an equality
// index; the salted hash stays the final check.
type BiometricMatcher struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      SecretHasher
	digester    Digester
	locker      lock.Locker
	logger      logging.Logger
}

// NewBiometricMatcher builds a matcher. digester and logger may be nil.
func NewBiometricMatcher(db dbx.DBTX, m repomanager.RepositoryManager, h SecretHasher, d Digester, lk lock.Locker, log logging.Logger) *BiometricMatcher {
	if log == nil {
		log = logging.Nop{}
	}
	return &BiometricMatcher{db: db, repomanager: m, hasher: h, digester: d, locker: lk, logger: log}
}

func (s *BiometricMatcher) digest(key string) []byte {
	if s.digester == nil {
		return nil
	}
	return s.digester.Digest(key)
}

// matches reports whether rec holds key. A stored digest that differs from
// the candidate digest rules the record out without running the KDF.
func (s *BiometricMatcher) matches(rec *models.CredentialRecord, key string, digest []byte) bool {
	if !rec.HasBiometric() {
		return false
	}
	if digest != nil && len(rec.BiometricDigest) > 0 && !secrets.EqualDigest(rec.BiometricDigest, digest) {
		return false
	}
	return s.hasher.Verify(key, rec.BiometricHash)
}

// MatchByKey returns the first identity, in store order, whose biometric
// hash verifies key.
func (s *BiometricMatcher) MatchByKey(ctx context.Context, key string) (*models.Identity, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, common.ErrorInvalidCredentials
	}

	repo := s.repomanager.Credentials(s.db)
	digest := s.digest(key)

	if digest != nil {
		rec, err := repo.FindByBiometricDigest(ctx, digest)
		switch {
		case err == nil:
			if s.matches(rec, key, digest) {
				return rec.Identity(), nil
			}
		case !errors.Is(err, common.ErrorNotFound):
			return nil, common.Internal("find by digest", err)
		}
	}

	records, err := repo.FindAll(ctx)
	if err != nil {
		return nil, common.Internal("list credentials", err)
	}

	for _, rec := range records {
		if s.matches(rec, key, digest) {
			return rec.Identity(), nil
		}
	}

	return nil, common.ErrorInvalidCredentials
}

// Rotate replaces the biometric key of ownerEmail with newKey and returns
// the identity as it was before the update. The key must not verify against
// any other record. The uniqueness scan and the update run under the rotation
// lock; if the lock is lost before the update, nothing is written.
func (s *BiometricMatcher) Rotate(ctx context.Context, ownerEmail, newKey string) (*models.Identity, error) {
	email := common.NormalizeEmail(ownerEmail)
	key := strings.TrimSpace(newKey)
	if key == "" {
		return nil, common.ErrorInvalidInput
	}

	repo := s.repomanager.Credentials(s.db)

	owner, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.Internal("find owner", err)
	}

	lease, err := s.locker.Lock(ctx)
	if err != nil {
		return nil, common.Internal("acquire rotation lock", err)
	}
	defer func() {
		if err := lease.Unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn(ctx, "rotation lock release failed", "user_id", owner.ID, "error", err)
		}
	}()

	records, err := repo.FindAll(ctx)
	if err != nil {
		return nil, common.Internal("list credentials", err)
	}

	digest := s.digest(key)
	for _, rec := range records {
		if rec.Email == email {
			continue
		}
		if s.matches(rec, key, digest) {
			return nil, common.ErrorAlreadyInUse
		}
	}

	hashed, err := s.hasher.Hash(key)
	if err != nil {
		return nil, common.Internal("hash biometric key", err)
	}

	if err := lease.Check(ctx); err != nil {
		return nil, common.Internal("rotation lock lost", err)
	}

	err = repo.Update(ctx, email, models.CredentialUpdate{BiometricHash: hashed, BiometricDigest: digest})
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorAlreadyInUse):
		return nil, err
	default:
		return nil, common.Internal("update credential", err)
	}

	return owner.Identity(), nil
}
