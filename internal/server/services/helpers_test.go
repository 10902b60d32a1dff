package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/lock"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/credentials"
)

// --- fakes ---

// fakeHasher produces readable salted "hashes" of the form h$<secret>$<n>.
type fakeHasher struct {
	n           atomic.Int64
	verifyCalls atomic.Int64
	hashErr     error
}

func (h *fakeHasher) Hash(secret string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return fmt.Sprintf("h$%s$%d", secret, h.n.Add(1)), nil
}

func (h *fakeHasher) Verify(secret, hashed string) bool {
	h.verifyCalls.Add(1)
	if !strings.HasPrefix(hashed, "h$") {
		return false
	}
	rest := hashed[2:]
	i := strings.LastIndex(rest, "$")
	if i < 0 {
		return false
	}
	return rest[:i] == secret
}

type fakeDigester struct{}

func (fakeDigester) Digest(secret string) []byte { return []byte("d:" + secret) }

type fakeIssuer struct {
	calls int
	err   error
}

func (f *fakeIssuer) Issue(id models.Identity) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + id.ID, nil
}

type fakeManager struct {
	repo credentials.Repository
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeManager) Credentials(dbx.DBTX) credentials.Repository { return m.repo }

// stubRepo wraps a real memory store and injects failures per method.
type stubRepo struct {
	*credentials.MemoryRepository

	findByIDErr    error
	findByEmailErr error
	findDigestErr  error
	findAllErr     error
	createErr      error
	updateErr      error

	mu           sync.Mutex
	findAllCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{MemoryRepository: credentials.NewMemoryRepository()}
}

func (r *stubRepo) FindByID(ctx context.Context, id string) (*models.CredentialRecord, error) {
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	return r.MemoryRepository.FindByID(ctx, id)
}

func (r *stubRepo) FindByEmail(ctx context.Context, email string) (*models.CredentialRecord, error) {
	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}
	return r.MemoryRepository.FindByEmail(ctx, email)
}

func (r *stubRepo) FindByBiometricDigest(ctx context.Context, d []byte) (*models.CredentialRecord, error) {
	if r.findDigestErr != nil {
		return nil, r.findDigestErr
	}
	return r.MemoryRepository.FindByBiometricDigest(ctx, d)
}

func (r *stubRepo) FindAll(ctx context.Context) ([]*models.CredentialRecord, error) {
	r.mu.Lock()
	r.findAllCalls++
	r.mu.Unlock()
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	return r.MemoryRepository.FindAll(ctx)
}

func (r *stubRepo) Create(ctx context.Context, rec *models.CredentialRecord) (*models.CredentialRecord, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.MemoryRepository.Create(ctx, rec)
}

func (r *stubRepo) Update(ctx context.Context, email string, upd models.CredentialUpdate) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	return r.MemoryRepository.Update(ctx, email, upd)
}

// countingLocker wraps a Local lock and records acquisitions and releases.
type countingLocker struct {
	inner   *lock.Local
	err     error
	locks   atomic.Int64
	unlocks atomic.Int64
}

func newCountingLocker() *countingLocker {
	return &countingLocker{inner: lock.NewLocal()}
}

func (l *countingLocker) Lock(ctx context.Context) (lock.Lease, error) {
	if l.err != nil {
		return nil, l.err
	}
	lease, err := l.inner.Lock(ctx)
	if err != nil {
		return nil, err
	}
	l.locks.Add(1)
	return &countingLease{Lease: lease, unlocks: &l.unlocks}, nil
}

type countingLease struct {
	lock.Lease
	unlocks *atomic.Int64
}

func (l *countingLease) Unlock(ctx context.Context) error {
	l.unlocks.Add(1)
	return l.Lease.Unlock(ctx)
}

var errStoreDown = errors.New("connection refused")

// --- fixtures ---

type fixture struct {
	repo    *stubRepo
	hasher  *fakeHasher
	locker  *countingLocker
	manager *fakeManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newStubRepo()
	return &fixture{
		repo:    repo,
		hasher:  &fakeHasher{},
		locker:  newCountingLocker(),
		manager: &fakeManager{repo: repo},
	}
}

// seed inserts a record directly, hashing whichever secrets are non-empty.
func (f *fixture) seed(t *testing.T, email, password, biometric string, digest []byte) *models.CredentialRecord {
	t.Helper()
	rec := &models.CredentialRecord{Email: email, BiometricDigest: digest}
	if password != "" {
		rec.PasswordHash, _ = f.hasher.Hash(password)
	}
	if biometric != "" {
		rec.BiometricHash, _ = f.hasher.Hash(biometric)
	}
	out, err := f.repo.MemoryRepository.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("seed %s: %v", email, err)
	}
	return out
}

func (f *fixture) validator(t *testing.T) *CredentialValidator {
	t.Helper()
	v, err := NewCredentialValidator(nil, f.manager, f.hasher)
	if err != nil {
		t.Fatalf("NewCredentialValidator: %v", err)
	}
	f.hasher.verifyCalls.Store(0)
	return v
}

func (f *fixture) matcher(d Digester) *BiometricMatcher {
	return NewBiometricMatcher(nil, f.manager, f.hasher, d, f.locker, nil)
}
