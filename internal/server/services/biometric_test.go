package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/lock"
	"github.com/dmitrijs2005/credkeeper/internal/server/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchByKey_ReturnsOwner(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "pw", "bio1", nil)
	b := f.seed(t, "b@x.io", "pw", "bio2", nil)
	m := f.matcher(nil)

	got, err := m.MatchByKey(context.Background(), "bio2")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	got, err = m.MatchByKey(context.Background(), "bio1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestMatchByKey_NoMatch(t *testing.T) {
	f := newFixture(t)
	m := f.matcher(nil)

	_, err := m.MatchByKey(context.Background(), "bio1")
	assert.Same(t, common.ErrorInvalidCredentials, err, "empty store")

	f.seed(t, "a@x.io", "pw", "bio1", nil)
	_, err = m.MatchByKey(context.Background(), "bio3")
	assert.Same(t, common.ErrorInvalidCredentials, err)

	_, err = m.MatchByKey(context.Background(), "   ")
	assert.Same(t, common.ErrorInvalidCredentials, err)
}

func TestMatchByKey_SkipsRecordsWithoutBiometric(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a@x.io", "pw", "", nil)
	f.seed(t, "b@x.io", "pw", "", nil)
	m := f.matcher(nil)

	_, err := m.MatchByKey(context.Background(), "bio1")
	assert.Same(t, common.ErrorInvalidCredentials, err)
	assert.Zero(t, f.hasher.verifyCalls.Load())
}

func TestMatchByKey_FirstMatchInStoreOrder(t *testing.T) {
	f := newFixture(t)
	first := f.seed(t, "first@x.io", "", "dup", nil)
	f.seed(t, "second@x.io", "", "dup", nil)
	m := f.matcher(nil)

	got, err := m.MatchByKey(context.Background(), "dup")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestMatchByKey_TrimsKey(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "pw", "", nil)
	m := f.matcher(nil)

	_, err := m.Rotate(context.Background(), "a@x.io", "  bio1\n")
	require.NoError(t, err)

	got, err := m.MatchByKey(context.Background(), "bio1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = m.MatchByKey(context.Background(), " bio1 ")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestMatchByKey_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.findAllErr = errStoreDown

	_, err := f.matcher(nil).MatchByKey(context.Background(), "bio1")
	assert.ErrorIs(t, err, common.ErrorInternal)

	f.repo.findAllErr = nil
	f.repo.findDigestErr = errStoreDown
	_, err = f.matcher(fakeDigester{}).MatchByKey(context.Background(), "bio1")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestMatchByKey_DigestIndexHitSkipsScan(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "", "bio1", fakeDigester{}.Digest("bio1"))

	got, err := f.matcher(fakeDigester{}).MatchByKey(context.Background(), "bio1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Zero(t, f.repo.findAllCalls)
	assert.Equal(t, int64(1), f.hasher.verifyCalls.Load())
}

func TestMatchByKey_DigestMismatchSkipsKDF(t *testing.T) {
	f := newFixture(t)
	d := fakeDigester{}
	f.seed(t, "a@x.io", "", "bio1", d.Digest("bio1"))
	f.seed(t, "b@x.io", "", "bio2", d.Digest("bio2"))
	legacy := f.seed(t, "legacy@x.io", "", "bio3", nil)

	got, err := f.matcher(d).MatchByKey(context.Background(), "bio3")
	require.NoError(t, err)
	assert.Equal(t, legacy.ID, got.ID)
	assert.Equal(t, int64(1), f.hasher.verifyCalls.Load(), "only the undigested record is verified")
}

func TestRotate_ReturnsPreUpdateIdentity(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "pw", "old", nil)
	m := f.matcher(nil)

	time.Sleep(time.Millisecond)
	got, err := m.Rotate(context.Background(), "A@x.io", "new")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.UpdatedAt, got.UpdatedAt)

	stored, err := f.repo.FindByEmail(context.Background(), "a@x.io")
	require.NoError(t, err)
	assert.True(t, f.hasher.Verify("new", stored.BiometricHash))
	assert.False(t, f.hasher.Verify("old", stored.BiometricHash))
	assert.True(t, stored.UpdatedAt.After(a.UpdatedAt))
	assert.Equal(t, stored.PasswordHash, a.PasswordHash)
}

func TestRotate_KeyHeldByAnotherRecord(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a@x.io", "pw", "bio1", nil)
	f.seed(t, "b@x.io", "pw", "", nil)
	m := f.matcher(nil)

	_, err := m.Rotate(context.Background(), "b@x.io", "bio1")
	assert.Same(t, common.ErrorAlreadyInUse, err)

	b, err := f.repo.FindByEmail(context.Background(), "b@x.io")
	require.NoError(t, err)
	assert.False(t, b.HasBiometric(), "rejected rotation must not write")

	_, err = m.Rotate(context.Background(), "b@x.io", " bio1 ")
	assert.Same(t, common.ErrorAlreadyInUse, err, "uniqueness compares the trimmed key")
}

func TestRotate_SameKeyForOwnerIsAllowed(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a@x.io", "pw", "bio1", nil)
	m := f.matcher(nil)

	_, err := m.Rotate(context.Background(), "a@x.io", "bio1")
	assert.NoError(t, err)
}

func TestRotate_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown owner", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.matcher(nil).Rotate(ctx, "ghost@x.io", "bio")
		assert.Same(t, common.ErrorNotFound, err)
		assert.Zero(t, f.locker.locks.Load())
	})

	t.Run("empty key", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", " \t ")
		assert.Same(t, common.ErrorInvalidInput, err)
	})

	t.Run("owner lookup failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.findByEmailErr = errStoreDown
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("scan failure", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		f.repo.findAllErr = errStoreDown
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("hash failure", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		f.hasher.hashErr = errors.New("no entropy")
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.ErrorIs(t, err, common.ErrorInternal)
		assert.Equal(t, "internal error", err.Error())
	})

	t.Run("update failure", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		f.repo.updateErr = errStoreDown
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("store unique violation", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		f.repo.updateErr = common.ErrorAlreadyInUse
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.Same(t, common.ErrorAlreadyInUse, err)
	})

	t.Run("owner vanished", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		f.repo.updateErr = common.ErrorNotFound
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.Same(t, common.ErrorNotFound, err)
	})

	t.Run("lock failure", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, "a@x.io", "pw", "", nil)
		f.locker.err = errors.New("redis down")
		_, err := f.matcher(nil).Rotate(ctx, "a@x.io", "bio")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})
}

func TestRotate_ReleasesLock(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a@x.io", "pw", "bio1", nil)
	f.seed(t, "b@x.io", "pw", "", nil)
	m := f.matcher(nil)

	_, _ = m.Rotate(context.Background(), "b@x.io", "bio1")
	_, _ = m.Rotate(context.Background(), "b@x.io", "bio2")

	assert.Equal(t, int64(2), f.locker.locks.Load())
	assert.Equal(t, int64(2), f.locker.unlocks.Load())
}

func TestRotate_WritesDigestWhenIndexed(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a@x.io", "pw", "", nil)

	_, err := f.matcher(fakeDigester{}).Rotate(context.Background(), "a@x.io", "bio1")
	require.NoError(t, err)

	rec, err := f.repo.FindByBiometricDigest(context.Background(), []byte("d:bio1"))
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", rec.Email)
}

func TestRotate_ConcurrentClaimsOfOneKey(t *testing.T) {
	f := newFixture(t)
	const n = 6
	emails := make([]string, n)
	for i := range emails {
		emails[i] = string(rune('a'+i)) + "@x.io"
		f.seed(t, emails[i], "pw", "", nil)
	}
	m := NewBiometricMatcher(nil, f.manager, f.hasher, nil, lock.NewLocal(), nil)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		inUse int
	)
	for _, e := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			_, err := m.Rotate(context.Background(), email, "contested")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, common.ErrorAlreadyInUse):
				inUse++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(e)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, inUse)
}

func TestBiometricMatcher_WithRealHasher(t *testing.T) {
	h, err := secrets.NewHasher(secrets.Params{Algorithm: secrets.AlgorithmArgon2id, Argon2Iterations: 1, Argon2MemoryKiB: 8 * 1024, Argon2Parallelism: 1})
	require.NoError(t, err)
	d, err := secrets.NewDigester([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	f := newFixture(t)
	f.seed(t, "a@x.io", "pw", "", nil)
	f.seed(t, "b@x.io", "pw", "", nil)
	m := NewBiometricMatcher(nil, f.manager, h, d, lock.NewLocal(), nil)

	_, err = m.Rotate(context.Background(), "a@x.io", "bio1")
	require.NoError(t, err)
	_, err = m.Rotate(context.Background(), "b@x.io", "bio1")
	assert.Same(t, common.ErrorAlreadyInUse, err)

	got, err := m.MatchByKey(context.Background(), "bio1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", got.Email)

	_, err = m.MatchByKey(context.Background(), "bio2")
	assert.Same(t, common.ErrorInvalidCredentials, err)
}
