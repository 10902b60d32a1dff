package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_ListUsers(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "pw", "bio", []byte{1})
	b := f.seed(t, "b@x.io", "pw", "", nil)
	d := NewDirectory(nil, f.manager)

	got, err := d.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.Identity(), got[0])
	assert.Equal(t, b.Identity(), got[1])
}

func TestDirectory_ListUsersEmpty(t *testing.T) {
	got, err := NewDirectory(nil, newFixture(t).manager).ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDirectory_GetUser(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "pw", "", nil)
	d := NewDirectory(nil, f.manager)

	got, err := d.GetUser(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Identity(), got)

	_, err = d.GetUser(context.Background(), "missing")
	assert.Same(t, common.ErrorNotFound, err)
}

func TestDirectory_StoreFailuresAreInternal(t *testing.T) {
	f := newFixture(t)
	f.repo.findAllErr = errStoreDown
	f.repo.findByIDErr = errStoreDown
	d := NewDirectory(nil, f.manager)

	_, err := d.ListUsers(context.Background())
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.NotContains(t, err.Error(), errStoreDown.Error())

	_, err = d.GetUser(context.Background(), "any")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestAuthService_DirectoryDelegation(t *testing.T) {
	f := newFixture(t)
	a := f.seed(t, "a@x.io", "pw1", "", nil)
	s := newAuthService(t, f, &fakeIssuer{})

	all, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a@x.io", all[0].Email)

	got, err := s.GetUser(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}
