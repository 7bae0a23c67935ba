package iavl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
)

func TestCommitStoreVersions(t *testing.T) {
	db := dbm.NewMemDB()
	s := NewCommitStoreFromDB(db)
	require.NoError(t, s.LoadLatestVersion())

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("foo"), []byte("bar")))
	require.NoError(t, cache.Write())

	first, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.NotEmpty(t, first.Hash)

	// Discarded writes never reach the tree, the hash must not change.
	cache = s.CacheWrap()
	require.NoError(t, cache.Set([]byte("foo"), []byte("other")))
	cache.Discard()

	second, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)
	assert.Equal(t, first.Hash, second.Hash)

	// Reopen the same database and expect the latest state to be loaded.
	reopened := NewCommitStoreFromDB(db)
	require.NoError(t, reopened.LoadLatestVersion())
	latest, err := reopened.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, second, latest)

	val, err := reopened.Get([]byte("foo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bar"), val)
}
