package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheWrapReadsThroughToParent(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()
	val, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	has, err := cache.Has([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	cases := map[string]struct {
		write    bool
		wantA    []byte
		wantB    []byte
		wantHasB bool
	}{
		"write applies every operation": {
			write:    true,
			wantA:    nil,
			wantB:    []byte("2"),
			wantHasB: true,
		},
		"discard leaves parent untouched": {
			write:    false,
			wantA:    []byte("1"),
			wantB:    nil,
			wantHasB: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base := MemStore()
			require.NoError(t, base.Set([]byte("a"), []byte("1")))

			cache := base.CacheWrap()
			require.NoError(t, cache.Delete([]byte("a")))
			require.NoError(t, cache.Set([]byte("b"), []byte("2")))

			// Changes are visible inside of the cache right away.
			got, err := cache.Get([]byte("a"))
			require.NoError(t, err)
			assert.Nil(t, got)

			if tc.write {
				require.NoError(t, cache.Write())
			} else {
				cache.Discard()
			}

			a, err := base.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, tc.wantA, a)
			b, err := base.Get([]byte("b"))
			require.NoError(t, err)
			assert.Equal(t, tc.wantB, b)
			has, err := base.Has([]byte("b"))
			require.NoError(t, err)
			assert.Equal(t, tc.wantHasB, has)
		})
	}
}

func TestNestedCacheWrap(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	inner := outer.CacheWrap()

	require.NoError(t, inner.Set([]byte("k"), []byte("v")))
	require.NoError(t, inner.Write())

	val, err := outer.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	val, err = base.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, val, "outer cache was not written yet")

	require.NoError(t, outer.Write())
	val, err = base.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}
