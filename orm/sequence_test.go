package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/iov-one/valset/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	cases := []struct {
		name       string
		init       int64
		increments int64
	}{
		0: {"first", 0, 22},
		1: {"second", 0, 11},
		2: {"third", 22, 18},
		3: {"fourth", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			db := store.MemStore()
			s := NewSequence("test", tc.name)
			if tc.init > 0 {
				require.NoError(t, db.Set(s.id, EncodeSequence(tc.init)))
			}
			_, orig, err := s.Latest(db)
			require.NoError(t, err)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}
			// expect the final value to be this
			expect := tc.init + tc.increments
			assert.Equal(t, expect, val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			_, last, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("test", "a")
	b := NewSequence("test", "b")

	_, err := a.NextInt(db)
	require.NoError(t, err)
	got, err := a.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)

	got, err = b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestDecodeSequenceRejectsGarbage(t *testing.T) {
	_, err := DecodeSequence([]byte{1, 2, 3})
	assert.Error(t, err)
}
