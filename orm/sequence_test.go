package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/store"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("vest", "id")

	for expect := int64(1); expect <= 10; expect++ {
		val, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, expect, val)
	}

	latest, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), latest)
	assert.Equal(t, EncodeSequence(10), raw)
}

func TestSequenceLatestUninitialized(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("vest", "id")

	_, _, err := s.Latest(db)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestSequencesIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("vest", "id")
	b := NewSequence("vest", "other")

	for i := 0; i < 3; i++ {
		_, err := a.NextVal(db)
		require.NoError(t, err)
	}
	val, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestEncodeDecodeSequence(t *testing.T) {
	assert.Equal(t, int64(0), DecodeSequence(nil))
	bz := EncodeSequence(12345)
	assert.Len(t, bz, 8)
	assert.Equal(t, int64(12345), DecodeSequence(bz))
}
