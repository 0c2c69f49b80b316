package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads all models from the iterator and closes it.
func drain(t *testing.T, it Iterator) []Model {
	t.Helper()
	defer it.Close()

	var res []Model
	for it.Valid() {
		res = append(res, Model{Key: it.Key(), Value: it.Value()})
		require.NoError(t, it.Next())
	}
	return res
}

func TestIterateCacheWrap(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("c"), []byte("3")))

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("c")))

	it, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	models := drain(t, it)

	want := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}
	assert.Equal(t, want, models)
}

func TestIterateRange(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}

	it, err := db.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	models := drain(t, it)

	require.Len(t, models, 2)
	assert.Equal(t, []byte("b"), models[0].Key)
	assert.Equal(t, []byte("c"), models[1].Key)
}

func TestReverseIterate(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}

	it, err := db.ReverseIterator(nil, nil)
	require.NoError(t, err)
	models := drain(t, it)

	require.Len(t, models, 3)
	assert.Equal(t, []byte("c"), models[0].Key)
	assert.Equal(t, []byte("a"), models[2].Key)
}

func TestSliceIterator(t *testing.T) {
	data := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}
	it := NewSliceIterator(data)

	assert.True(t, it.Valid())
	assert.Equal(t, []byte("a"), it.Key())
	require.NoError(t, it.Next())
	assert.Equal(t, []byte("b"), it.Key())
	require.NoError(t, it.Next())
	assert.False(t, it.Valid())

	assert.Panics(t, func() { it.Key() })
}
