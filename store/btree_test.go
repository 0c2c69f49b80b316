package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests handle deletes, setting the same value and iterating over
// ranges.
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and all queries
	// should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results that are
	// written to it
	k, v := []byte("french"), []byte("fry")
	val, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, val)
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, base.Set(k, v))
	val, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, val)

	// now layer another btree on top and make sure that we get base data
	cache := base.CacheWrap()
	val, err = cache.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, val)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	val, err = cache.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, val)
	val, err = base.Get(k2)
	require.NoError(t, err)
	assert.Nil(t, val)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	val, err = base.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, val)

	// we can discard a cache-wrap without any effect on the base
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()
	val, err = base.Get(k3)
	require.NoError(t, err)
	assert.Nil(t, val)

	// and commit deletes
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())
	val, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, val)
	val, err = base.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, val)
}

// TestBTreeCacheConflicts checks that we can handle overwriting values and
// deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	k1, k2, k3 := []byte("alice"), []byte("bob"), []byte("carl")
	v1, v2, v3, v4 := []byte("1"), []byte("2"), []byte("3"), []byte("4")

	parent := MemStore()
	require.NoError(t, parent.Set(k1, v1))
	require.NoError(t, parent.Set(k2, v2))

	child := parent.CacheWrap()
	require.NoError(t, child.Set(k1, v3))
	require.NoError(t, child.Set(k3, v4))
	require.NoError(t, child.Delete(k2))

	// the parent is unaffected until Write
	val, err := parent.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, v1, val)
	has, err := parent.Has(k2)
	require.NoError(t, err)
	assert.True(t, has)

	// the child sees its own writes
	val, err = child.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, v3, val)
	has, err = child.Has(k2)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, child.Write())

	// now the parent sees all of it
	val, err = parent.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, v3, val)
	has, err = parent.Has(k2)
	require.NoError(t, err)
	assert.False(t, has)
	val, err = parent.Get(k3)
	require.NoError(t, err)
	assert.Equal(t, v4, val)
}

func TestMemStoreIsolation(t *testing.T) {
	a := MemStore()
	b := MemStore()

	require.NoError(t, a.Set([]byte("k"), []byte("v")))
	val, err := b.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, val)
}
