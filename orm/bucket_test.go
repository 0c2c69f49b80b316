package orm

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/store"
)

// counter is a minimal model used to exercise the bucket logic.
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrapf(errors.ErrInput, "expected 8 bytes, got %d", len(bz))
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Field("Count", errors.ErrState, "negative")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterBucket() Bucket {
	return NewBucket("cnts", NewSimpleObj(nil, &counter{}))
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "cnts", newCounterBucket().Name())

	assert.Panics(t, func() {
		NewBucket("l33t", NewSimpleObj(nil, &counter{}))
	})
	assert.Panics(t, func() {
		NewBucket("waytoolongname", NewSimpleObj(nil, &counter{}))
	})
}

func TestBucketGetSave(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	// a miss returns nil, nil
	obj, err := b.Get(db, []byte("one"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	obj = NewSimpleObj([]byte("one"), &counter{Count: 5})
	require.NoError(t, b.Save(db, obj))

	loaded, err := b.Get(db, []byte("one"))
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []byte("one"), loaded.Key())
	assert.Equal(t, int64(5), loaded.Value().(*counter).Count)

	// an invalid model must not be persisted
	bad := NewSimpleObj([]byte("two"), &counter{Count: -2})
	err = b.Save(db, bad)
	assert.True(t, errors.ErrState.Is(err))

	obj, err = b.Get(db, []byte("two"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	obj := NewSimpleObj([]byte("gone"), &counter{Count: 1})
	require.NoError(t, b.Save(db, obj))
	require.NoError(t, b.Delete(db, []byte("gone")))

	loaded, err := b.Get(db, []byte("gone"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBucketDBKeyIsolation(t *testing.T) {
	b := newCounterBucket()
	first := b.DBKey([]byte("aaa"))
	second := b.DBKey([]byte("bbb"))
	// consecutive calls must not share backing arrays
	assert.Equal(t, []byte("cnts:aaa"), first)
	assert.Equal(t, []byte("cnts:bbb"), second)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	for i := int64(1); i <= 3; i++ {
		key := []byte(fmt.Sprintf("k%d", i))
		require.NoError(t, b.Save(db, NewSimpleObj(key, &counter{Count: i})))
	}

	qr := tokenext.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	res, err := h.Query(db, tokenext.KeyQueryMod, []byte("k2"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []byte("cnts:k2"), res[0].Key)

	res, err = h.Query(db, tokenext.PrefixQueryMod, []byte("k"))
	require.NoError(t, err)
	assert.Len(t, res, 3)

	res, err = h.Query(db, tokenext.KeyQueryMod, []byte("missing"))
	require.NoError(t, err)
	assert.Len(t, res, 0)

	_, err = h.Query(db, "garbage", []byte("k"))
	assert.True(t, errors.ErrInput.Is(err))
}
