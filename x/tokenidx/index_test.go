package tokenidx

import (
	"testing"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/store"
	"github.com/iov-one/tokenext/tokentest"
	"github.com/iov-one/tokenext/tokentest/assert"
)

func TestSwapAndPop(t *testing.T) {
	db := store.MemStore()
	c := NewController()

	for _, id := range []uint64{1, 2, 3} {
		assert.Nil(t, c.AddToken(db, id))
	}
	assert.Nil(t, c.RemoveToken(db, 2))

	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), n)

	// 3 was last, so it must occupy the vacated slot
	id, err := c.TokenByIndex(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)
	id, err = c.TokenByIndex(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), id)

	_, err = c.TokenByIndex(db, 2)
	assert.IsErr(t, ErrIndexOutOfBounds, err)
}

func TestGlobalSetMembership(t *testing.T) {
	db := store.MemStore()
	c := NewController()

	minted := 0
	for id := uint64(1); id <= 20; id++ {
		assert.Nil(t, c.AddToken(db, id))
		minted++
	}
	burned := 0
	for _, id := range []uint64{20, 1, 7, 13, 4} {
		assert.Nil(t, c.RemoveToken(db, id))
		burned++
	}

	want := map[uint64]bool{}
	for id := uint64(1); id <= 20; id++ {
		want[id] = true
	}
	for _, id := range []uint64{20, 1, 7, 13, 4} {
		delete(want, id)
	}

	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(minted-burned), n)
	assert.Equal(t, want, globalTokens(t, c, db))
}

func TestOwnerIndexFollowsTransfers(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := tokentest.NewAddress()
	bob := tokentest.NewAddress()

	// mint 1, 2 to alice and 3 to bob
	for _, id := range []uint64{1, 2, 3} {
		assert.Nil(t, c.AddToken(db, id))
	}
	assert.Nil(t, c.AddTokenToOwner(db, alice, 1))
	assert.Nil(t, c.AddTokenToOwner(db, alice, 2))
	assert.Nil(t, c.AddTokenToOwner(db, bob, 3))

	// transfer 1 from alice to bob, global sequence untouched
	assert.Nil(t, c.RemoveTokenFromOwner(db, alice, 1))
	assert.Nil(t, c.AddTokenToOwner(db, bob, 1))

	assert.Equal(t, map[uint64]bool{2: true}, ownerTokens(t, c, db, alice))
	assert.Equal(t, map[uint64]bool{1: true, 3: true}, ownerTokens(t, c, db, bob))

	// owner sets summed must equal the global set
	union := ownerTokens(t, c, db, alice)
	for id := range ownerTokens(t, c, db, bob) {
		union[id] = true
	}
	assert.Equal(t, globalTokens(t, c, db), union)
}

func TestAddDuplicateToken(t *testing.T) {
	db := store.MemStore()
	c := NewController()

	assert.Nil(t, c.AddToken(db, 5))
	err := c.AddToken(db, 5)
	assert.IsErr(t, errors.ErrDuplicate, err)

	// the failed call must not corrupt the sequence
	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), n)
	assert.Equal(t, map[uint64]bool{5: true}, globalTokens(t, c, db))
}

func TestRemoveUnknownToken(t *testing.T) {
	db := store.MemStore()
	c := NewController()

	assert.Nil(t, c.AddToken(db, 5))
	err := c.RemoveToken(db, 6)
	assert.IsErr(t, errors.ErrNotFound, err)

	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestOutOfOrderCallsSurfaceAsErrors(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := tokentest.NewAddress()
	bob := tokentest.NewAddress()

	assert.Nil(t, c.AddToken(db, 1))
	assert.Nil(t, c.AddTokenToOwner(db, alice, 1))

	// a transfer mirrored against the wrong previous owner
	err := c.RemoveTokenFromOwner(db, bob, 1)
	assert.IsErr(t, errors.ErrNotFound, err)

	// a transfer mirrored without removing from the previous owner
	assert.Nil(t, c.AddTokenToOwner(db, bob, 1))
	err = c.AddTokenToOwner(db, bob, 1)
	assert.IsErr(t, errors.ErrDuplicate, err)

	// both sequences are still internally consistent
	assert.Equal(t, map[uint64]bool{1: true}, ownerTokens(t, c, db, alice))
	assert.Equal(t, map[uint64]bool{1: true}, ownerTokens(t, c, db, bob))
	assert.Equal(t, map[uint64]bool{1: true}, globalTokens(t, c, db))
}

func TestEmptyIndex(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	nobody := tokentest.NewAddress()

	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), n)

	balance, err := c.BalanceOf(db, nobody)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), balance)

	_, err = c.TokenByIndex(db, 0)
	assert.IsErr(t, ErrIndexOutOfBounds, err)
	_, err = c.TokenOfOwnerByIndex(db, nobody, 0)
	assert.IsErr(t, ErrIndexOutOfBounds, err)
}

func TestRemoveLastTokenResetsSequence(t *testing.T) {
	db := store.MemStore()
	c := NewController()

	assert.Nil(t, c.AddToken(db, 9))
	assert.Nil(t, c.RemoveToken(db, 9))

	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), n)

	// the identifier can be indexed again
	assert.Nil(t, c.AddToken(db, 9))
	id, err := c.TokenByIndex(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(9), id)
}

func TestInvalidOwnerAddress(t *testing.T) {
	db := store.MemStore()
	c := NewController()

	err := c.AddTokenToOwner(db, tokenext.Address{0x1}, 1)
	if errors.FieldErrors(err, "Owner") == nil {
		t.Fatalf("want an Owner field error, got %+v", err)
	}
}

func TestQueries(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice := tokentest.NewAddress()

	assert.Nil(t, c.AddToken(db, 1))
	assert.Nil(t, c.AddToken(db, 2))
	assert.Nil(t, c.AddTokenToOwner(db, alice, 1))
	assert.Nil(t, c.AddTokenToOwner(db, alice, 2))

	qr := tokenext.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/tokens").Query(db, tokenext.KeyQueryMod, tokentest.SequenceID(1))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, tokentest.SequenceID(2), res[0].Value)

	res, err = qr.Handler("/tokens").Query(db, tokenext.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))

	res, err = qr.Handler("/tokens/owner").Query(db, tokenext.PrefixQueryMod, alice)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))

	data := append(append([]byte(nil), alice...), tokentest.SequenceID(0)...)
	res, err = qr.Handler("/tokens/owner").Query(db, tokenext.KeyQueryMod, data)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, tokentest.SequenceID(1), res[0].Value)

	_, err = qr.Handler("/tokens").Query(db, tokenext.KeyQueryMod, []byte("x"))
	assert.IsErr(t, errors.ErrInput, err)
}

func globalTokens(t testing.TB, c Controller, db tokenext.ReadOnlyKVStore) map[uint64]bool {
	t.Helper()
	n, err := c.TotalSupply(db)
	assert.Nil(t, err)
	res := make(map[uint64]bool, n)
	for i := uint64(0); i < n; i++ {
		id, err := c.TokenByIndex(db, i)
		assert.Nil(t, err)
		if res[id] {
			t.Fatalf("token %d enumerated twice", id)
		}
		res[id] = true
	}
	return res
}

func ownerTokens(t testing.TB, c Controller, db tokenext.ReadOnlyKVStore, owner tokenext.Address) map[uint64]bool {
	t.Helper()
	n, err := c.BalanceOf(db, owner)
	assert.Nil(t, err)
	res := make(map[uint64]bool, n)
	for i := uint64(0); i < n; i++ {
		id, err := c.TokenOfOwnerByIndex(db, owner, i)
		assert.Nil(t, err)
		if res[id] {
			t.Fatalf("token %d enumerated twice", id)
		}
		res[id] = true
	}
	return res
}
