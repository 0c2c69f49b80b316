package tokenidx

import (
	"encoding/binary"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
)

// Controller provides the mutation hooks and read queries of the enumeration
// index. It is safe to create as many instances as needed, all state lives in
// the store.
type Controller struct{}

// NewController returns a controller operating on the enumeration index.
func NewController() Controller {
	return Controller{}
}

// AddToken appends a token identifier to the global sequence. It fails with
// ErrDuplicate if the identifier is already present.
func (c Controller) AddToken(db tokenext.KVStore, id uint64) error {
	return globalSet().add(db, id)
}

// RemoveToken removes a token identifier from the global sequence. It fails
// with ErrNotFound if the identifier is not present.
func (c Controller) RemoveToken(db tokenext.KVStore, id uint64) error {
	return globalSet().remove(db, id)
}

// AddTokenToOwner appends a token identifier to the sequence of the given
// owner. It fails with ErrDuplicate if the identifier is already present in
// that sequence.
func (c Controller) AddTokenToOwner(db tokenext.KVStore, owner tokenext.Address, id uint64) error {
	if err := owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner address")
	}
	return ownerSet(owner).add(db, id)
}

// RemoveTokenFromOwner removes a token identifier from the sequence of the
// given owner. It fails with ErrNotFound if the identifier is not present in
// that sequence.
func (c Controller) RemoveTokenFromOwner(db tokenext.KVStore, owner tokenext.Address, id uint64) error {
	if err := owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner address")
	}
	return ownerSet(owner).remove(db, id)
}

// TotalSupply returns the length of the global sequence.
func (c Controller) TotalSupply(db tokenext.ReadOnlyKVStore) (uint64, error) {
	return globalSet().length(db)
}

// TokenByIndex returns the token identifier at the given zero based position
// of the global sequence. It fails with ErrIndexOutOfBounds if the position
// is at or beyond the current length.
func (c Controller) TokenByIndex(db tokenext.ReadOnlyKVStore, index uint64) (uint64, error) {
	return globalSet().at(db, index)
}

// BalanceOf returns the length of the sequence of the given owner.
func (c Controller) BalanceOf(db tokenext.ReadOnlyKVStore, owner tokenext.Address) (uint64, error) {
	if err := owner.Validate(); err != nil {
		return 0, errors.Field("Owner", err, "invalid owner address")
	}
	return ownerSet(owner).length(db)
}

// TokenOfOwnerByIndex returns the token identifier at the given zero based
// position of the sequence of the given owner. It fails with
// ErrIndexOutOfBounds if the position is at or beyond that owner's balance.
func (c Controller) TokenOfOwnerByIndex(db tokenext.ReadOnlyKVStore, owner tokenext.Address, index uint64) (uint64, error) {
	if err := owner.Validate(); err != nil {
		return 0, errors.Field("Owner", err, "invalid owner address")
	}
	return ownerSet(owner).at(db, index)
}

const (
	// all index state lives under this namespace
	storePrefix = "tokenidx:"

	listInfix = "l:"
	posInfix  = "p:"
	sizeInfix = "n"
)

// indexedSet is an ordered set of token identifiers stored as three groups
// of keys: a position to identifier list, an identifier to position lookup
// and a length counter. The position lookup is always the exact inverse of
// the list. Both the global and the per owner sequences are instances of
// this structure.
type indexedSet struct {
	prefix []byte
}

func globalSet() indexedSet {
	return indexedSet{prefix: []byte(storePrefix + "g:")}
}

func ownerSet(owner tokenext.Address) indexedSet {
	prefix := make([]byte, 0, len(storePrefix)+2+len(owner)+1)
	prefix = append(prefix, storePrefix...)
	prefix = append(prefix, 'o', ':')
	prefix = append(prefix, owner...)
	prefix = append(prefix, ':')
	return indexedSet{prefix: prefix}
}

func (s indexedSet) listKey(index uint64) []byte {
	return s.key(listInfix, encodeOrder(index))
}

func (s indexedSet) posKey(id uint64) []byte {
	return s.key(posInfix, encodeOrder(id))
}

func (s indexedSet) sizeKey() []byte {
	return s.key(sizeInfix, nil)
}

func (s indexedSet) key(infix string, suffix []byte) []byte {
	out := make([]byte, 0, len(s.prefix)+len(infix)+len(suffix))
	out = append(out, s.prefix...)
	out = append(out, infix...)
	out = append(out, suffix...)
	return out
}

// length returns the number of elements in the sequence. A sequence that was
// never written to has length zero.
func (s indexedSet) length(db tokenext.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.sizeKey())
	if err != nil {
		return 0, errors.Wrap(err, "cannot get sequence length")
	}
	if raw == nil {
		return 0, nil
	}
	return decodeOrder(raw), nil
}

// at returns the identifier stored at the given zero based position.
func (s indexedSet) at(db tokenext.ReadOnlyKVStore, index uint64) (uint64, error) {
	n, err := s.length(db)
	if err != nil {
		return 0, err
	}
	if index >= n {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "index %d, length %d", index, n)
	}
	raw, err := db.Get(s.listKey(index))
	if err != nil {
		return 0, errors.Wrap(err, "cannot get sequence entry")
	}
	if raw == nil {
		return 0, errors.Wrapf(errors.ErrState, "no entry at position %d", index)
	}
	return decodeOrder(raw), nil
}

// add appends an identifier at the end of the sequence.
func (s indexedSet) add(db tokenext.KVStore, id uint64) error {
	has, err := db.Has(s.posKey(id))
	if err != nil {
		return errors.Wrap(err, "cannot check presence")
	}
	if has {
		return errors.Wrapf(errors.ErrDuplicate, "token %d", id)
	}
	n, err := s.length(db)
	if err != nil {
		return err
	}
	if err := db.Set(s.listKey(n), encodeOrder(id)); err != nil {
		return errors.Wrap(err, "cannot store sequence entry")
	}
	if err := db.Set(s.posKey(id), encodeOrder(n)); err != nil {
		return errors.Wrap(err, "cannot store position")
	}
	if err := db.Set(s.sizeKey(), encodeOrder(n+1)); err != nil {
		return errors.Wrap(err, "cannot store sequence length")
	}
	return nil
}

// remove deletes an identifier using swap-and-pop: the last element of the
// sequence is moved into the vacated slot, then the sequence shrinks by one.
func (s indexedSet) remove(db tokenext.KVStore, id uint64) error {
	rawPos, err := db.Get(s.posKey(id))
	if err != nil {
		return errors.Wrap(err, "cannot get position")
	}
	if rawPos == nil {
		return errors.Wrapf(errors.ErrNotFound, "token %d", id)
	}
	pos := decodeOrder(rawPos)

	n, err := s.length(db)
	if err != nil {
		return err
	}
	last := n - 1

	if pos != last {
		rawLast, err := db.Get(s.listKey(last))
		if err != nil {
			return errors.Wrap(err, "cannot get last sequence entry")
		}
		if rawLast == nil {
			return errors.Wrapf(errors.ErrState, "no entry at position %d", last)
		}
		if err := db.Set(s.listKey(pos), rawLast); err != nil {
			return errors.Wrap(err, "cannot move last sequence entry")
		}
		if err := db.Set(s.posKey(decodeOrder(rawLast)), rawPos); err != nil {
			return errors.Wrap(err, "cannot update moved position")
		}
	}

	if err := db.Delete(s.listKey(last)); err != nil {
		return errors.Wrap(err, "cannot delete last sequence entry")
	}
	if err := db.Delete(s.posKey(id)); err != nil {
		return errors.Wrap(err, "cannot delete position")
	}
	if last == 0 {
		if err := db.Delete(s.sizeKey()); err != nil {
			return errors.Wrap(err, "cannot delete sequence length")
		}
		return nil
	}
	if err := db.Set(s.sizeKey(), encodeOrder(last)); err != nil {
		return errors.Wrap(err, "cannot store sequence length")
	}
	return nil
}

// encodeOrder converts a value to a fixed-width big endian representation,
// so the keys sort properly.
func encodeOrder(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

func decodeOrder(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
