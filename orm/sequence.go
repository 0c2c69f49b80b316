package orm

import (
	"encoding/binary"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
)

// Sequence maintains a counter in the database. Each call to NextVal
// increments it by one and persists the new state.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequences are namespaced by the
// bucket they belong to and their name.
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as 8 bytes.
func (s Sequence) NextVal(db tokenext.KVStore) ([]byte, error) {
	_, bz, err := s.increment(db)
	return bz, err
}

// NextInt increments the sequence and returns its state as int.
func (s Sequence) NextInt(db tokenext.KVStore) (int64, error) {
	val, _, err := s.increment(db)
	return val, err
}

// Latest returns the recently returned value of the sequence. This method
// does not modify the sequence state. Use NextVal or NextInt to acquire a
// sequence value that was not used before.
func (s Sequence) Latest(db tokenext.KVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, errors.Wrap(err, "cannot get sequence data")
	}
	if raw == nil {
		return 0, nil, errors.Wrap(errors.ErrNotFound, "sequence not initialized")
	}
	val := int64(binary.BigEndian.Uint64(raw))
	return val, raw, nil
}

func (s Sequence) increment(db tokenext.KVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	val++
	raw = EncodeSequence(val)
	if err := db.Set(s.id, raw); err != nil {
		return 0, nil, err
	}
	return val, raw, nil
}

// DecodeSequence converts a raw sequence value to an int64. A nil value is
// interpreted as zero.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts an int64 to a fixed-width big endian
// representation, so the keys sort properly.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
