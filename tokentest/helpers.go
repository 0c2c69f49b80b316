package tokentest

import (
	"encoding/binary"
)

// SequenceID returns an ID encoded the same way the orm sequence does it.
// This is a convenience function for testing entities addressed by a
// sequence counter.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
