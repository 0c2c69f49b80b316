package tokentest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/tokenext"
)

var addressCounter uint64

// NewCondition returns a stable but unique condition. Each call returns a
// different value, so tests do not have to maintain a registry of used
// identities.
func NewCondition() tokenext.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, atomic.AddUint64(&addressCounter, 1))
	return tokenext.NewCondition("test", "nonce", data)
}

// NewAddress returns an address that is unique for this process run.
func NewAddress() tokenext.Address {
	return NewCondition().Address()
}
