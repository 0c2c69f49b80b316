package tokenidx

import (
	"github.com/iov-one/tokenext/errors"
)

// ErrIndexOutOfBounds is returned when a position based lookup is requested
// for a position at or beyond the current sequence length.
var ErrIndexOutOfBounds = errors.Register(1000, "index out of bounds")
