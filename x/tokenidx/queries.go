package tokenidx

import (
	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
)

// RegisterQuery exposes the enumeration index to outward read queries.
//
// "/tokens" serves the global sequence. With the key modifier the data must
// be an 8 byte big endian position, with the prefix modifier all positions
// are returned in order.
//
// "/tokens/owner" serves per owner sequences. The data must start with the
// owner address, optionally followed by an 8 byte big endian position.
func RegisterQuery(qr tokenext.QueryRouter) {
	qr.Register("/tokens", globalQuery{})
	qr.Register("/tokens/owner", ownerQuery{})
}

type globalQuery struct{}

var _ tokenext.QueryHandler = globalQuery{}

func (globalQuery) Query(db tokenext.ReadOnlyKVStore, mod string, data []byte) ([]tokenext.Model, error) {
	set := globalSet()
	switch mod {
	case tokenext.KeyQueryMod:
		if len(data) != 8 {
			return nil, errors.Wrap(errors.ErrInput, "position must be 8 bytes")
		}
		return queryAt(db, set, decodeOrder(data))
	case tokenext.PrefixQueryMod:
		return queryAll(db, set)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier: %q", mod)
	}
}

type ownerQuery struct{}

var _ tokenext.QueryHandler = ownerQuery{}

func (ownerQuery) Query(db tokenext.ReadOnlyKVStore, mod string, data []byte) ([]tokenext.Model, error) {
	switch len(data) {
	case tokenext.AddressLength:
		if mod != tokenext.PrefixQueryMod {
			return nil, errors.Wrap(errors.ErrInput, "owner data without position requires the prefix modifier")
		}
		return queryAll(db, ownerSet(tokenext.Address(data)))
	case tokenext.AddressLength + 8:
		if mod != tokenext.KeyQueryMod {
			return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier: %q", mod)
		}
		owner := tokenext.Address(data[:tokenext.AddressLength])
		return queryAt(db, ownerSet(owner), decodeOrder(data[tokenext.AddressLength:]))
	default:
		return nil, errors.Wrap(errors.ErrInput, "data must be an owner address with an optional 8 byte position")
	}
}

func queryAt(db tokenext.ReadOnlyKVStore, set indexedSet, index uint64) ([]tokenext.Model, error) {
	id, err := set.at(db, index)
	if err != nil {
		return nil, err
	}
	return []tokenext.Model{
		{Key: set.listKey(index), Value: encodeOrder(id)},
	}, nil
}

func queryAll(db tokenext.ReadOnlyKVStore, set indexedSet) ([]tokenext.Model, error) {
	n, err := set.length(db)
	if err != nil {
		return nil, err
	}
	res := make([]tokenext.Model, 0, n)
	for i := uint64(0); i < n; i++ {
		m, err := queryAt(db, set, i)
		if err != nil {
			return nil, err
		}
		res = append(res, m...)
	}
	return res, nil
}
