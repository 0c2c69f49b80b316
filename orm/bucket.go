/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket contains
only one type of object and has a primary index. Values are stored as
protobuf serialized bytes, parsed into a clone of the bucket's prototype on
every read.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well as references to
// sequences used to generate keys for that data.
//
// This is a generic building block that should generally be embedded in a
// type-safe wrapper to ensure all data is of the same type.
// Bucket is a prefixed subspace of the DB. proto defines the default Model,
// all elements of this type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ tokenext.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket for queries. You can define a name here for
// queries, which is different than the bucket name used to prefix the data.
func (b Bucket) Register(name string, r tokenext.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db tokenext.ReadOnlyKVStore, mod string, data []byte) ([]tokenext.Model, error) {
	switch mod {
	case tokenext.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []tokenext.Model{{Key: key, Value: value}}, nil
	case tokenext.PrefixQueryMod:
		prefix := b.DBKey(data)
		return queryPrefix(db, prefix)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier: %q", mod)
	}
}

// DBKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't want
// consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element.
func (b Bucket) Get(db tokenext.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data and reconstructs the data this Bucket
// would return.
//
// Used internally as part of Get. It is exposed mainly as a test helper, but
// can work for any code that wants to parse.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrap(err, "cannot parse stored object")
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto.
func (b Bucket) Save(db tokenext.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete will remove the value at a key.
func (b Bucket) Delete(db tokenext.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	return db.Delete(dbkey)
}

// Sequence returns a Sequence by name.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// queryPrefix returns all models with given key prefix.
func queryPrefix(db tokenext.ReadOnlyKVStore, prefix []byte) ([]tokenext.Model, error) {
	itr, err := db.Iterator(prefix, prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	defer itr.Close()

	var res []tokenext.Model
	for itr.Valid() {
		res = append(res, tokenext.Model{
			Key:   append([]byte(nil), itr.Key()...),
			Value: append([]byte(nil), itr.Value()...),
		})
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixRange turns a prefix into the smallest key that is not covered by
// that prefix, to be used as the iteration end. A nil return means iterate
// until the end of the key space.
func prefixRange(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
