package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/tokenext/store"
)

// how many historic versions the tree keeps in memory
const cacheSize = 10000

// CommitStore manages an iavl committed state. It is the same storage
// implementation the production ledger environment runs on, so tests against
// it exercise exactly the persistence path of a deployment.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store backed by a leveldb database under the
// given path.
func NewCommitStore(path, name string) *CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, path)
	tree := iavl.NewMutableTree(db, cacheSize)
	return &CommitStore{tree: tree}
}

// MockCommitStore creates a new in-memory store to be used in tests.
func MockCommitStore() *CommitStore {
	db := dbm.NewMemDB()
	tree := iavl.NewMutableTree(db, cacheSize)
	return &CommitStore{tree: tree}
}

// Get returns the value at the last committed state.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	version := s.tree.Version()
	_, value := s.tree.GetVersioned(key, version)
	return value, nil
}

// Commit saves the next version to disk, and returns info about it.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, err
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a crash
// during the last commit, it is guaranteed to return a stable state, even if
// older.
func (s *CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap returns a scratch-pad on top of the working tree. All writes go
// into the tree but only become durable once Write commits them.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return treeCache{parent: s}
}

// treeCache exposes the mutable working tree as a KVCacheWrap. Write commits
// the accumulated changes as the next tree version.
type treeCache struct {
	parent *CommitStore
}

var _ store.KVCacheWrap = treeCache{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (c treeCache) Get(key []byte) ([]byte, error) {
	_, value := c.parent.tree.Get(key)
	return value, nil
}

// Has checks if a key exists. Panics on nil key.
func (c treeCache) Has(key []byte) (bool, error) {
	return c.parent.tree.Has(key), nil
}

// Set adds a new value to the working tree.
func (c treeCache) Set(key, value []byte) error {
	c.parent.tree.Set(key, value)
	return nil
}

// Delete removes from the working tree.
func (c treeCache) Delete(key []byte) error {
	c.parent.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically.
func (c treeCache) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(c)
}

// CacheWrap wraps us once again, with a btree.
func (c treeCache) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(c, c.NewBatch(), nil)
}

// Write commits the working tree as the next version.
func (c treeCache) Write() error {
	_, err := c.parent.Commit()
	return err
}

// Discard is a no-op... just garbage collect.
func (c treeCache) Discard() {}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (c treeCache) Iterator(start, end []byte) (store.Iterator, error) {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	c.parent.tree.IterateRange(start, end, true, add)
	return store.NewSliceIterator(res), nil
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
func (c treeCache) ReverseIterator(start, end []byte) (store.Iterator, error) {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	c.parent.tree.IterateRange(start, end, false, add)
	return store.NewSliceIterator(res), nil
}
