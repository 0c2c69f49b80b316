package store

import "github.com/iov-one/tokenext"

// Move references for all storage types into this package for shorter names
// everywhere.

type ReadOnlyKVStore = tokenext.ReadOnlyKVStore
type KVStore = tokenext.KVStore
type SetDeleter = tokenext.SetDeleter
type Batch = tokenext.Batch
type Iterator = tokenext.Iterator
type CacheableKVStore = tokenext.CacheableKVStore
type KVCacheWrap = tokenext.KVCacheWrap
type CommitKVStore = tokenext.CommitKVStore
type CommitID = tokenext.CommitID
type Model = tokenext.Model
