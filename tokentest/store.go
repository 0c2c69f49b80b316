package tokentest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/tokenext/store"
	"github.com/iov-one/tokenext/store/iavl"
)

// CommitKVStore returns a store instance that is using a database
// implementation the same as the production environment. State is persisted
// in a temporary directory that is removed during the test cleanup.
func CommitKVStore(t testing.TB) store.CommitKVStore {
	t.Helper()

	dir, err := ioutil.TempDir("", "tokenext-iavl-")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	db := iavl.NewCommitStore(dir, "test")
	if err := db.LoadLatestVersion(); err != nil {
		t.Fatalf("cannot load initial store version: %s", err)
	}
	return db
}
