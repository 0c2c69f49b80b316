package vesting

import (
	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ tokenext.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to
// the database.
func (*Initializer) FromGenesis(opts tokenext.Options, db tokenext.KVStore) error {
	var accounts []struct {
		Beneficiary tokenext.Address      `json:"beneficiary"`
		Start       tokenext.UnixTime     `json:"start"`
		Duration    tokenext.UnixDuration `json:"duration"`
	}
	if err := opts.ReadOptions("vesting", &accounts); err != nil {
		return errors.Wrap(err, "cannot load vesting accounts")
	}

	bucket := NewVestingAccountBucket()
	for i, a := range accounts {
		obj, err := bucket.Build(db, &VestingAccount{
			Beneficiary: a.Beneficiary,
			Start:       a.Start,
			Duration:    a.Duration,
		})
		if err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := bucket.Save(db, obj); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
