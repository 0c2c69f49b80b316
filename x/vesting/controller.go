package vesting

import (
	"math"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/orm"
)

// releasedPrefix is the namespace of the per asset released accumulators.
const releasedPrefix = "vesting:rel:"

// Controller evaluates vesting schedules. It keeps no clock and no balance.
// Time and the current pool balance are supplied by the caller on every
// evaluation, so deposits the schedule was never informed of are picked up
// naturally.
type Controller struct {
	bucket *VestingAccountBucket
}

// NewController returns a controller evaluating accounts of given bucket.
func NewController(bucket *VestingAccountBucket) *Controller {
	return &Controller{bucket: bucket}
}

// VestedAmount computes how much of totalReceived is vested at given time.
// totalReceived must be the current pool balance plus the amount already
// released for the asset in question.
//
// Before start nothing is vested. At or after start plus duration the whole
// pool is vested, regardless of when it was deposited. In between the vested
// amount grows linearly, rounded down.
func (c *Controller) VestedAmount(account *VestingAccount, now tokenext.UnixTime, totalReceived int64) (int64, error) {
	if totalReceived < 0 {
		return 0, errors.Wrap(errors.ErrAmount, "negative total received")
	}
	switch {
	case now < account.Start:
		return 0, nil
	case now >= account.End():
		return totalReceived, nil
	}

	elapsed := int64(now - account.Start)
	if elapsed == 0 {
		return 0, nil
	}
	if totalReceived > math.MaxInt64/elapsed {
		return 0, errors.Wrapf(errors.ErrOverflow, "total received %d with %d seconds elapsed", totalReceived, elapsed)
	}
	return totalReceived * elapsed / int64(account.Duration), nil
}

// Released returns the amount already released for given asset. An asset
// that was never released from reports zero.
func (c *Controller) Released(db tokenext.ReadOnlyKVStore, accountID []byte, asset string) (int64, error) {
	raw, err := db.Get(releasedKey(accountID, asset))
	if err != nil {
		return 0, errors.Wrap(err, "cannot get released amount")
	}
	return orm.DecodeSequence(raw), nil
}

// Releasable returns the amount that is vested but not yet released for
// given asset. currentBalance must be the balance the pool address holds for
// that asset right now.
func (c *Controller) Releasable(db tokenext.ReadOnlyKVStore, accountID []byte, asset string, now tokenext.UnixTime, currentBalance int64) (int64, error) {
	amount, _, err := c.releasable(db, accountID, asset, now, currentBalance)
	return amount, err
}

// Release moves the releasable amount for given asset into the released
// accumulator and returns it. The caller must transfer exactly the returned
// amount from the pool to the beneficiary. Releasing zero is a successful
// no-op and does not write anything.
func (c *Controller) Release(db tokenext.KVStore, accountID []byte, asset string, now tokenext.UnixTime, currentBalance int64) (int64, error) {
	amount, released, err := c.releasable(db, accountID, asset, now, currentBalance)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, nil
	}
	// released + amount cannot overflow, both were part of vested already
	if err := db.Set(releasedKey(accountID, asset), orm.EncodeSequence(released+amount)); err != nil {
		return 0, errors.Wrap(err, "cannot store released amount")
	}
	return amount, nil
}

func (c *Controller) releasable(db tokenext.ReadOnlyKVStore, accountID []byte, asset string, now tokenext.UnixTime, currentBalance int64) (amount, released int64, err error) {
	if currentBalance < 0 {
		return 0, 0, errors.Wrap(errors.ErrAmount, "negative balance")
	}
	account, err := c.bucket.GetVestingAccount(db, accountID)
	if err != nil {
		return 0, 0, err
	}
	released, err = c.Released(db, accountID, asset)
	if err != nil {
		return 0, 0, err
	}
	if currentBalance > math.MaxInt64-released {
		return 0, 0, errors.Wrapf(errors.ErrOverflow, "balance %d with %d released", currentBalance, released)
	}
	total := currentBalance + released

	vested, err := c.VestedAmount(account, now, total)
	if err != nil {
		return 0, 0, err
	}
	// the accumulator must never decrease, even if the pool was drained by
	// means the schedule cannot see
	if vested <= released {
		return 0, released, nil
	}
	return vested - released, released, nil
}

func releasedKey(accountID []byte, asset string) []byte {
	out := make([]byte, 0, len(releasedPrefix)+len(accountID)+1+len(asset))
	out = append(out, releasedPrefix...)
	out = append(out, accountID...)
	out = append(out, ':')
	out = append(out, asset...)
	return out
}
