package vesting

import (
	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/orm"
)

// NativeAsset is the distinguished asset identifier of the native currency
// of the surrounding ledger. All other identifiers denote fungible asset
// classes and their format is the ledger's business.
const NativeAsset = "native"

var _ orm.CloneableData = (*VestingAccount)(nil)

// Validate ensures the account is a valid schedule.
func (va *VestingAccount) Validate() error {
	if err := va.Beneficiary.Validate(); err != nil {
		return errors.Field("Beneficiary", err, "invalid beneficiary address")
	}
	if err := va.Start.Validate(); err != nil {
		return errors.Field("Start", err, "invalid start time")
	}
	// zero duration is legal and vests the whole pool at start
	if err := va.Duration.Validate(); err != nil {
		return errors.Field("Duration", err, "invalid duration")
	}
	if err := va.Address.Validate(); err != nil {
		return errors.Field("Address", err, "invalid pool address")
	}
	return nil
}

// Copy returns a deep copy of this account.
func (va *VestingAccount) Copy() orm.CloneableData {
	return &VestingAccount{
		Beneficiary: va.Beneficiary.Clone(),
		Start:       va.Start,
		Duration:    va.Duration,
		Address:     va.Address.Clone(),
	}
}

// End returns the time the whole pool is vested at.
func (va *VestingAccount) End() tokenext.UnixTime {
	return va.Start.Add(va.Duration.Duration())
}

// VestingCondition returns the condition controlling the pool of the vesting
// account with the given ID.
func VestingCondition(accountID []byte) tokenext.Condition {
	return tokenext.NewCondition("vesting", "seq", accountID)
}

// VestingAccountBucket stores vesting accounts, addressed by a sequence ID.
type VestingAccountBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewVestingAccountBucket returns a bucket for managing vesting accounts.
func NewVestingAccountBucket() *VestingAccountBucket {
	b := orm.NewBucket("vestacc", orm.NewSimpleObj(nil, &VestingAccount{}))
	return &VestingAccountBucket{
		Bucket: b,
		idSeq:  b.Sequence("id"),
	}
}

// Build assigns an ID and the pool address to given account and returns the
// object ready to be saved.
func (b *VestingAccountBucket) Build(db tokenext.KVStore, account *VestingAccount) (orm.Object, error) {
	key, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire ID")
	}
	account.Address = VestingCondition(key).Address()
	return orm.NewSimpleObj(key, account), nil
}

// GetVestingAccount returns an account by its ID. It fails with ErrNotFound
// if no account exists under given ID.
func (b *VestingAccountBucket) GetVestingAccount(db tokenext.ReadOnlyKVStore, accountID []byte) (*VestingAccount, error) {
	obj, err := b.Get(db, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get account")
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "vesting account %x", accountID)
	}
	account, ok := obj.Value().(*VestingAccount)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return account, nil
}
