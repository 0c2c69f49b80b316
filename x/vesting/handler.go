package vesting

import (
	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/orm"
)

const (
	newVestingAccountCost = 1
	releaseCost           = 1
)

// BalanceController is the functionality of the token ledger this extension
// depends on. The ledger is the single source of truth for balances, the
// schedule never stores one.
type BalanceController interface {
	// Balance returns the amount of given asset held by an account.
	Balance(db tokenext.KVStore, account tokenext.Address, asset string) (int64, error)
	// MoveCoins transfers the amount of given asset between accounts.
	MoveCoins(db tokenext.KVStore, src, dst tokenext.Address, asset string, amount int64) error
}

// RegisterRoutes registers handlers for the vesting message processing.
func RegisterRoutes(r tokenext.Registry, ledger BalanceController) {
	bucket := NewVestingAccountBucket()
	r.Handle(&CreateVestingAccountMsg{}, &createVestingAccountHandler{
		bucket: bucket,
	})
	r.Handle(&ReleaseMsg{}, &releaseHandler{
		bucket:  bucket,
		control: NewController(bucket),
		ledger:  ledger,
	})
}

// RegisterQuery registers the vesting account bucket under /vestingaccounts.
func RegisterQuery(qr tokenext.QueryRouter) {
	NewVestingAccountBucket().Register("vestingaccounts", qr)
}

type createVestingAccountHandler struct {
	bucket *VestingAccountBucket
}

var _ tokenext.Handler = (*createVestingAccountHandler)(nil)

func (h *createVestingAccountHandler) Check(ctx tokenext.Context, db tokenext.KVStore, tx tokenext.Tx) (*tokenext.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenext.CheckResult{GasAllocated: newVestingAccountCost}, nil
}

func (h *createVestingAccountHandler) Deliver(ctx tokenext.Context, db tokenext.KVStore, tx tokenext.Tx) (*tokenext.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	obj, err := h.bucket.Build(db, &VestingAccount{
		Beneficiary: msg.Beneficiary,
		Start:       msg.Start,
		Duration:    msg.Duration,
	})
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot save account")
	}
	return &tokenext.DeliverResult{Data: obj.Key()}, nil
}

func (h *createVestingAccountHandler) validate(ctx tokenext.Context, db tokenext.KVStore, tx tokenext.Tx) (*CreateVestingAccountMsg, error) {
	var msg CreateVestingAccountMsg
	if err := tokenext.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type releaseHandler struct {
	bucket  *VestingAccountBucket
	control *Controller
	ledger  BalanceController
}

var _ tokenext.Handler = (*releaseHandler)(nil)

func (h *releaseHandler) Check(ctx tokenext.Context, db tokenext.KVStore, tx tokenext.Tx) (*tokenext.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenext.CheckResult{GasAllocated: releaseCost}, nil
}

func (h *releaseHandler) Deliver(ctx tokenext.Context, db tokenext.KVStore, tx tokenext.Tx) (*tokenext.DeliverResult, error) {
	msg, account, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	blockNow, err := tokenext.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	now := tokenext.AsUnixTime(blockNow)

	balance, err := h.ledger.Balance(db, account.Address, msg.Asset)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get pool balance")
	}
	amount, err := h.control.Release(db, msg.AccountId, msg.Asset, now, balance)
	if err != nil {
		return nil, err
	}
	// releasing zero is a successful no-op
	if amount > 0 {
		if err := h.ledger.MoveCoins(db, account.Address, account.Beneficiary, msg.Asset, amount); err != nil {
			return nil, errors.Wrap(err, "cannot transfer to beneficiary")
		}
	}
	return &tokenext.DeliverResult{Data: orm.EncodeSequence(amount)}, nil
}

// validate returns the message and the account it refers to. Anyone can
// request a release, the transfer destination is fixed to the beneficiary.
func (h *releaseHandler) validate(ctx tokenext.Context, db tokenext.KVStore, tx tokenext.Tx) (*ReleaseMsg, *VestingAccount, error) {
	var msg ReleaseMsg
	if err := tokenext.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	account, err := h.bucket.GetVestingAccount(db, msg.AccountId)
	if err != nil {
		return nil, nil, err
	}
	return &msg, account, nil
}
