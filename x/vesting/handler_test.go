package vesting

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
	"github.com/iov-one/tokenext/orm"
	"github.com/iov-one/tokenext/store"
	"github.com/iov-one/tokenext/tokentest"
	"github.com/iov-one/tokenext/tokentest/assert"
)

// ledgerMock is an in-memory BalanceController.
type ledgerMock struct {
	balances map[string]int64
}

var _ BalanceController = (*ledgerMock)(nil)

func newLedgerMock() *ledgerMock {
	return &ledgerMock{balances: make(map[string]int64)}
}

func (l *ledgerMock) key(account tokenext.Address, asset string) string {
	return account.String() + "/" + asset
}

func (l *ledgerMock) deposit(account tokenext.Address, asset string, amount int64) {
	l.balances[l.key(account, asset)] += amount
}

func (l *ledgerMock) Balance(db tokenext.KVStore, account tokenext.Address, asset string) (int64, error) {
	return l.balances[l.key(account, asset)], nil
}

func (l *ledgerMock) MoveCoins(db tokenext.KVStore, src, dst tokenext.Address, asset string, amount int64) error {
	if l.balances[l.key(src, asset)] < amount {
		return errors.Wrap(errors.ErrAmount, "insufficient funds")
	}
	l.balances[l.key(src, asset)] -= amount
	l.balances[l.key(dst, asset)] += amount
	return nil
}

// registry collects handlers by message path.
type registry struct {
	handlers map[string]tokenext.Handler
}

var _ tokenext.Registry = (*registry)(nil)

func newRegistry() *registry {
	return &registry{handlers: make(map[string]tokenext.Handler)}
}

func (r *registry) Handle(msg tokenext.Msg, h tokenext.Handler) {
	r.handlers[msg.Path()] = h
}

func (r *registry) deliver(t testing.TB, ctx tokenext.Context, db tokenext.KVStore, msg tokenext.Msg) (*tokenext.DeliverResult, error) {
	t.Helper()
	h, ok := r.handlers[msg.Path()]
	if !ok {
		t.Fatalf("no handler for %q", msg.Path())
	}
	return h.Deliver(ctx, db, &tokentest.Tx{Msg: msg})
}

func blockCtx(unix int64) tokenext.Context {
	return tokenext.WithBlockTime(context.Background(), time.Unix(unix, 0))
}

func TestCreateAndReleaseVestingAccount(t *testing.T) {
	db := store.MemStore()
	ledger := newLedgerMock()
	r := newRegistry()
	RegisterRoutes(r, ledger)

	beneficiary := tokentest.NewAddress()

	res, err := r.deliver(t, blockCtx(900), db, &CreateVestingAccountMsg{
		Beneficiary: beneficiary,
		Start:       1000,
		Duration:    1000,
	})
	assert.Nil(t, err)
	accountID := res.Data
	assert.Equal(t, tokentest.SequenceID(1), accountID)

	account, err := NewVestingAccountBucket().GetVestingAccount(db, accountID)
	assert.Nil(t, err)
	ledger.deposit(account.Address, NativeAsset, 100)

	// before start nothing can be released
	res, err = r.deliver(t, blockCtx(999), db, &ReleaseMsg{AccountId: accountID, Asset: NativeAsset})
	assert.Nil(t, err)
	assert.Equal(t, orm.EncodeSequence(0), res.Data)

	// half way through half the pool is paid out
	res, err = r.deliver(t, blockCtx(1500), db, &ReleaseMsg{AccountId: accountID, Asset: NativeAsset})
	assert.Nil(t, err)
	assert.Equal(t, orm.EncodeSequence(50), res.Data)

	got, err := ledger.Balance(db, beneficiary, NativeAsset)
	assert.Nil(t, err)
	assert.Equal(t, int64(50), got)
	got, err = ledger.Balance(db, account.Address, NativeAsset)
	assert.Nil(t, err)
	assert.Equal(t, int64(50), got)

	// an immediate retry is a successful no-op
	res, err = r.deliver(t, blockCtx(1500), db, &ReleaseMsg{AccountId: accountID, Asset: NativeAsset})
	assert.Nil(t, err)
	assert.Equal(t, orm.EncodeSequence(0), res.Data)

	// once ended the rest is paid out
	res, err = r.deliver(t, blockCtx(2000), db, &ReleaseMsg{AccountId: accountID, Asset: NativeAsset})
	assert.Nil(t, err)
	assert.Equal(t, orm.EncodeSequence(50), res.Data)

	// a late deposit is fully vested right away
	ledger.deposit(account.Address, NativeAsset, 60)
	res, err = r.deliver(t, blockCtx(3000), db, &ReleaseMsg{AccountId: accountID, Asset: NativeAsset})
	assert.Nil(t, err)
	assert.Equal(t, orm.EncodeSequence(60), res.Data)

	got, err = ledger.Balance(db, beneficiary, NativeAsset)
	assert.Nil(t, err)
	assert.Equal(t, int64(160), got)
}

func TestCreateVestingAccountInvalidMessage(t *testing.T) {
	db := store.MemStore()
	r := newRegistry()
	RegisterRoutes(r, newLedgerMock())

	_, err := r.deliver(t, blockCtx(900), db, &CreateVestingAccountMsg{
		Start:    1000,
		Duration: 1000,
	})
	assert.IsErr(t, errors.ErrEmpty, err)

	// a failed creation must not leave any account behind
	_, err = NewVestingAccountBucket().GetVestingAccount(db, tokentest.SequenceID(1))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestReleaseUnknownAccount(t *testing.T) {
	db := store.MemStore()
	r := newRegistry()
	RegisterRoutes(r, newLedgerMock())

	_, err := r.deliver(t, blockCtx(1500), db, &ReleaseMsg{
		AccountId: tokentest.SequenceID(666),
		Asset:     NativeAsset,
	})
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestReleaseChecksTransactionFirst(t *testing.T) {
	db := store.MemStore()
	r := newRegistry()
	RegisterRoutes(r, newLedgerMock())
	h := r.handlers["vesting/release"]

	_, err := h.Check(blockCtx(1500), db, &tokentest.Tx{Msg: &ReleaseMsg{}})
	assert.IsErr(t, errors.ErrEmpty, err)

	res, err := h.Check(blockCtx(1500), db, &tokentest.Tx{Msg: &tokentest.Msg{RoutePath: "vesting/release"}})
	assert.IsErr(t, errors.ErrType, err)
	if res != nil {
		t.Fatalf("a failed check must not produce a result: %+v", res)
	}
}

func TestGenesisInitializer(t *testing.T) {
	db := store.MemStore()
	beneficiary := tokentest.NewAddress()

	opts := tokenext.Options{
		"vesting": []byte(`[
			{"beneficiary": "` + beneficiary.String() + `", "start": 1000, "duration": "1000s"}
		]`),
	}
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	account, err := NewVestingAccountBucket().GetVestingAccount(db, tokentest.SequenceID(1))
	assert.Nil(t, err)
	assert.Equal(t, beneficiary, account.Beneficiary)
	assert.Equal(t, tokenext.UnixTime(1000), account.Start)
	assert.Equal(t, tokenext.UnixDuration(1000), account.Duration)
}
