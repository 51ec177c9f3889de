package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"freyr/domain/escrow"
	"freyr/infra/assets"
	"freyr/infra/sequence"
)

const vault = escrow.AccountID("escrow-vault")

type memSink struct {
	events []escrow.Event
}

func (m *memSink) Emit(ev escrow.Event) error {
	m.events = append(m.events, ev)
	return nil
}

type env struct {
	svc    *EscrowService
	assets *assets.MemLedger
	sink   *memSink
}

func newTestEnv(t *testing.T) *env {
	t.Helper()
	led := assets.NewMemLedger(vault)
	sink := &memSink{}
	svc := NewEscrowService(
		escrow.NewOrderLedger(sequence.New(0)),
		led,
		vault,
		sequence.New(0),
		nil, // no journal
		sink,
	)
	return &env{svc: svc, assets: led, sink: sink}
}

func TestCreateOrderEscrowsDeposit(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)

	id, err := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	require.EqualValues(t, 0, e.assets.BalanceOf("alice", "X"))
	require.EqualValues(t, 100, e.assets.BalanceOf(vault, "X"))

	o, err := e.svc.GetOrder(id)
	require.NoError(t, err)
	require.True(t, o.Active)
	require.Equal(t, escrow.AccountID("alice"), o.Maker)
	require.EqualValues(t, 100, o.SellAmount)
	require.EqualValues(t, 50, o.BuyAmount)

	require.Len(t, e.sink.events, 1)
	ev := e.sink.events[0]
	require.Equal(t, escrow.EvOrderCreated, ev.Type)
	require.Equal(t, id, ev.OrderID)
	require.Equal(t, escrow.AccountID("alice"), ev.Maker)
	require.EqualValues(t, 100, ev.SellAmount)
}

func TestCreateOrderPreconditions(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 10)

	cases := []struct {
		name       string
		caller     escrow.AccountID
		sell, buy  escrow.AssetID
		sAmt, bAmt int64
		want       error
	}{
		{"null caller", "", "X", "Y", 1, 1, escrow.ErrInvalidIdentity},
		{"zero sell amount", "alice", "X", "Y", 0, 1, escrow.ErrInvalidAmount},
		{"negative sell amount", "alice", "X", "Y", -5, 1, escrow.ErrInvalidAmount},
		{"zero buy amount", "alice", "X", "Y", 1, 0, escrow.ErrInvalidAmount},
		{"null sell asset", "alice", "", "Y", 1, 1, escrow.ErrInvalidAsset},
		{"null buy asset", "alice", "X", "", 1, 1, escrow.ErrInvalidAsset},
		{"insufficient balance", "alice", "X", "Y", 11, 1, escrow.ErrInsufficientBalance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.svc.CreateOrder(tc.caller, tc.sell, tc.buy, tc.sAmt, tc.bAmt)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// No state crept in through the rejections.
	require.EqualValues(t, 10, e.assets.BalanceOf("alice", "X"))
	require.EqualValues(t, 0, e.assets.BalanceOf(vault, "X"))
	require.Empty(t, e.sink.events)
}

func TestSameAssetSwapAllowed(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 10)

	_, err := e.svc.CreateOrder("alice", "X", "X", 10, 10)
	require.NoError(t, err)
}

func TestFillOrderSettlesAtomically(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)
	e.assets.Mint("bob", "Y", 80)

	id, err := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.NoError(t, err)

	require.NoError(t, e.svc.FillOrder("bob", id))

	require.EqualValues(t, 30, e.assets.BalanceOf("bob", "Y"))
	require.EqualValues(t, 50, e.assets.BalanceOf("alice", "Y"))
	require.EqualValues(t, 100, e.assets.BalanceOf("bob", "X"))
	require.EqualValues(t, 0, e.assets.BalanceOf("alice", "X"))
	require.EqualValues(t, 0, e.assets.BalanceOf(vault, "X"))

	// Conservation: 100 X and 80 Y in circulation, before and after.
	totalX := e.assets.BalanceOf("alice", "X") + e.assets.BalanceOf("bob", "X") + e.assets.BalanceOf(vault, "X")
	totalY := e.assets.BalanceOf("alice", "Y") + e.assets.BalanceOf("bob", "Y") + e.assets.BalanceOf(vault, "Y")
	require.EqualValues(t, 100, totalX)
	require.EqualValues(t, 80, totalY)

	o, err := e.svc.GetOrder(id)
	require.NoError(t, err)
	require.False(t, o.Active)

	last := e.sink.events[len(e.sink.events)-1]
	require.Equal(t, escrow.EvOrderFilled, last.Type)
	require.Equal(t, id, last.OrderID)
}

func TestMakerCannotFillOwnOrder(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)
	e.assets.Mint("alice", "Y", 100)

	id, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.ErrorIs(t, e.svc.FillOrder("alice", id), escrow.ErrSellerIsBuyer)

	o, _ := e.svc.GetOrder(id)
	require.True(t, o.Active)
}

func TestFillUnknownOrder(t *testing.T) {
	e := newTestEnv(t)
	require.ErrorIs(t, e.svc.FillOrder("bob", 42), escrow.ErrOrderNotFound)
}

func TestFillInsufficientBalance(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)
	e.assets.Mint("bob", "Y", 49)

	id, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.ErrorIs(t, e.svc.FillOrder("bob", id), escrow.ErrInsufficientBalance)

	require.EqualValues(t, 49, e.assets.BalanceOf("bob", "Y"))
	require.EqualValues(t, 100, e.assets.BalanceOf(vault, "X"))
}

func TestTerminalOrdersStayTerminal(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 200)
	e.assets.Mint("bob", "Y", 100)

	filled, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	cancelled, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.NoError(t, e.svc.FillOrder("bob", filled))
	require.NoError(t, e.svc.CancelOrder("alice", cancelled))

	bobY := e.assets.BalanceOf("bob", "Y")
	aliceX := e.assets.BalanceOf("alice", "X")

	require.ErrorIs(t, e.svc.FillOrder("bob", filled), escrow.ErrOrderNotActive)
	require.ErrorIs(t, e.svc.CancelOrder("alice", filled), escrow.ErrOrderNotActive)
	require.ErrorIs(t, e.svc.FillOrder("bob", cancelled), escrow.ErrOrderNotActive)
	require.ErrorIs(t, e.svc.CancelOrder("alice", cancelled), escrow.ErrOrderNotActive)

	// No balance moved on any rejected retry.
	require.Equal(t, bobY, e.assets.BalanceOf("bob", "Y"))
	require.Equal(t, aliceX, e.assets.BalanceOf("alice", "X"))
}

func TestCancelRefundsSellAmount(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)

	// Asymmetric on purpose: refund must be 100 (sell), never 7 (buy).
	id, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 7)
	require.NoError(t, e.svc.CancelOrder("alice", id))

	require.EqualValues(t, 100, e.assets.BalanceOf("alice", "X"))
	require.EqualValues(t, 0, e.assets.BalanceOf(vault, "X"))

	o, _ := e.svc.GetOrder(id)
	require.False(t, o.Active)

	last := e.sink.events[len(e.sink.events)-1]
	require.Equal(t, escrow.EvOrderCancelled, last.Type)
}

func TestOnlyMakerMayCancel(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)

	id, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.ErrorIs(t, e.svc.CancelOrder("mallory", id), escrow.ErrNotOwner)

	o, _ := e.svc.GetOrder(id)
	require.True(t, o.Active)
	require.EqualValues(t, 100, e.assets.BalanceOf(vault, "X"))
}

func TestFillRollbackOnEscrowLegFailure(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 100)
	e.assets.Mint("bob", "Y", 50)

	id, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)

	// Swap in a ledger that fails the vault-to-taker leg.
	broken := &brokenEscrowLeg{MemLedger: e.assets}
	e.svc.assets = broken

	err := e.svc.FillOrder("bob", id)
	require.Error(t, err)

	// Payment leg compensated, order still active and fillable.
	require.EqualValues(t, 50, e.assets.BalanceOf("bob", "Y"))
	require.EqualValues(t, 0, e.assets.BalanceOf("alice", "Y"))
	require.EqualValues(t, 100, e.assets.BalanceOf(vault, "X"))

	o, _ := e.svc.GetOrder(id)
	require.True(t, o.Active)

	e.svc.assets = e.assets
	require.NoError(t, e.svc.FillOrder("bob", id))
}

type brokenEscrowLeg struct {
	*assets.MemLedger
}

func (b *brokenEscrowLeg) Transfer(escrow.AccountID, escrow.AssetID, int64) error {
	return errors.New("asset ledger unavailable")
}

func TestListOrdersHistoryAndStatus(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 300)
	e.assets.Mint("bob", "Y", 50)

	a, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	b, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	c, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.NoError(t, e.svc.FillOrder("bob", a))
	require.NoError(t, e.svc.CancelOrder("alice", b))

	orders, err := e.svc.ListOrders("alice")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, []uint64{a, b, c}, []uint64{orders[0].ID, orders[1].ID, orders[2].ID})
	require.False(t, orders[0].Active)
	require.False(t, orders[1].Active)
	require.True(t, orders[2].Active)

	_, err = e.svc.ListOrders("")
	require.ErrorIs(t, err, escrow.ErrInvalidIdentity)

	orders, err = e.svc.ListOrders("nobody")
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestOpSequenceIsContinuous(t *testing.T) {
	e := newTestEnv(t)
	e.assets.Mint("alice", "X", 200)
	e.assets.Mint("bob", "Y", 50)

	a, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	b, _ := e.svc.CreateOrder("alice", "X", "Y", 100, 50)
	require.NoError(t, e.svc.FillOrder("bob", a))
	require.NoError(t, e.svc.CancelOrder("alice", b))

	require.Len(t, e.sink.events, 4)
	for i, ev := range e.sink.events {
		require.Equal(t, uint64(i+1), ev.Seq)
		require.Equal(t, 1, ev.V)
	}
}
