package escrow

import (
	"testing"

	"freyr/infra/sequence"
)

func newTestLedger() *OrderLedger {
	return NewOrderLedger(sequence.New(0))
}

func TestAllocateDenseFromOne(t *testing.T) {
	l := newTestLedger()
	for want := uint64(1); want <= 5; want++ {
		if got := l.Allocate(); got != want {
			t.Fatalf("Allocate got=%d want=%d", got, want)
		}
	}
}

func TestInsertAndGet(t *testing.T) {
	l := newTestLedger()
	id := l.Allocate()
	o := &Order{ID: id, Maker: "alice", SellAsset: "X", BuyAsset: "Y", SellAmount: 100, BuyAmount: 50, Active: true}
	if err := l.Insert(o); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	got, err := l.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Maker != "alice" || !got.Active {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestInsertDuplicate(t *testing.T) {
	l := newTestLedger()
	id := l.Allocate()
	if err := l.Insert(&Order{ID: id}); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if err := l.Insert(&Order{ID: id}); err != ErrDuplicateOrder {
		t.Errorf("expected ErrDuplicateOrder, got %v", err)
	}
}

func TestGetUnallocated(t *testing.T) {
	l := newTestLedger()
	if _, err := l.Get(42); err != ErrOrderNotFound {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestSetInactive(t *testing.T) {
	l := newTestLedger()
	id := l.Allocate()
	_ = l.Insert(&Order{ID: id, Active: true})
	l.SetInactive(id)
	o, _ := l.Get(id)
	if o.Active {
		t.Error("order should be inactive")
	}
}

func TestIndexKeepsTerminalOrders(t *testing.T) {
	l := newTestLedger()
	for i := 0; i < 3; i++ {
		id := l.Allocate()
		_ = l.Insert(&Order{ID: id, Maker: "alice", Active: true})
		l.AppendToIndex("alice", id)
	}
	l.SetInactive(2)

	orders := l.ListByIdentity("alice")
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, o := range orders {
		if o.ID != uint64(i+1) {
			t.Errorf("orders out of creation order: %v", orders)
		}
	}
	if orders[1].Active || !orders[0].Active || !orders[2].Active {
		t.Error("list should reflect live status")
	}
}

func TestListUnknownIdentity(t *testing.T) {
	l := newTestLedger()
	if got := l.ListByIdentity("nobody"); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}
