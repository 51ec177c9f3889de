package outbox

import (
	"encoding/json"
	"testing"

	"freyr/domain/escrow"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestEmitAndScanPending(t *testing.T) {
	o := openTestOutbox(t)
	ev := escrow.Event{V: 1, Type: escrow.EvOrderCreated, Seq: 1, OrderID: 1, Maker: "alice", SellAmount: 100}
	if err := o.Emit(ev); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	var seen []uint64
	err := o.ScanPending(func(seq uint64, rec Record) error {
		seen = append(seen, seq)
		if rec.State != StateNew {
			t.Errorf("state got=%v want=NEW", rec.State)
		}
		var got escrow.Event
		if err := json.Unmarshal(rec.Payload, &got); err != nil {
			t.Fatalf("payload not json: %v", err)
		}
		if got != ev {
			t.Errorf("event got=%+v want=%+v", got, ev)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ScanPending failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != 1 {
		t.Errorf("seen=%v", seen)
	}
}

func TestAckedSkippedByScan(t *testing.T) {
	o := openTestOutbox(t)
	for seq := uint64(1); seq <= 3; seq++ {
		_ = o.Emit(escrow.Event{V: 1, Type: escrow.EvOrderFilled, Seq: seq, OrderID: seq})
	}
	if err := o.UpdateState(2, StateAcked, 0); err != nil {
		t.Fatalf("UpdateState failed: %v", err)
	}

	var seen []uint64
	_ = o.ScanPending(func(seq uint64, _ Record) error {
		seen = append(seen, seq)
		return nil
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Errorf("expected [1 3], got %v", seen)
	}
}

func TestTruncateAckedUpTo(t *testing.T) {
	o := openTestOutbox(t)
	for seq := uint64(1); seq <= 3; seq++ {
		_ = o.Emit(escrow.Event{V: 1, Type: escrow.EvOrderCancelled, Seq: seq, OrderID: seq})
		_ = o.UpdateState(seq, StateAcked, 0)
	}
	if err := o.TruncateAckedUpTo(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := o.Get(1); err == nil {
		t.Error("seq 1 should be deleted")
	}
	if _, err := o.Get(3); err != nil {
		t.Errorf("seq 3 should survive: %v", err)
	}
}

func TestUpdateStatePreservesPayload(t *testing.T) {
	o := openTestOutbox(t)
	ev := escrow.Event{V: 1, Type: escrow.EvOrderFilled, Seq: 9, OrderID: 4}
	_ = o.Emit(ev)
	_ = o.UpdateState(9, StateSent, 1)

	rec, err := o.Get(9)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Errorf("record %+v", rec)
	}
	var got escrow.Event
	_ = json.Unmarshal(rec.Payload, &got)
	if got != ev {
		t.Errorf("payload lost: %+v", got)
	}
}
