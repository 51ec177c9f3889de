package escrow

import "freyr/infra/sequence"

// OrderLedger owns the order table and the per-identity index. It is
// single-writer and deterministic: all mutation goes through the
// escrow service, which serializes callers, so the ledger itself holds
// no lock.
type OrderLedger struct {
	seq    *sequence.Sequencer
	orders map[uint64]*Order
	index  map[AccountID][]uint64
}

func NewOrderLedger(seq *sequence.Sequencer) *OrderLedger {
	return &OrderLedger{
		seq:    seq,
		orders: make(map[uint64]*Order),
		index:  make(map[AccountID][]uint64),
	}
}

// Allocate returns the next unused order id. Ids are dense, start at 1
// and are never reused.
func (l *OrderLedger) Allocate() uint64 {
	return l.seq.Next()
}

// Insert stores a new record under o.ID.
func (l *OrderLedger) Insert(o *Order) error {
	if _, ok := l.orders[o.ID]; ok {
		return ErrDuplicateOrder
	}
	l.orders[o.ID] = o
	return nil
}

// Get returns the live record for id.
func (l *OrderLedger) Get(id uint64) (*Order, error) {
	o, ok := l.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// SetInactive flips the order to its terminal state. The service
// guarantees it is called at most once per order.
func (l *OrderLedger) SetInactive(id uint64) {
	if o, ok := l.orders[id]; ok {
		o.Active = false
	}
}

// AppendToIndex records that identity created id. The index is
// append-only; terminal orders stay listed as history.
func (l *OrderLedger) AppendToIndex(identity AccountID, id uint64) {
	l.index[identity] = append(l.index[identity], id)
}

// ListByIdentity resolves the identity's ids to order snapshots in
// creation order. Snapshots reflect status at call time.
func (l *OrderLedger) ListByIdentity(identity AccountID) []Order {
	ids := l.index[identity]
	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := l.orders[id]; ok {
			out = append(out, *o)
		}
	}
	return out
}

// Walk visits every order. Used by the snapshot writer.
func (l *OrderLedger) Walk(fn func(*Order)) {
	// Dense ids from 1 give a deterministic visit order.
	for id := uint64(1); id <= l.seq.Current(); id++ {
		if o, ok := l.orders[id]; ok {
			fn(o)
		}
	}
}

// LastID returns the highest allocated order id, 0 if none.
func (l *OrderLedger) LastID() uint64 {
	return l.seq.Current()
}

// Len returns the number of stored orders.
func (l *OrderLedger) Len() int {
	return len(l.orders)
}
