package service

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"freyr/domain/escrow"
	"freyr/infra/journal"
	"freyr/infra/sequence"
)

/*
EscrowService is the ONLY write entry point into the system.

All coordination between:
- domain (order ledger)
- the external asset ledger
- infra (journal, outbox)
happens here. One RWMutex makes each operation indivisible: no
concurrent call can observe an order between its balance checks and
its commit, which is what rules out double fills and reentrant drains.
*/

// EventSink receives one notification per committed transition.
type EventSink interface {
	Emit(escrow.Event) error
}

type EscrowService struct {
	mu sync.RWMutex

	ledger *escrow.OrderLedger
	assets escrow.AssetLedger
	vault  escrow.AccountID

	opSeq *sequence.Sequencer
	jnl   *journal.Journal // nil disables durability
	sink  EventSink        // nil disables notifications

	log *logrus.Entry
}

// NewEscrowService wires all dependencies. No globals.
func NewEscrowService(
	ledger *escrow.OrderLedger,
	assets escrow.AssetLedger,
	vault escrow.AccountID,
	opSeq *sequence.Sequencer,
	jnl *journal.Journal,
	sink EventSink,
) *EscrowService {
	return &EscrowService{
		ledger: ledger,
		assets: assets,
		vault:  vault,
		opSeq:  opSeq,
		jnl:    jnl,
		sink:   sink,
		log:    logrus.WithField("component", "escrow"),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// CreateOrder escrows sellAmount of the caller's sellAsset and opens
// an order asking buyAmount of buyAsset in return. Nothing changes
// unless the deposit transfer succeeds.
func (s *EscrowService) CreateOrder(
	caller escrow.AccountID,
	sellAsset, buyAsset escrow.AssetID,
	sellAmount, buyAmount int64,
) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !caller.Valid() {
		return 0, escrow.ErrInvalidIdentity
	}
	if sellAmount <= 0 || buyAmount <= 0 {
		return 0, escrow.ErrInvalidAmount
	}
	if !sellAsset.Valid() || !buyAsset.Valid() {
		return 0, escrow.ErrInvalidAsset
	}
	if s.assets.BalanceOf(caller, sellAsset) < sellAmount {
		return 0, escrow.ErrInsufficientBalance
	}

	// The deposit gates the whole operation: a failed transfer leaves
	// no trace of the order.
	if err := s.assets.TransferFrom(caller, s.vault, sellAsset, sellAmount); err != nil {
		return 0, errors.Wrap(err, "escrow deposit")
	}

	id := s.ledger.Allocate()
	o := &escrow.Order{
		ID:         id,
		Maker:      caller,
		SellAsset:  sellAsset,
		BuyAsset:   buyAsset,
		SellAmount: sellAmount,
		BuyAmount:  buyAmount,
		CreatedAt:  time.Now().UnixNano(),
		Active:     true,
	}
	if err := s.ledger.Insert(o); err != nil {
		// Defensive; ids come from the sequencer. Return the deposit.
		_ = s.assets.Transfer(caller, sellAsset, sellAmount)
		return 0, err
	}
	s.ledger.AppendToIndex(caller, id)

	seq := s.commit(journal.RecordCreate, journal.CreatePayload{
		OrderID:    id,
		Maker:      caller,
		SellAsset:  sellAsset,
		BuyAsset:   buyAsset,
		SellAmount: sellAmount,
		BuyAmount:  buyAmount,
	}.Encode())

	s.emit(escrow.Event{
		V:          1,
		Type:       escrow.EvOrderCreated,
		Seq:        seq,
		OrderID:    id,
		Maker:      caller,
		SellAmount: sellAmount,
		Time:       o.CreatedAt,
	})

	s.log.WithFields(logrus.Fields{
		"order": id, "maker": caller,
		"sell": sellAsset, "buy": buyAsset,
	}).Info("order created")

	return id, nil
}

// FillOrder settles the order as one unit: buyAmount moves from the
// caller to the maker, the escrowed sellAmount moves to the caller,
// the order goes terminal.
func (s *EscrowService) FillOrder(caller escrow.AccountID, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !caller.Valid() {
		return escrow.ErrInvalidIdentity
	}
	o, err := s.ledger.Get(id)
	if err != nil {
		return err
	}
	if !o.Active {
		return escrow.ErrOrderNotActive
	}
	if caller == o.Maker {
		return escrow.ErrSellerIsBuyer
	}
	if s.assets.BalanceOf(caller, o.BuyAsset) < o.BuyAmount {
		return escrow.ErrInsufficientBalance
	}

	if err := s.assets.TransferFrom(caller, o.Maker, o.BuyAsset, o.BuyAmount); err != nil {
		return errors.Wrap(err, "payment leg")
	}
	if err := s.assets.Transfer(caller, o.SellAsset, o.SellAmount); err != nil {
		// Compensate the payment leg so the order stays whole.
		if rbErr := s.assets.TransferFrom(o.Maker, caller, o.BuyAsset, o.BuyAmount); rbErr != nil {
			s.log.WithError(rbErr).WithField("order", id).
				Error("escrow leg failed and rollback failed")
		}
		return errors.Wrap(err, "escrow leg")
	}

	s.ledger.SetInactive(id)

	seq := s.commit(journal.RecordFill, journal.EncodeOrderRef(id))
	s.emit(escrow.Event{
		V:       1,
		Type:    escrow.EvOrderFilled,
		Seq:     seq,
		OrderID: id,
		Time:    time.Now().UnixNano(),
	})

	s.log.WithFields(logrus.Fields{"order": id, "taker": caller}).Info("order filled")
	return nil
}

// CancelOrder returns the escrowed sellAmount to the maker and
// deactivates the order. Only the maker may cancel.
func (s *EscrowService) CancelOrder(caller escrow.AccountID, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !caller.Valid() {
		return escrow.ErrInvalidIdentity
	}
	o, err := s.ledger.Get(id)
	if err != nil {
		return err
	}
	if !o.Active {
		return escrow.ErrOrderNotActive
	}
	if caller != o.Maker {
		return escrow.ErrNotOwner
	}

	// Refund is the originally escrowed quantity, never BuyAmount.
	if err := s.assets.Transfer(o.Maker, o.SellAsset, o.SellAmount); err != nil {
		return errors.Wrap(err, "escrow refund")
	}

	s.ledger.SetInactive(id)

	seq := s.commit(journal.RecordCancel, journal.EncodeOrderRef(id))
	s.emit(escrow.Event{
		V:       1,
		Type:    escrow.EvOrderCancelled,
		Seq:     seq,
		OrderID: id,
		Time:    time.Now().UnixNano(),
	})

	s.log.WithField("order", id).Info("order cancelled")
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// ListOrders returns identity's orders in creation order, terminal
// ones included. Snapshots reflect status at call time.
func (s *EscrowService) ListOrders(identity escrow.AccountID) ([]escrow.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !identity.Valid() {
		return nil, escrow.ErrInvalidIdentity
	}
	return s.ledger.ListByIdentity(identity), nil
}

// GetOrder returns a snapshot of one order.
func (s *EscrowService) GetOrder(id uint64) (escrow.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, err := s.ledger.Get(id)
	if err != nil {
		return escrow.Order{}, err
	}
	return *o, nil
}

//
// ──────────────────────────────────────────────────────────
// Commit plumbing
// ──────────────────────────────────────────────────────────
//

// commit assigns the op sequence and journals the transition. The
// state is already applied; a journal failure degrades durability,
// not correctness, so it is logged and not surfaced.
func (s *EscrowService) commit(t journal.RecordType, payload []byte) uint64 {
	seq := s.opSeq.Next()
	if s.jnl == nil {
		return seq
	}
	if err := s.jnl.Append(journal.NewRecord(t, seq, payload)); err != nil {
		s.log.WithError(err).WithField("seq", seq).Error("journal append failed")
	}
	return seq
}

func (s *EscrowService) emit(ev escrow.Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Emit(ev); err != nil {
		s.log.WithError(err).WithField("seq", ev.Seq).Error("event emit failed")
	}
}
