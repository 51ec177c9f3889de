package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"freyr/domain/escrow"
	"freyr/infra/journal"
	"freyr/infra/sequence"
	"freyr/snapshot"
)

/*
Restore rebuilds in-memory state before the engine accepts traffic:
latest snapshot first (if any), then every journal record past it.

Only the order table is rebuilt. Balances belong to the external asset
ledger and are never re-moved; the outbox is not replayed either — the
broadcaster drains whatever it still holds.
*/
func Restore(
	snapDir, jnlDir string,
	ledger *escrow.OrderLedger,
	idSeq, opSeq *sequence.Sequencer,
) error {
	snapSeq, lastID, err := snapshot.Load(snapDir, ledger)
	if err != nil {
		return errors.Wrap(err, "load snapshot")
	}

	maxID := lastID
	lastSeq, err := journal.Replay(jnlDir, snapSeq, func(rec *journal.Record) error {
		switch rec.Type {
		case journal.RecordCreate:
			p, err := journal.DecodeCreate(rec.Data)
			if err != nil {
				return err
			}
			o := &escrow.Order{
				ID:         p.OrderID,
				Maker:      p.Maker,
				SellAsset:  p.SellAsset,
				BuyAsset:   p.BuyAsset,
				SellAmount: p.SellAmount,
				BuyAmount:  p.BuyAmount,
				CreatedAt:  rec.Time,
				Active:     true,
			}
			if err := ledger.Insert(o); err != nil {
				return err
			}
			ledger.AppendToIndex(o.Maker, o.ID)
			if p.OrderID > maxID {
				maxID = p.OrderID
			}
			return nil

		case journal.RecordFill, journal.RecordCancel:
			id, err := journal.DecodeOrderRef(rec.Data)
			if err != nil {
				return err
			}
			if _, err := ledger.Get(id); err != nil {
				return errors.Wrapf(err, "terminal record for unknown order %d", id)
			}
			ledger.SetInactive(id)
			return nil

		default:
			return errors.Errorf("unknown record type %d", rec.Type)
		}
	})
	if err != nil {
		return errors.Wrap(err, "journal replay")
	}

	// Resume sequencing AFTER replay.
	idSeq.Reset(maxID)
	opSeq.Reset(lastSeq)

	logrus.WithFields(logrus.Fields{
		"orders":  ledger.Len(),
		"last_id": maxID,
		"op_seq":  lastSeq,
	}).Info("restore complete")
	return nil
}
