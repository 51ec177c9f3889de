package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"freyr/domain/escrow"
)

type Writer struct {
	Dir string
}

// Write replaces the on-disk snapshot with the current table. The
// caller must hold the engine lock so the table cannot move under us.
func (w *Writer) Write(opSeq uint64, ledger *escrow.OrderLedger) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create snapshot dir")
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}

	s := Snapshot{
		OpSeq:   opSeq,
		LastID:  ledger.LastID(),
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, ledger.Len()),
	}

	ledger.Walk(func(o *escrow.Order) {
		s.Orders = append(s.Orders, OrderEntry{
			ID:         o.ID,
			Maker:      string(o.Maker),
			SellAsset:  string(o.SellAsset),
			BuyAsset:   string(o.BuyAsset),
			SellAmount: o.SellAmount,
			BuyAmount:  o.BuyAmount,
			CreatedAt:  o.CreatedAt,
			Active:     o.Active,
		})
	})

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encode snapshot")
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
