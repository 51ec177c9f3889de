package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"freyr/domain/escrow"
)

// Load restores the order table from Dir/snapshot.bin and returns the
// op sequence and last order id it covers. A missing snapshot is not
// an error; the journal alone rebuilds everything.
func Load(dir string, ledger *escrow.OrderLedger) (opSeq, lastID uint64, err error) {
	path := filepath.Join(dir, "snapshot.bin")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil // snapshot optional
		}
		return 0, 0, errors.Wrap(err, "open snapshot")
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, 0, errors.Wrap(err, "decode snapshot")
	}

	// Orders are stored in id order, which is creation order, so the
	// index rebuild preserves each identity's sequence.
	for _, e := range s.Orders {
		o := &escrow.Order{
			ID:         e.ID,
			Maker:      escrow.AccountID(e.Maker),
			SellAsset:  escrow.AssetID(e.SellAsset),
			BuyAsset:   escrow.AssetID(e.BuyAsset),
			SellAmount: e.SellAmount,
			BuyAmount:  e.BuyAmount,
			CreatedAt:  e.CreatedAt,
			Active:     e.Active,
		}
		if err := ledger.Insert(o); err != nil {
			return 0, 0, err
		}
		ledger.AppendToIndex(o.Maker, o.ID)
	}

	return s.OpSeq, s.LastID, nil
}
