// Package snapshot persists a point-in-time image of the full order
// table so the journal can be truncated. Loading a snapshot and
// replaying the journal past its op sequence reproduces the table
// exactly.
package snapshot

import "time"

type Snapshot struct {
	// OpSeq is the engine op sequence the snapshot covers; journal
	// records at or below it are redundant once the snapshot exists.
	OpSeq  uint64
	LastID uint64

	Created time.Time
	Orders  []OrderEntry
}

// OrderEntry is the gob-stable mirror of escrow.Order, in id order.
// The per-identity index is rebuilt from Maker during load.
type OrderEntry struct {
	ID         uint64
	Maker      string
	SellAsset  string
	BuyAsset   string
	SellAmount int64
	BuyAmount  int64
	CreatedAt  int64
	Active     bool
}
