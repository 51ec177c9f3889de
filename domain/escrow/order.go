package escrow

// AccountID identifies a party. The empty string is the null identity
// and is rejected everywhere.
type AccountID string

func (a AccountID) Valid() bool { return a != "" }

// AssetID identifies a fungible asset on the external asset ledger.
// The empty string is the null asset.
type AssetID string

func (a AssetID) Valid() bool { return a != "" }

// Order is a pure domain entity: one maker's escrow-backed offer to
// trade SellAmount of SellAsset for BuyAmount of BuyAsset, all or
// nothing. Every field except Active is write-once.
type Order struct {
	ID         uint64
	Maker      AccountID
	SellAsset  AssetID
	BuyAsset   AssetID
	SellAmount int64
	BuyAmount  int64
	CreatedAt  int64

	Active bool
}
