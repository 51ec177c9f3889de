package escrow

// AssetLedger is the external collaborator holding all balances. Each
// call either fully applies the movement or leaves balances unchanged;
// the engine never observes a partial transfer.
//
// Transfer moves funds out of the ledger's escrow vault, so only the
// engine may meaningfully call it. TransferFrom moves funds between
// arbitrary parties on the engine's authority.
type AssetLedger interface {
	BalanceOf(owner AccountID, asset AssetID) int64
	TransferFrom(from, to AccountID, asset AssetID, amount int64) error
	Transfer(to AccountID, asset AssetID, amount int64) error
}
