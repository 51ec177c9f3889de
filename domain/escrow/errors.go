package escrow

import "github.com/pkg/errors"

// Rejection taxonomy. Every failed operation surfaces exactly one of
// these; callers match with errors.Is. None of them is retried by the
// engine.
var (
	ErrInvalidIdentity     = errors.New("invalid identity")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidAsset        = errors.New("invalid asset")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotActive      = errors.New("order not active")
	ErrSellerIsBuyer       = errors.New("maker cannot fill own order")
	ErrNotOwner            = errors.New("caller is not the maker")

	// ErrDuplicateOrder cannot occur while ids come from the
	// sequencer; the ledger still refuses the insert.
	ErrDuplicateOrder = errors.New("duplicate order id")
)
