package escrow

// Event types on the wire.
const (
	EvOrderCreated   = "order_created"
	EvOrderFilled    = "order_filled"
	EvOrderCancelled = "order_cancelled"
)

// Event is the notification emitted after each committed transition.
// Seq is the engine's op sequence, so consumers can detect gaps.
// Maker and SellAmount are set only for order_created.
type Event struct {
	V          int       `json:"v"`
	Type       string    `json:"type"`
	Seq        uint64    `json:"seq"`
	OrderID    uint64    `json:"order_id"`
	Maker      AccountID `json:"maker,omitempty"`
	SellAmount int64     `json:"sell_amount,omitempty"`
	Time       int64     `json:"ts"`
}
