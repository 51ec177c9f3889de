package journal

import (
	"encoding/binary"
	"time"

	"github.com/pkg/errors"

	"freyr/domain/escrow"
)

type RecordType uint8

const (
	RecordCreate RecordType = iota
	RecordFill
	RecordCancel
)

var ErrBadPayload = errors.New("journal: malformed payload")

// Record is one committed state transition. Seq is the engine op
// sequence, strictly increasing across all record types.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// CreatePayload carries everything replay needs to rebuild an order.
// Balances are never replayed; only the table is.
type CreatePayload struct {
	OrderID    uint64
	Maker      escrow.AccountID
	SellAsset  escrow.AssetID
	BuyAsset   escrow.AssetID
	SellAmount int64
	BuyAmount  int64
}

// Payload layout:
// [id:8][sellAmount:8][buyAmount:8][maker:len16][sellAsset:len16][buyAsset:len16]
func (p CreatePayload) Encode() []byte {
	buf := make([]byte, 0, 24+6+len(p.Maker)+len(p.SellAsset)+len(p.BuyAsset))
	buf = binary.BigEndian.AppendUint64(buf, p.OrderID)
	buf = binary.BigEndian.AppendUint64(buf, uint64(p.SellAmount))
	buf = binary.BigEndian.AppendUint64(buf, uint64(p.BuyAmount))
	buf = appendString(buf, string(p.Maker))
	buf = appendString(buf, string(p.SellAsset))
	buf = appendString(buf, string(p.BuyAsset))
	return buf
}

func DecodeCreate(b []byte) (CreatePayload, error) {
	var p CreatePayload
	if len(b) < 24 {
		return p, ErrBadPayload
	}
	p.OrderID = binary.BigEndian.Uint64(b[0:8])
	p.SellAmount = int64(binary.BigEndian.Uint64(b[8:16]))
	p.BuyAmount = int64(binary.BigEndian.Uint64(b[16:24]))

	rest := b[24:]
	maker, rest, err := readString(rest)
	if err != nil {
		return p, err
	}
	sellAsset, rest, err := readString(rest)
	if err != nil {
		return p, err
	}
	buyAsset, _, err := readString(rest)
	if err != nil {
		return p, err
	}
	p.Maker = escrow.AccountID(maker)
	p.SellAsset = escrow.AssetID(sellAsset)
	p.BuyAsset = escrow.AssetID(buyAsset)
	return p, nil
}

// Fill and cancel payloads are just the order id.
func EncodeOrderRef(id uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, id)
}

func DecodeOrderRef(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, ErrBadPayload
	}
	return binary.BigEndian.Uint64(b), nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(s)))
	return append(buf, s...)
}

func readString(b []byte) (string, []byte, error) {
	if len(b) < 2 {
		return "", nil, ErrBadPayload
	}
	n := int(binary.BigEndian.Uint16(b[:2]))
	if len(b) < 2+n {
		return "", nil, ErrBadPayload
	}
	return string(b[2 : 2+n]), b[2+n:], nil
}
