// Package assets provides the in-process asset ledger used when no
// external balance system is wired in. It implements the collaborator
// contract the escrow engine depends on: every movement is
// all-or-nothing under one lock.
package assets

import (
	"sync"

	"github.com/pkg/errors"

	"freyr/domain/escrow"
)

var (
	ErrInsufficientFunds = errors.New("assets: insufficient funds")
	ErrNonPositiveAmount = errors.New("assets: amount must be positive")
)

// MemLedger holds balances per (account, asset). Transfer's implicit
// sender is the escrow vault account it was constructed with.
type MemLedger struct {
	mu       sync.Mutex
	vault    escrow.AccountID
	balances map[escrow.AccountID]map[escrow.AssetID]int64
}

func NewMemLedger(vault escrow.AccountID) *MemLedger {
	return &MemLedger{
		vault:    vault,
		balances: make(map[escrow.AccountID]map[escrow.AssetID]int64),
	}
}

// Mint credits an account out of thin air. Seed/test use only.
func (m *MemLedger) Mint(owner escrow.AccountID, asset escrow.AssetID, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credit(owner, asset, amount)
}

func (m *MemLedger) BalanceOf(owner escrow.AccountID, asset escrow.AssetID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[owner][asset]
}

// TransferFrom moves amount of asset from one party to another. The
// movement applies fully or not at all.
func (m *MemLedger) TransferFrom(from, to escrow.AccountID, asset escrow.AssetID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.move(from, to, asset, amount)
}

// Transfer moves amount of asset out of the escrow vault.
func (m *MemLedger) Transfer(to escrow.AccountID, asset escrow.AssetID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.move(m.vault, to, asset, amount)
}

func (m *MemLedger) move(from, to escrow.AccountID, asset escrow.AssetID, amount int64) error {
	// A negative amount would slip past the balance check and debit
	// the recipient instead.
	if amount <= 0 {
		return errors.Wrapf(ErrNonPositiveAmount, "%s -> %s: %d %s", from, to, amount, asset)
	}
	if m.balances[from][asset] < amount {
		return errors.Wrapf(ErrInsufficientFunds, "%s has %d %s, need %d",
			from, m.balances[from][asset], asset, amount)
	}
	m.balances[from][asset] -= amount
	m.credit(to, asset, amount)
	return nil
}

func (m *MemLedger) credit(owner escrow.AccountID, asset escrow.AssetID, amount int64) {
	if m.balances[owner] == nil {
		m.balances[owner] = make(map[escrow.AssetID]int64)
	}
	m.balances[owner][asset] += amount
}
