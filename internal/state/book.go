package state

import (
	"fmt"
	"math/big"
	"sort"

	"MarginSettle/internal/numeric"
	"MarginSettle/internal/settle"

	"github.com/google/uuid"
)

// AccountBook holds every position and collateral balance in memory.
// Not thread-safe: only the single-writer core touches it.
type AccountBook struct {
	positions map[PositionKey]*settle.Position
	balances  map[uuid.UUID]*settle.Balance
}

type PositionKey struct {
	AccountID uuid.UUID
	Market    string
}

func NewAccountBook() *AccountBook {
	return &AccountBook{
		positions: make(map[PositionKey]*settle.Position),
		balances:  make(map[uuid.UUID]*settle.Balance),
	}
}

// GetPosition returns existing position or nil
func (ab *AccountBook) GetPosition(accountID uuid.UUID, market string) *settle.Position {
	return ab.positions[PositionKey{AccountID: accountID, Market: market}]
}

// SetPosition creates or replaces a position (position open/resize and
// snapshot restore).
func (ab *AccountBook) SetPosition(pos *settle.Position) {
	key := PositionKey{AccountID: pos.AccountID, Market: pos.Market}
	ab.positions[key] = pos
}

// GetOrCreateBalance returns the account's balance, creating a zero one.
func (ab *AccountBook) GetOrCreateBalance(accountID uuid.UUID) *settle.Balance {
	bal := ab.balances[accountID]
	if bal == nil {
		bal = &settle.Balance{
			AccountID:  accountID,
			Collateral: new(big.Int),
		}
		ab.balances[accountID] = bal
	}
	return bal
}

// GetBalance returns existing balance or nil
func (ab *AccountBook) GetBalance(accountID uuid.UUID) *settle.Balance {
	return ab.balances[accountID]
}

// Deposit credits collateral. Amount must be positive.
func (ab *AccountBook) Deposit(accountID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %d", amount)
	}

	bal := ab.GetOrCreateBalance(accountID)
	next := new(big.Int).Add(bal.Collateral, big.NewInt(amount))
	if !numeric.FitsInt128(next) {
		return fmt.Errorf("deposit overflows collateral for account %s", accountID)
	}

	bal.Collateral.Set(next)
	return nil
}

// Withdraw debits collateral. Rejected when it would drive the balance
// negative: settlement may take collateral below zero, withdrawals may not.
func (ab *AccountBook) Withdraw(accountID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("withdrawal amount must be positive, got %d", amount)
	}

	bal := ab.GetBalance(accountID)
	if bal == nil {
		return fmt.Errorf("no balance for account %s", accountID)
	}

	next := new(big.Int).Sub(bal.Collateral, big.NewInt(amount))
	if next.Sign() < 0 {
		return fmt.Errorf("insufficient collateral for account %s: have %s, want %d",
			accountID, bal.Collateral, amount)
	}

	bal.Collateral.Set(next)
	return nil
}

// RestoreBalance directly sets a balance (used for snapshot restore)
func (ab *AccountBook) RestoreBalance(bal *settle.Balance) {
	ab.balances[bal.AccountID] = bal
}

// AccountPositions returns the account's positions sorted by market.
func (ab *AccountBook) AccountPositions(accountID uuid.UUID) []*settle.Position {
	result := make([]*settle.Position, 0)
	for key, pos := range ab.positions {
		if key.AccountID == accountID {
			result = append(result, pos)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Market < result[j].Market
	})
	return result
}

// AllPositions returns all positions (for snapshot creation)
func (ab *AccountBook) AllPositions() []*settle.Position {
	result := make([]*settle.Position, 0, len(ab.positions))
	for _, pos := range ab.positions {
		result = append(result, pos)
	}
	return result
}

// AllBalances returns all balances (for snapshot creation)
func (ab *AccountBook) AllBalances() []*settle.Balance {
	result := make([]*settle.Balance, 0, len(ab.balances))
	for _, bal := range ab.balances {
		result = append(result, bal)
	}
	return result
}

// AccountDigest returns deterministic serialization of one account's
// balance and positions, in market order, for state hashing.
func (ab *AccountBook) AccountDigest(accountID uuid.UUID) []byte {
	buf := make([]byte, 0, 256)

	// account_id (16 bytes UUID binary)
	buf = append(buf, accountID[:]...)

	// collateral (sign byte + length-prefixed magnitude)
	if bal := ab.balances[accountID]; bal != nil {
		buf = appendBigInt(buf, bal.Collateral)
	} else {
		buf = appendBigInt(buf, new(big.Int))
	}

	for _, pos := range ab.AccountPositions(accountID) {
		buf = appendPosition(buf, pos)
	}

	return buf
}

func appendPosition(buf []byte, pos *settle.Position) []byte {
	// market (length-prefixed)
	buf = append(buf, byte(len(pos.Market)))
	buf = append(buf, []byte(pos.Market)...)

	// size, entry_price, last_funding_rate, version (8 bytes LE each)
	buf = appendInt64LE(buf, pos.Size)
	buf = appendInt64LE(buf, pos.EntryPrice)
	buf = appendInt64LE(buf, pos.LastFundingRate)
	buf = appendInt64LE(buf, pos.Version)

	return buf
}

func appendBigInt(buf []byte, v *big.Int) []byte {
	switch v.Sign() {
	case -1:
		buf = append(buf, 0xff)
	case 1:
		buf = append(buf, 0x01)
	default:
		buf = append(buf, 0x00)
	}

	mag := v.Bytes()
	buf = append(buf, byte(len(mag)))
	return append(buf, mag...)
}

func appendInt64LE(buf []byte, v int64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}
