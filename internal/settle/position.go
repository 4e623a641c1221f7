package settle

import (
	"math/big"

	"github.com/google/uuid"
)

// Position is one account's exposure in one market. Size and the two
// checkpoints are fixed-point int64; opening and resizing happen upstream,
// settlement only advances the checkpoints.
type Position struct {
	AccountID       uuid.UUID
	Market          string
	Size            int64 // Fixed-point: quantity scale, signed (+long, -short)
	EntryPrice      int64 // Fixed-point: price scale
	LastFundingRate int64 // Fixed-point: rate scale, cumulative per-unit rate
	Version         int64 // Bumped on every successful settlement
}

// IsFlat returns true if the position has no exposure.
func (p *Position) IsFlat() bool {
	return p.Size == 0
}

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Balance is one account's cross-margin collateral. Collateral spans the
// signed 128-bit range and may go negative after an adverse settlement.
type Balance struct {
	AccountID  uuid.UUID
	Collateral *big.Int
}

// Clone returns an independent copy.
func (b *Balance) Clone() *Balance {
	return &Balance{
		AccountID:  b.AccountID,
		Collateral: new(big.Int).Set(b.Collateral),
	}
}

// Input carries the two market values a settlement consumes.
type Input struct {
	OraclePrice int64 // Fixed-point: price scale, must be positive
	FundingRate int64 // Fixed-point: rate scale, cumulative per-unit rate
}

// Event records one completed settlement. All amounts are full-width; the
// int64 fields mirror the position fields they came from.
type Event struct {
	AccountID       uuid.UUID
	Market          string
	Size            int64
	OraclePrice     int64
	FundingRate     int64
	UnrealizedPnL   *big.Int
	FundingPayment  *big.Int
	NetSettlement   *big.Int
	OldEntryPrice   int64
	NewEntryPrice   int64
	OldFundingRate  int64
	NewFundingRate  int64
	OldCollateral   *big.Int
	NewCollateral   *big.Int
	PositionVersion int64
}
