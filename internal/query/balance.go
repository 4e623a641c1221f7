package query

import (
	"github.com/google/uuid"
)

// BalanceResponse represents account balance state for API queries.
// Collateral is a decimal string: after settlements it can exceed int64
// and may be negative.
type BalanceResponse struct {
	AccountID  uuid.UUID `json:"account_id"`
	Collateral string    `json:"collateral"`

	// Metadata
	AsOfSequence int64 `json:"as_of_sequence"` // last applied event sequence
}

// AccountSummary bundles an account's balance with its open positions.
type AccountSummary struct {
	AccountID uuid.UUID          `json:"account_id"`
	Balance   BalanceResponse    `json:"balance"`
	Positions []PositionResponse `json:"positions"`

	AsOfSequence int64 `json:"as_of_sequence"`
}
