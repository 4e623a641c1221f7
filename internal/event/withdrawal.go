package event

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalRequested debits collateral. The core rejects it when the
// account's collateral does not cover the amount.
type WithdrawalRequested struct {
	WithdrawalID uuid.UUID
	AccountID    uuid.UUID
	Amount       int64 // Fixed-point, must be positive
	Sequence     int64
	Timestamp    time.Time // Versioned input (NOT wall-clock)
}

func (w *WithdrawalRequested) IdempotencyKey() string {
	return w.WithdrawalID.String()
}

func (w *WithdrawalRequested) EventType() EventType {
	return EventTypeWithdrawalRequested
}

func (w *WithdrawalRequested) MarketID() *string {
	return nil // Global event
}

func (w *WithdrawalRequested) SourceSequence() int64 {
	return w.Sequence
}
