package event

import (
	"time"

	"github.com/google/uuid"
)

// DepositConfirmed credits collateral after an external transfer finalizes.
type DepositConfirmed struct {
	DepositID uuid.UUID
	AccountID uuid.UUID
	Amount    int64 // Fixed-point, must be positive
	Sequence  int64
	Timestamp time.Time // Versioned input (NOT wall-clock)
}

func (d *DepositConfirmed) IdempotencyKey() string {
	return d.DepositID.String()
}

func (d *DepositConfirmed) EventType() EventType {
	return EventTypeDepositConfirmed
}

func (d *DepositConfirmed) MarketID() *string {
	return nil // Global event
}

func (d *DepositConfirmed) SourceSequence() int64 {
	return d.Sequence
}
