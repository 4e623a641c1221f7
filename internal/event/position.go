package event

import (
	"time"

	"github.com/google/uuid"
)

// PositionOpened creates or resizes a position. Sizing decisions happen
// upstream (matching, risk); the ledger only records the result. A zero
// Size closes the position's exposure without deleting its checkpoints.
type PositionOpened struct {
	OpenID          uuid.UUID
	AccountID       uuid.UUID
	Market          string
	Size            int64 // Signed: +long, -short, 0 closes exposure
	EntryPrice      int64 // Must be positive when Size != 0
	LastFundingRate int64 // Funding checkpoint at open
	Sequence        int64
	Timestamp       time.Time
}

func (p *PositionOpened) IdempotencyKey() string {
	return p.OpenID.String()
}

func (p *PositionOpened) EventType() EventType {
	return EventTypePositionOpened
}

func (p *PositionOpened) MarketID() *string {
	m := p.Market
	return &m
}

func (p *PositionOpened) SourceSequence() int64 {
	return p.Sequence
}
