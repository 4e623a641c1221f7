package event

import (
	"time"

	"github.com/google/uuid"
)

// SettlementRequest triggers one settlement for one account's position in
// one market. OraclePrice and FundingRate override the cached market values
// when set; when nil the core resolves them from its oracle cache.
type SettlementRequest struct {
	SettleID    uuid.UUID
	AccountID   uuid.UUID
	Market      string
	OraclePrice *int64
	FundingRate *int64
	Sequence    int64
	Timestamp   time.Time
}

func (s *SettlementRequest) IdempotencyKey() string {
	return s.SettleID.String()
}

func (s *SettlementRequest) EventType() EventType {
	return EventTypeSettlementRequest
}

func (s *SettlementRequest) MarketID() *string {
	m := s.Market
	return &m
}

func (s *SettlementRequest) SourceSequence() int64 {
	return s.Sequence
}
