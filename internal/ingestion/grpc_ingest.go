package ingestion

import (
	"MarginSettle/internal/event"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GRPCIngestService provides admin/manual event injection via gRPC. This is
// for admin operations and manual event injection, not for high-throughput
// ingestion (use NATS for that).
type GRPCIngestService struct {
	eventChan chan<- event.Event
}

func NewGRPCIngestService(eventChan chan<- event.Event) *GRPCIngestService {
	return &GRPCIngestService{eventChan: eventChan}
}

// EventChan exposes the injection channel for the gRPC transport layer.
func (s *GRPCIngestService) EventChan() chan<- event.Event {
	return s.eventChan
}

// InjectDeposit manually injects a DepositConfirmed event.
func (s *GRPCIngestService) InjectDeposit(
	ctx context.Context,
	accountID uuid.UUID,
	amount int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	evt := &event.DepositConfirmed{
		DepositID: uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Sequence:  time.Now().UnixMicro(), // Admin-injected: use timestamp as sequence
		Timestamp: time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectWithdrawal manually injects a WithdrawalRequested event.
func (s *GRPCIngestService) InjectWithdrawal(
	ctx context.Context,
	accountID uuid.UUID,
	amount int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	evt := &event.WithdrawalRequested{
		WithdrawalID: uuid.New(),
		AccountID:    accountID,
		Amount:       amount,
		Sequence:     time.Now().UnixMicro(),
		Timestamp:    time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectOraclePrice manually injects an OraclePriceUpdate event.
func (s *GRPCIngestService) InjectOraclePrice(
	ctx context.Context,
	market string,
	price int64,
	priceSequence int64,
) error {
	if price <= 0 {
		return fmt.Errorf("oracle price must be positive")
	}

	evt := &event.OraclePriceUpdate{
		Market:         market,
		Price:          price,
		PriceSequence:  priceSequence,
		PriceTimestamp: time.Now().UnixMicro(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectFundingRate manually injects a FundingRateUpdate event.
func (s *GRPCIngestService) InjectFundingRate(
	ctx context.Context,
	market string,
	rate int64,
	rateSequence int64,
) error {
	evt := &event.FundingRateUpdate{
		Market:        market,
		Rate:          rate,
		RateSequence:  rateSequence,
		RateTimestamp: time.Now().UnixMicro(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectSettlement manually injects a SettlementRequest event. Price and
// rate are optional overrides; pass nil to settle against the cached oracle
// values.
func (s *GRPCIngestService) InjectSettlement(
	ctx context.Context,
	accountID uuid.UUID,
	market string,
	oraclePrice *int64,
	fundingRate *int64,
) error {
	evt := &event.SettlementRequest{
		SettleID:    uuid.New(),
		AccountID:   accountID,
		Market:      market,
		OraclePrice: oraclePrice,
		FundingRate: fundingRate,
		Sequence:    time.Now().UnixMicro(),
		Timestamp:   time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
