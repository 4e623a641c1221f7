package ingestion

import (
	"MarginSettle/internal/event"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ParseRawEvent converts a RawEvent (JSON bytes + event type string) into a
// typed event.Event. The ingestion shell validates, parses, and converts raw
// events before sending to the deterministic core.
func ParseRawEvent(raw RawEvent, eventType string) (event.Event, error) {
	switch eventType {
	case "DepositConfirmed":
		return parseDepositConfirmed(raw.Data)
	case "WithdrawalRequested":
		return parseWithdrawalRequested(raw.Data)
	case "OraclePriceUpdate":
		return parseOraclePriceUpdate(raw.Data)
	case "FundingRateUpdate":
		return parseFundingRateUpdate(raw.Data)
	case "PositionOpened":
		return parsePositionOpened(raw.Data)
	case "SettlementRequest":
		return parseSettlementRequest(raw.Data)
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS.
// Field names use snake_case to match upstream producers.

type depositJSON struct {
	DepositID   string `json:"deposit_id"`
	AccountID   string `json:"account_id"`
	Amount      int64  `json:"amount"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parseDepositConfirmed(data []byte) (*event.DepositConfirmed, error) {
	var j depositJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse DepositConfirmed: %w", err)
	}
	depositID, err := uuid.Parse(j.DepositID)
	if err != nil {
		return nil, fmt.Errorf("parse deposit_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.DepositConfirmed{
		DepositID: depositID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: time.UnixMicro(j.TimestampUs),
	}, nil
}

type withdrawalJSON struct {
	WithdrawalID string `json:"withdrawal_id"`
	AccountID    string `json:"account_id"`
	Amount       int64  `json:"amount"`
	Sequence     int64  `json:"sequence"`
	TimestampUs  int64  `json:"timestamp_us"`
}

func parseWithdrawalRequested(data []byte) (*event.WithdrawalRequested, error) {
	var j withdrawalJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse WithdrawalRequested: %w", err)
	}
	wdID, err := uuid.Parse(j.WithdrawalID)
	if err != nil {
		return nil, fmt.Errorf("parse withdrawal_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.WithdrawalRequested{
		WithdrawalID: wdID,
		AccountID:    accountID,
		Amount:       j.Amount,
		Sequence:     j.Sequence,
		Timestamp:    time.UnixMicro(j.TimestampUs),
	}, nil
}

type oraclePriceJSON struct {
	Market         string `json:"market"`
	Price          int64  `json:"price"`
	PriceSequence  int64  `json:"price_sequence"`
	PriceTimestamp int64  `json:"price_timestamp_us"`
}

func parseOraclePriceUpdate(data []byte) (*event.OraclePriceUpdate, error) {
	var j oraclePriceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse OraclePriceUpdate: %w", err)
	}
	return &event.OraclePriceUpdate{
		Market:         j.Market,
		Price:          j.Price,
		PriceSequence:  j.PriceSequence,
		PriceTimestamp: j.PriceTimestamp,
	}, nil
}

type fundingRateJSON struct {
	Market        string `json:"market"`
	Rate          int64  `json:"rate"`
	RateSequence  int64  `json:"rate_sequence"`
	RateTimestamp int64  `json:"rate_timestamp_us"`
}

func parseFundingRateUpdate(data []byte) (*event.FundingRateUpdate, error) {
	var j fundingRateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse FundingRateUpdate: %w", err)
	}
	return &event.FundingRateUpdate{
		Market:        j.Market,
		Rate:          j.Rate,
		RateSequence:  j.RateSequence,
		RateTimestamp: j.RateTimestamp,
	}, nil
}

type positionOpenedJSON struct {
	OpenID          string `json:"open_id"`
	AccountID       string `json:"account_id"`
	Market          string `json:"market"`
	Size            int64  `json:"size"`
	EntryPrice      int64  `json:"entry_price"`
	LastFundingRate int64  `json:"last_funding_rate"`
	Sequence        int64  `json:"sequence"`
	TimestampUs     int64  `json:"timestamp_us"`
}

func parsePositionOpened(data []byte) (*event.PositionOpened, error) {
	var j positionOpenedJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PositionOpened: %w", err)
	}
	openID, err := uuid.Parse(j.OpenID)
	if err != nil {
		return nil, fmt.Errorf("parse open_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.PositionOpened{
		OpenID:          openID,
		AccountID:       accountID,
		Market:          j.Market,
		Size:            j.Size,
		EntryPrice:      j.EntryPrice,
		LastFundingRate: j.LastFundingRate,
		Sequence:        j.Sequence,
		Timestamp:       time.UnixMicro(j.TimestampUs),
	}, nil
}

type settlementRequestJSON struct {
	SettleID    string `json:"settle_id"`
	AccountID   string `json:"account_id"`
	Market      string `json:"market"`
	OraclePrice *int64 `json:"oracle_price,omitempty"`
	FundingRate *int64 `json:"funding_rate,omitempty"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parseSettlementRequest(data []byte) (*event.SettlementRequest, error) {
	var j settlementRequestJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse SettlementRequest: %w", err)
	}
	settleID, err := uuid.Parse(j.SettleID)
	if err != nil {
		return nil, fmt.Errorf("parse settle_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.SettlementRequest{
		SettleID:    settleID,
		AccountID:   accountID,
		Market:      j.Market,
		OraclePrice: j.OraclePrice,
		FundingRate: j.FundingRate,
		Sequence:    j.Sequence,
		Timestamp:   time.UnixMicro(j.TimestampUs),
	}, nil
}
