package ingestion_test

import (
	"MarginSettle/internal/event"
	"MarginSettle/internal/ingestion"
	"encoding/json"
	"testing"
	"time"
)

func rawFromJSON(t *testing.T, v interface{}) ingestion.RawEvent {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawEvent{
		Subject:   "test",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParseDepositConfirmed(t *testing.T) {
	payload := map[string]interface{}{
		"deposit_id":   "550e8400-e29b-41d4-a716-446655440000",
		"account_id":   "660e8400-e29b-41d4-a716-446655440001",
		"amount":       int64(2_000_000),
		"sequence":     int64(2),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "DepositConfirmed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	dc, ok := evt.(*event.DepositConfirmed)
	if !ok {
		t.Fatalf("expected *event.DepositConfirmed, got %T", evt)
	}

	if dc.Amount != 2_000_000 {
		t.Errorf("amount: got %d, want 2_000_000", dc.Amount)
	}
	if dc.Sequence != 2 {
		t.Errorf("sequence: got %d, want 2", dc.Sequence)
	}
	if dc.EventType() != event.EventTypeDepositConfirmed {
		t.Errorf("event type: got %v, want DepositConfirmed", dc.EventType())
	}
}

func TestParseWithdrawalRequested(t *testing.T) {
	payload := map[string]interface{}{
		"withdrawal_id": "550e8400-e29b-41d4-a716-446655440000",
		"account_id":    "660e8400-e29b-41d4-a716-446655440001",
		"amount":        int64(500_000),
		"sequence":      int64(7),
		"timestamp_us":  int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "WithdrawalRequested")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	wd, ok := evt.(*event.WithdrawalRequested)
	if !ok {
		t.Fatalf("expected *event.WithdrawalRequested, got %T", evt)
	}

	if wd.Amount != 500_000 {
		t.Errorf("amount: got %d, want 500_000", wd.Amount)
	}
	if wd.AccountID.String() != "660e8400-e29b-41d4-a716-446655440001" {
		t.Errorf("account_id: got %s", wd.AccountID)
	}
}

func TestParseOraclePriceUpdate(t *testing.T) {
	payload := map[string]interface{}{
		"market":             "ETH-USD",
		"price":              int64(3_000_00),
		"price_sequence":     int64(100),
		"price_timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "OraclePriceUpdate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	op, ok := evt.(*event.OraclePriceUpdate)
	if !ok {
		t.Fatalf("expected *event.OraclePriceUpdate, got %T", evt)
	}

	if op.Market != "ETH-USD" {
		t.Errorf("market: got %s, want ETH-USD", op.Market)
	}
	if op.Price != 3_000_00 {
		t.Errorf("price: got %d, want 3_000_00", op.Price)
	}
	if op.PriceSequence != 100 {
		t.Errorf("price_sequence: got %d, want 100", op.PriceSequence)
	}
	if op.IdempotencyKey() != "ETH-USD:price:100" {
		t.Errorf("idempotency key: got %s", op.IdempotencyKey())
	}
}

func TestParseFundingRateUpdate(t *testing.T) {
	payload := map[string]interface{}{
		"market":            "BTC-USD",
		"rate":              int64(-250),
		"rate_sequence":     int64(5),
		"rate_timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "FundingRateUpdate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	fr, ok := evt.(*event.FundingRateUpdate)
	if !ok {
		t.Fatalf("expected *event.FundingRateUpdate, got %T", evt)
	}

	if fr.Rate != -250 {
		t.Errorf("rate: got %d, want -250", fr.Rate)
	}
	if fr.RateSequence != 5 {
		t.Errorf("rate_sequence: got %d, want 5", fr.RateSequence)
	}
}

func TestParsePositionOpened(t *testing.T) {
	payload := map[string]interface{}{
		"open_id":           "550e8400-e29b-41d4-a716-446655440000",
		"account_id":        "660e8400-e29b-41d4-a716-446655440001",
		"market":            "BTC-USD",
		"size":              int64(-100),
		"entry_price":       int64(50_000_00),
		"last_funding_rate": int64(10),
		"sequence":          int64(3),
		"timestamp_us":      int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "PositionOpened")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	po, ok := evt.(*event.PositionOpened)
	if !ok {
		t.Fatalf("expected *event.PositionOpened, got %T", evt)
	}

	if po.Size != -100 {
		t.Errorf("size: got %d, want -100", po.Size)
	}
	if po.EntryPrice != 50_000_00 {
		t.Errorf("entry_price: got %d, want 50_000_00", po.EntryPrice)
	}
	if po.LastFundingRate != 10 {
		t.Errorf("last_funding_rate: got %d, want 10", po.LastFundingRate)
	}
}

func TestParseSettlementRequest_WithOverrides(t *testing.T) {
	payload := map[string]interface{}{
		"settle_id":    "550e8400-e29b-41d4-a716-446655440000",
		"account_id":   "660e8400-e29b-41d4-a716-446655440001",
		"market":       "BTC-USD",
		"oracle_price": int64(1100),
		"funding_rate": int64(15),
		"sequence":     int64(9),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "SettlementRequest")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sr, ok := evt.(*event.SettlementRequest)
	if !ok {
		t.Fatalf("expected *event.SettlementRequest, got %T", evt)
	}

	if sr.OraclePrice == nil || *sr.OraclePrice != 1100 {
		t.Errorf("oracle_price: got %v, want 1100", sr.OraclePrice)
	}
	if sr.FundingRate == nil || *sr.FundingRate != 15 {
		t.Errorf("funding_rate: got %v, want 15", sr.FundingRate)
	}
}

func TestParseSettlementRequest_OmittedOverridesAreNil(t *testing.T) {
	payload := map[string]interface{}{
		"settle_id":    "550e8400-e29b-41d4-a716-446655440000",
		"account_id":   "660e8400-e29b-41d4-a716-446655440001",
		"market":       "BTC-USD",
		"sequence":     int64(10),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "SettlementRequest")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sr := evt.(*event.SettlementRequest)
	if sr.OraclePrice != nil {
		t.Errorf("oracle_price: got %v, want nil", *sr.OraclePrice)
	}
	if sr.FundingRate != nil {
		t.Errorf("funding_rate: got %v, want nil", *sr.FundingRate)
	}
}

func TestParseUnknownEventType_Fails(t *testing.T) {
	raw := ingestion.RawEvent{Data: []byte(`{}`)}
	_, err := ingestion.ParseRawEvent(raw, "NonExistentType")
	if err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

func TestParseInvalidJSON_Fails(t *testing.T) {
	raw := ingestion.RawEvent{Data: []byte(`{invalid json`)}
	_, err := ingestion.ParseRawEvent(raw, "DepositConfirmed")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseInvalidUUID_Fails(t *testing.T) {
	payload := map[string]interface{}{
		"deposit_id":   "not-a-uuid",
		"account_id":   "also-not-a-uuid",
		"amount":       int64(1),
		"sequence":     int64(0),
		"timestamp_us": int64(0),
	}

	raw := rawFromJSON(t, payload)
	_, err := ingestion.ParseRawEvent(raw, "DepositConfirmed")
	if err == nil {
		t.Fatal("expected error for invalid UUID")
	}
}
