package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"MarginSettle/internal/event"

	"github.com/google/uuid"
)

func TestEventTypeStringRoundTrip(t *testing.T) {
	types := []event.EventType{
		event.EventTypeDepositConfirmed,
		event.EventTypeWithdrawalRequested,
		event.EventTypeOraclePriceUpdate,
		event.EventTypeFundingRateUpdate,
		event.EventTypePositionOpened,
		event.EventTypeSettlementRequest,
	}

	for _, et := range types {
		if got := event.EventTypeFromString(et.String()); got != et {
			t.Errorf("round trip %s: got %v, want %v", et, got, et)
		}
	}

	if got := event.EventTypeFromString("NoSuchEvent"); got != event.EventTypeUnknown {
		t.Errorf("unknown name: got %v, want EventTypeUnknown", got)
	}
}

func TestUnmarshalPayload_Deposit(t *testing.T) {
	orig := &event.DepositConfirmed{
		DepositID: uuid.New(),
		AccountID: uuid.New(),
		Amount:    5000,
		Sequence:  7,
		Timestamp: time.UnixMicro(1_700_000_000_000_000).UTC(),
	}

	payload, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := event.UnmarshalPayload(event.EventTypeDepositConfirmed, payload)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, ok := decoded.(*event.DepositConfirmed)
	if !ok {
		t.Fatalf("decoded type = %T, want *event.DepositConfirmed", decoded)
	}
	if got.DepositID != orig.DepositID || got.AccountID != orig.AccountID {
		t.Error("identity fields did not round trip")
	}
	if got.Amount != 5000 || got.Sequence != 7 {
		t.Errorf("amount/sequence = %d/%d, want 5000/7", got.Amount, got.Sequence)
	}
	if !got.Timestamp.Equal(orig.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, orig.Timestamp)
	}
	if got.IdempotencyKey() != orig.IdempotencyKey() {
		t.Errorf("idempotency key = %s, want %s", got.IdempotencyKey(), orig.IdempotencyKey())
	}
}

func TestUnmarshalPayload_SettlementRequestOverrides(t *testing.T) {
	price := int64(1100)
	orig := &event.SettlementRequest{
		SettleID:    uuid.New(),
		AccountID:   uuid.New(),
		Market:      "ETH-USD",
		OraclePrice: &price,
		FundingRate: nil, // resolve from oracle cache
		Sequence:    3,
		Timestamp:   time.Now().UTC(),
	}

	payload, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := event.UnmarshalPayload(event.EventTypeSettlementRequest, payload)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := decoded.(*event.SettlementRequest)
	if got.OraclePrice == nil || *got.OraclePrice != 1100 {
		t.Errorf("oracle price override did not round trip: %v", got.OraclePrice)
	}
	if got.FundingRate != nil {
		t.Errorf("funding rate = %v, want nil", *got.FundingRate)
	}
	if got.Market != "ETH-USD" {
		t.Errorf("market = %s, want ETH-USD", got.Market)
	}
}

func TestUnmarshalPayload_UnknownType(t *testing.T) {
	if _, err := event.UnmarshalPayload(event.EventTypeUnknown, []byte(`{}`)); err == nil {
		t.Error("expected error for unknown event type")
	}
}

func TestUnmarshalPayload_InvalidJSON(t *testing.T) {
	if _, err := event.UnmarshalPayload(event.EventTypeDepositConfirmed, []byte(`{not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
