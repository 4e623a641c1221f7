package event

import (
	"encoding/json"
	"fmt"
)

// EventTypeFromString maps the persisted discriminator back to its enum.
func EventTypeFromString(s string) EventType {
	switch s {
	case "DepositConfirmed":
		return EventTypeDepositConfirmed
	case "WithdrawalRequested":
		return EventTypeWithdrawalRequested
	case "OraclePriceUpdate":
		return EventTypeOraclePriceUpdate
	case "FundingRateUpdate":
		return EventTypeFundingRateUpdate
	case "PositionOpened":
		return EventTypePositionOpened
	case "SettlementRequest":
		return EventTypeSettlementRequest
	default:
		return EventTypeUnknown
	}
}

// UnmarshalPayload decodes a stored envelope payload back into its typed
// event. Payloads are the json.Marshal form of the event structs, so this
// is the replay-side inverse of what the core writes into envelopes.
func UnmarshalPayload(eventType EventType, data []byte) (Event, error) {
	var evt Event
	switch eventType {
	case EventTypeDepositConfirmed:
		evt = &DepositConfirmed{}
	case EventTypeWithdrawalRequested:
		evt = &WithdrawalRequested{}
	case EventTypeOraclePriceUpdate:
		evt = &OraclePriceUpdate{}
	case EventTypeFundingRateUpdate:
		evt = &FundingRateUpdate{}
	case EventTypePositionOpened:
		evt = &PositionOpened{}
	case EventTypeSettlementRequest:
		evt = &SettlementRequest{}
	default:
		return nil, fmt.Errorf("unknown event type: %v", eventType)
	}

	if err := json.Unmarshal(data, evt); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", eventType, err)
	}
	return evt, nil
}
