package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// OutboundPublisher publishes executed settlements to NATS for downstream
// consumers (risk, reporting, liquidation engines). Outbound records are
// published after persistence is confirmed.
// Subjects follow the pattern: margin.settlements.{market}
type OutboundPublisher struct {
	js        jetstream.JetStream
	inputChan <-chan PublishableSettlement
}

// PublishableSettlement is an executed settlement ready for outbound
// publishing. Widened amounts are serialized as decimal strings so consumers
// never round them through float64.
type PublishableSettlement struct {
	Sequence        int64     `json:"sequence"`
	AccountID       string    `json:"account_id"`
	Market          string    `json:"market"`
	Size            int64     `json:"size"`
	OraclePrice     int64     `json:"oracle_price"`
	FundingRate     int64     `json:"funding_rate"`
	UnrealizedPnL   string    `json:"unrealized_pnl"`
	FundingPayment  string    `json:"funding_payment"`
	NetSettlement   string    `json:"net_settlement"`
	NewCollateral   string    `json:"new_collateral"`
	PositionVersion int64     `json:"position_version"`
	StateHash       []byte    `json:"state_hash"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewOutboundPublisher(js jetstream.JetStream, inputChan <-chan PublishableSettlement) *OutboundPublisher {
	return &OutboundPublisher{
		js:        js,
		inputChan: inputChan,
	}
}

// Run starts the outbound publisher loop.
func (op *OutboundPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case rec, ok := <-op.inputChan:
			if !ok {
				return nil
			}

			if err := op.publish(ctx, rec); err != nil {
				log.Printf("WARN: outbound publish failed seq=%d: %v", rec.Sequence, err)
				// Non-fatal: downstream consumers can query the settlement log directly
			}
		}
	}
}

func (op *OutboundPublisher) publish(ctx context.Context, rec PublishableSettlement) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal settlement: %w", err)
	}

	subject := fmt.Sprintf("margin.settlements.%s", rec.Market)
	_, err = op.js.Publish(ctx, subject, data)
	return err
}

// EnsureOutboundStream creates the outbound settlements stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "MARGIN_SETTLEMENTS",
		Subjects:  []string{"margin.settlements.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log.Println("INFO: ensured outbound stream MARGIN_SETTLEMENTS")
	return nil
}
