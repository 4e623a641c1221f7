package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// EventLogWriter writes events and settlement records to Postgres using
// multi-row INSERT batches. Multi-row INSERT is portable; switch to pgx
// CopyFrom if write throughput becomes the bottleneck.
type EventLogWriter struct {
	db           *sql.DB
	batchSize    int
	flushTimeout time.Duration
}

// EventRow represents a row in event_log.events
type EventRow struct {
	Sequence       int64
	EventType      string
	IdempotencyKey string
	MarketID       *string
	Payload        []byte // JSON-encoded event payload
	StateHash      []byte
	PrevHash       []byte
	Timestamp      time.Time
	SourceSequence int64
}

// SettlementRow represents a row in event_log.settlements. Widened amounts
// are carried as decimal strings and stored in NUMERIC columns; they can
// exceed int64.
type SettlementRow struct {
	Sequence        int64
	AccountID       string
	Market          string
	Size            int64
	OraclePrice     int64
	FundingRate     int64
	UnrealizedPnL   string
	FundingPayment  string
	NetSettlement   string
	OldEntryPrice   int64
	NewEntryPrice   int64
	OldFundingRate  int64
	NewFundingRate  int64
	OldCollateral   string
	NewCollateral   string
	PositionVersion int64
	Timestamp       time.Time
}

func NewEventLogWriter(db *sql.DB, batchSize int, flushTimeout time.Duration) *EventLogWriter {
	return &EventLogWriter{
		db:           db,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
	}
}

// WriteEventBatch writes a batch of events to event_log.events using
// multi-row INSERT inside the given transaction.
func (w *EventLogWriter) WriteEventBatch(ctx context.Context, tx *sql.Tx, events []EventRow) error {
	if len(events) == 0 {
		return nil
	}

	// Build multi-row INSERT
	query := `INSERT INTO event_log.events
		(sequence, event_type, idempotency_key, market_id, payload, state_hash, prev_hash, timestamp, source_sequence)
		VALUES `

	values := make([]string, 0, len(events))
	args := make([]interface{}, 0, len(events)*9)

	for i, e := range events {
		base := i * 9
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		args = append(args,
			e.Sequence, e.EventType, e.IdempotencyKey, e.MarketID,
			e.Payload, e.StateHash, e.PrevHash, e.Timestamp, e.SourceSequence,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING" // Idempotent writes

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// WriteSettlementBatch writes a batch of settlement records to
// event_log.settlements inside the given transaction.
func (w *EventLogWriter) WriteSettlementBatch(ctx context.Context, tx *sql.Tx, settlements []SettlementRow) error {
	if len(settlements) == 0 {
		return nil
	}

	query := `INSERT INTO event_log.settlements
		(sequence, account_id, market, size, oracle_price, funding_rate,
		 unrealized_pnl, funding_payment, net_settlement,
		 old_entry_price, new_entry_price, old_funding_rate, new_funding_rate,
		 old_collateral, new_collateral, position_version, timestamp)
		VALUES `

	values := make([]string, 0, len(settlements))
	args := make([]interface{}, 0, len(settlements)*17)

	for i, s := range settlements {
		base := i * 17
		placeholders := make([]string, 17)
		for p := 0; p < 17; p++ {
			placeholders[p] = fmt.Sprintf("$%d", base+p+1)
		}
		values = append(values, "("+strings.Join(placeholders, ", ")+")")
		args = append(args,
			s.Sequence, s.AccountID, s.Market, s.Size, s.OraclePrice, s.FundingRate,
			s.UnrealizedPnL, s.FundingPayment, s.NetSettlement,
			s.OldEntryPrice, s.NewEntryPrice, s.OldFundingRate, s.NewFundingRate,
			s.OldCollateral, s.NewCollateral, s.PositionVersion, s.Timestamp,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING"

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
