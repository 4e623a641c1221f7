package projection

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// ProjectionOutput mirrors the data projection workers need per applied
// event. The orchestrator bridges between core.CoreOutput and this.
// Settlement is nil for events that did not execute a settlement.
type ProjectionOutput struct {
	Sequence   int64
	EventType  string
	Payload    []byte // JSON-encoded event payload from the envelope
	Settlement *SettlementRecord
	Timestamp  time.Time
}

// SettlementRecord is a settlement result flattened for projection
// consumption. Widened amounts are decimal strings.
type SettlementRecord struct {
	AccountID       string
	Market          string
	Size            int64
	OraclePrice     int64
	FundingRate     int64
	UnrealizedPnL   string
	FundingPayment  string
	NetSettlement   string
	NewEntryPrice   int64
	NewFundingRate  int64
	NewCollateral   string
	PositionVersion int64
}

// ProjectionWorker updates the read-model tables from processed events.
// The projection channel is non-blocking with drop: if projections fall
// behind, they are rebuilt from the event log.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan ProjectionOutput
	recent    *RecentSettlements
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan ProjectionOutput, recent *RecentSettlements) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
		recent:    recent,
	}
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}

			if err := pw.processOutput(ctx, output); err != nil {
				log.Printf("WARN: projection update failed at seq=%d: %v", output.Sequence, err)
				// Continue — projections are eventually consistent
				// and can be rebuilt from the event log
			}

			pw.lastSeq = output.Sequence
		}
	}
}

func (pw *ProjectionWorker) processOutput(ctx context.Context, output ProjectionOutput) error {
	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	switch output.EventType {
	case "DepositConfirmed":
		if err := pw.applyBalanceDelta(ctx, tx, output, +1); err != nil {
			return fmt.Errorf("deposit projection: %w", err)
		}
	case "WithdrawalRequested":
		if err := pw.applyBalanceDelta(ctx, tx, output, -1); err != nil {
			return fmt.Errorf("withdrawal projection: %w", err)
		}
	case "PositionOpened":
		if err := pw.applyPositionOpened(ctx, tx, output); err != nil {
			return fmt.Errorf("position projection: %w", err)
		}
	case "SettlementRequest":
		if output.Settlement != nil {
			if err := pw.applySettlement(ctx, tx, output); err != nil {
				return fmt.Errorf("settlement projection: %w", err)
			}
		}
	}

	// Advance the watermark even for events with no read-model effect
	// (oracle updates) so lag is measurable.
	if _, err := tx.ExecContext(ctx, `
		UPDATE projections.watermark SET last_applied = $1 WHERE id = 1
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if output.Settlement != nil && pw.recent != nil {
		pw.recent.Add(output.Sequence, *output.Settlement, output.Timestamp)
	}

	return nil
}

// balanceDeltaPayload covers the fields shared by deposit and withdrawal
// payloads.
type balanceDeltaPayload struct {
	AccountID string `json:"AccountID"`
	Amount    int64  `json:"Amount"`
}

func (pw *ProjectionWorker) applyBalanceDelta(ctx context.Context, tx *sql.Tx, output ProjectionOutput, sign int64) error {
	var p balanceDeltaPayload
	if err := json.Unmarshal(output.Payload, &p); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_id, collateral, updated_seq)
		VALUES ($1, $2::NUMERIC, $3)
		ON CONFLICT (account_id)
		DO UPDATE SET collateral = projections.balances.collateral + EXCLUDED.collateral,
		              updated_seq = EXCLUDED.updated_seq
	`, p.AccountID, sign*p.Amount, output.Sequence)
	return err
}

type positionOpenedPayload struct {
	AccountID       string `json:"AccountID"`
	Market          string `json:"Market"`
	Size            int64  `json:"Size"`
	EntryPrice      int64  `json:"EntryPrice"`
	LastFundingRate int64  `json:"LastFundingRate"`
}

func (pw *ProjectionWorker) applyPositionOpened(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	var p positionOpenedPayload
	if err := json.Unmarshal(output.Payload, &p); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.positions
			(account_id, market, size, entry_price, last_funding_rate, version, updated_seq)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		ON CONFLICT (account_id, market)
		DO UPDATE SET size = EXCLUDED.size,
		              entry_price = EXCLUDED.entry_price,
		              last_funding_rate = EXCLUDED.last_funding_rate,
		              version = projections.positions.version + 1,
		              updated_seq = EXCLUDED.updated_seq
	`, p.AccountID, p.Market, p.Size, p.EntryPrice, p.LastFundingRate, output.Sequence)
	return err
}

func (pw *ProjectionWorker) applySettlement(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	s := output.Settlement

	// New collateral is authoritative — set, don't accumulate.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_id, collateral, updated_seq)
		VALUES ($1, $2::NUMERIC, $3)
		ON CONFLICT (account_id)
		DO UPDATE SET collateral = EXCLUDED.collateral, updated_seq = EXCLUDED.updated_seq
	`, s.AccountID, s.NewCollateral, output.Sequence); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.positions
			(account_id, market, size, entry_price, last_funding_rate, version, updated_seq)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id, market)
		DO UPDATE SET entry_price = EXCLUDED.entry_price,
		              last_funding_rate = EXCLUDED.last_funding_rate,
		              version = EXCLUDED.version,
		              updated_seq = EXCLUDED.updated_seq
	`, s.AccountID, s.Market, s.Size, s.NewEntryPrice, s.NewFundingRate, s.PositionVersion, output.Sequence); err != nil {
		return err
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.settlement_history
			(sequence, account_id, market, size, oracle_price, funding_rate,
			 unrealized_pnl, funding_payment, net_settlement, new_collateral, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7::NUMERIC, $8::NUMERIC, $9::NUMERIC, $10::NUMERIC, $11)
		ON CONFLICT (sequence) DO NOTHING
	`, output.Sequence, s.AccountID, s.Market, s.Size, s.OraclePrice, s.FundingRate,
		s.UnrealizedPnL, s.FundingPayment, s.NetSettlement, s.NewCollateral, output.Timestamp)
	return err
}

// RebuildProjections rebuilds all read-model tables from the event log.
// Safe to run while ingestion is stopped; the worker then resumes from the
// new watermark.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.positions`,
		`TRUNCATE projections.settlement_history`,
		`UPDATE projections.watermark SET last_applied = 0 WHERE id = 1`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	// Balances: deposits minus withdrawals, then settlement nets on top.
	// Only applied events reach the log, so every row counts.
	_, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_id, collateral, updated_seq)
		SELECT
			(payload->>'AccountID')::UUID AS account_id,
			SUM(CASE WHEN event_type = 'DepositConfirmed'
			         THEN (payload->>'Amount')::NUMERIC
			         ELSE -(payload->>'Amount')::NUMERIC END) AS collateral,
			MAX(sequence) AS updated_seq
		FROM event_log.events
		WHERE event_type IN ('DepositConfirmed', 'WithdrawalRequested')
		GROUP BY (payload->>'AccountID')::UUID
	`)
	if err != nil {
		return fmt.Errorf("rebuild transfer balances: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_id, collateral, updated_seq)
		SELECT account_id, SUM(net_settlement), MAX(sequence)
		FROM event_log.settlements
		GROUP BY account_id
		ON CONFLICT (account_id) DO UPDATE
			SET collateral = projections.balances.collateral + EXCLUDED.collateral,
			    updated_seq = GREATEST(projections.balances.updated_seq, EXCLUDED.updated_seq)
	`)
	if err != nil {
		return fmt.Errorf("rebuild settlement balances: %w", err)
	}

	// Positions: last open per (account, market), then the latest
	// settlement checkpoints where one happened afterwards.
	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.positions
			(account_id, market, size, entry_price, last_funding_rate, version, updated_seq)
		SELECT DISTINCT ON ((payload->>'AccountID')::UUID, payload->>'Market')
			(payload->>'AccountID')::UUID,
			payload->>'Market',
			(payload->>'Size')::BIGINT,
			(payload->>'EntryPrice')::BIGINT,
			(payload->>'LastFundingRate')::BIGINT,
			0,
			sequence
		FROM event_log.events
		WHERE event_type = 'PositionOpened'
		ORDER BY (payload->>'AccountID')::UUID, payload->>'Market', sequence DESC
	`)
	if err != nil {
		return fmt.Errorf("rebuild positions: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.positions
			(account_id, market, size, entry_price, last_funding_rate, version, updated_seq)
		SELECT DISTINCT ON (account_id, market)
			account_id, market, size, new_entry_price, new_funding_rate, position_version, sequence
		FROM event_log.settlements
		ORDER BY account_id, market, sequence DESC
		ON CONFLICT (account_id, market) DO UPDATE
			SET size = EXCLUDED.size,
			    entry_price = EXCLUDED.entry_price,
			    last_funding_rate = EXCLUDED.last_funding_rate,
			    version = EXCLUDED.version,
			    updated_seq = EXCLUDED.updated_seq
		WHERE EXCLUDED.updated_seq > projections.positions.updated_seq
	`)
	if err != nil {
		return fmt.Errorf("rebuild settled positions: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.settlement_history
			(sequence, account_id, market, size, oracle_price, funding_rate,
			 unrealized_pnl, funding_payment, net_settlement, new_collateral, timestamp)
		SELECT sequence, account_id, market, size, oracle_price, funding_rate,
		       unrealized_pnl, funding_payment, net_settlement, new_collateral, timestamp
		FROM event_log.settlements
		ON CONFLICT (sequence) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("rebuild settlement history: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		UPDATE projections.watermark
		SET last_applied = COALESCE((SELECT MAX(sequence) FROM event_log.events), 0)
		WHERE id = 1
	`)
	if err != nil {
		return fmt.Errorf("rebuild watermark: %w", err)
	}

	log.Println("INFO: projection rebuild complete")
	return nil
}
