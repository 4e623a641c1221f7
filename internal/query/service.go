package query

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// QueryService provides read-only access to the read-model tables. Queries
// are served via gRPC and HTTP/JSON (gRPC-Gateway). All responses include
// as_of_sequence for freshness semantics.
type QueryService struct {
	db *sql.DB
}

func NewQueryService(db *sql.DB) *QueryService {
	return &QueryService{db: db}
}

// GetBalance returns an account's collateral balance.
func (qs *QueryService) GetBalance(
	ctx context.Context,
	accountID uuid.UUID,
) (*BalanceResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	var collateral string
	err = qs.db.QueryRowContext(ctx, `
		SELECT collateral::TEXT FROM projections.balances
		WHERE account_id = $1
	`, accountID).Scan(&collateral)
	if err == sql.ErrNoRows {
		collateral = "0"
	} else if err != nil {
		return nil, err
	}

	return &BalanceResponse{
		AccountID:    accountID,
		Collateral:   collateral,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetPositions returns all positions for an account, flat ones included:
// a flat position still carries live checkpoints.
func (qs *QueryService) GetPositions(
	ctx context.Context,
	accountID uuid.UUID,
) ([]PositionResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT market, size, entry_price, last_funding_rate, version
		FROM projections.positions
		WHERE account_id = $1
		ORDER BY market
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []PositionResponse
	for rows.Next() {
		var p PositionResponse
		p.AccountID = accountID
		p.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&p.Market, &p.Size, &p.EntryPrice, &p.LastFundingRate, &p.Version,
		); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

// GetAccountSummary returns balance and positions in one response.
func (qs *QueryService) GetAccountSummary(
	ctx context.Context,
	accountID uuid.UUID,
) (*AccountSummary, error) {
	balance, err := qs.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	positions, err := qs.GetPositions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &AccountSummary{
		AccountID:    accountID,
		Balance:      *balance,
		Positions:    positions,
		AsOfSequence: balance.AsOfSequence,
	}, nil
}

// GetSettlementHistory returns executed settlements for an account with
// cursor-based pagination (newest first, cursor on sequence).
func (qs *QueryService) GetSettlementHistory(
	ctx context.Context,
	accountID uuid.UUID,
	market *string,
	limit int,
	afterSequence *int64,
) ([]SettlementHistoryResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT sequence, market, size, oracle_price, funding_rate,
		       unrealized_pnl::TEXT, funding_payment::TEXT, net_settlement::TEXT,
		       new_collateral::TEXT,
		       (EXTRACT(EPOCH FROM timestamp) * 1000000)::BIGINT
		FROM projections.settlement_history
		WHERE account_id = $1
	`
	args := []interface{}{accountID}
	argIdx := 2

	if market != nil {
		query += fmt.Sprintf(" AND market = $%d", argIdx)
		args = append(args, *market)
		argIdx++
	}

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []SettlementHistoryResponse
	for rows.Next() {
		var h SettlementHistoryResponse
		h.AccountID = accountID
		h.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&h.Sequence, &h.Market, &h.Size, &h.OraclePrice, &h.FundingRate,
			&h.UnrealizedPnL, &h.FundingPayment, &h.NetSettlement,
			&h.NewCollateral, &h.Timestamp,
		); err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	return history, rows.Err()
}

// GetStatus reports event-log and read-model freshness.
func (qs *QueryService) GetStatus(ctx context.Context) (*StatusResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	var latest sql.NullInt64
	if err := qs.db.QueryRowContext(ctx, `
		SELECT MAX(sequence) FROM event_log.events
	`).Scan(&latest); err != nil {
		return nil, err
	}

	resp := &StatusResponse{
		LatestSequence: latest.Int64,
		AsOfSequence:   asOfSeq,
	}
	resp.ProjectionLag = resp.LatestSequence - resp.AsOfSequence
	if resp.ProjectionLag < 0 {
		resp.ProjectionLag = 0
	}
	return resp, nil
}

// --- Admin APIs ---

// VerifyIntegrity checks the hash chain, collateral conservation, and
// settlement checkpoint invariants over the persisted log.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	// Hash chain continuity: each event's prev_hash must equal the
	// previous event's state_hash.
	rows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM event_log.events e1
		JOIN event_log.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.prev_hash != e2.state_hash
		ORDER BY e1.sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Conservation: new_collateral - old_collateral must equal the net
	// settlement amount on every settlement row.
	conservationRows, err := qs.db.QueryContext(ctx, `
		SELECT sequence FROM event_log.settlements
		WHERE new_collateral - old_collateral != net_settlement
		ORDER BY sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer conservationRows.Close()

	for conservationRows.Next() {
		var seq int64
		if err := conservationRows.Scan(&seq); err != nil {
			return nil, err
		}
		report.ConservationBreaks = append(report.ConservationBreaks, seq)
	}
	if err := conservationRows.Err(); err != nil {
		return nil, err
	}

	// Checkpoints: after a settlement, the position's entry price and
	// funding checkpoint must equal the settlement inputs.
	checkpointRows, err := qs.db.QueryContext(ctx, `
		SELECT sequence FROM event_log.settlements
		WHERE new_entry_price != oracle_price OR new_funding_rate != funding_rate
		ORDER BY sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer checkpointRows.Close()

	for checkpointRows.Next() {
		var seq int64
		if err := checkpointRows.Scan(&seq); err != nil {
			return nil, err
		}
		report.CheckpointMismatches = append(report.CheckpointMismatches, seq)
	}
	if err := checkpointRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 &&
		len(report.ConservationBreaks) == 0 &&
		len(report.CheckpointMismatches) == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT last_applied FROM projections.watermark WHERE id = 1
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}
