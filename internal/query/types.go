package query

import "github.com/google/uuid"

// PositionResponse represents a position for API queries.
type PositionResponse struct {
	AccountID       uuid.UUID `json:"account_id"`
	Market          string    `json:"market"`
	Size            int64     `json:"size"`
	EntryPrice      int64     `json:"entry_price"`
	LastFundingRate int64     `json:"last_funding_rate"`
	Version         int64     `json:"version"`
	AsOfSequence    int64     `json:"as_of_sequence"`
}

// SettlementHistoryResponse represents one executed settlement for API
// queries. Widened amounts are decimal strings.
type SettlementHistoryResponse struct {
	AccountID      uuid.UUID `json:"account_id"`
	Market         string    `json:"market"`
	Sequence       int64     `json:"sequence"`
	Size           int64     `json:"size"`
	OraclePrice    int64     `json:"oracle_price"`
	FundingRate    int64     `json:"funding_rate"`
	UnrealizedPnL  string    `json:"unrealized_pnl"`
	FundingPayment string    `json:"funding_payment"`
	NetSettlement  string    `json:"net_settlement"`
	NewCollateral  string    `json:"new_collateral"`
	Timestamp      int64     `json:"timestamp_us"`
	AsOfSequence   int64     `json:"as_of_sequence"`
}

// StatusResponse reports log and read-model freshness.
type StatusResponse struct {
	LatestSequence int64 `json:"latest_sequence"` // Highest sequence in the event log
	AsOfSequence   int64 `json:"as_of_sequence"`  // Highest sequence in the read model
	ProjectionLag  int64 `json:"projection_lag"`  // latest - as_of
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy            bool    `json:"is_healthy"`
	HashChainBreaks      []int64 `json:"hash_chain_breaks,omitempty"`
	ConservationBreaks   []int64 `json:"conservation_breaks,omitempty"`
	CheckpointMismatches []int64 `json:"checkpoint_mismatches,omitempty"`
}
