package core_test

import (
	"math/big"
	"testing"
	"time"

	"MarginSettle/internal/core"
	"MarginSettle/internal/event"

	"github.com/google/uuid"
)

// --- Test helpers ---

// newTestProcessor creates a SettlementProcessor with buffered channels and
// no DB checker.
func newTestProcessor() (*core.SettlementProcessor, chan core.CoreOutput, chan core.CoreOutput) {
	persistChan := make(chan core.CoreOutput, 1024)
	projChan := make(chan core.CoreOutput, 1024)
	p := core.NewSettlementProcessor(0, 10_000, persistChan, projChan, nil, nil)
	return p, persistChan, projChan
}

func mustDeposit(accountID uuid.UUID, amount int64, seq int64) *event.DepositConfirmed {
	return &event.DepositConfirmed{
		DepositID: uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Sequence:  seq,
		Timestamp: time.UnixMicro(1000000 + seq*1000),
	}
}

func mustWithdrawal(accountID uuid.UUID, amount int64, seq int64) *event.WithdrawalRequested {
	return &event.WithdrawalRequested{
		WithdrawalID: uuid.New(),
		AccountID:    accountID,
		Amount:       amount,
		Sequence:     seq,
		Timestamp:    time.UnixMicro(1000000 + seq*1000),
	}
}

func mustPriceUpdate(market string, price, priceSeq int64) *event.OraclePriceUpdate {
	return &event.OraclePriceUpdate{
		Market:         market,
		Price:          price,
		PriceSequence:  priceSeq,
		PriceTimestamp: 1000000 + priceSeq*1000,
	}
}

func mustRateUpdate(market string, rate, rateSeq int64) *event.FundingRateUpdate {
	return &event.FundingRateUpdate{
		Market:        market,
		Rate:          rate,
		RateSequence:  rateSeq,
		RateTimestamp: 1000000 + rateSeq*1000,
	}
}

func mustPositionOpened(accountID uuid.UUID, market string, size, entryPrice, lastRate, seq int64) *event.PositionOpened {
	return &event.PositionOpened{
		OpenID:          uuid.New(),
		AccountID:       accountID,
		Market:          market,
		Size:            size,
		EntryPrice:      entryPrice,
		LastFundingRate: lastRate,
		Sequence:        seq,
		Timestamp:       time.UnixMicro(1000000 + seq*1000),
	}
}

func mustSettlementRequest(accountID uuid.UUID, market string, seq int64) *event.SettlementRequest {
	return &event.SettlementRequest{
		SettleID:  uuid.New(),
		AccountID: accountID,
		Market:    market,
		Sequence:  seq,
		Timestamp: time.UnixMicro(1000000 + seq*1000),
	}
}

func mustSettlementRequestAt(accountID uuid.UUID, market string, price, rate, seq int64) *event.SettlementRequest {
	req := mustSettlementRequest(accountID, market, seq)
	req.OraclePrice = &price
	req.FundingRate = &rate
	return req
}

func drainOutputs(ch chan core.CoreOutput) []core.CoreOutput {
	var outputs []core.CoreOutput
	for {
		select {
		case o := <-ch:
			outputs = append(outputs, o)
		default:
			return outputs
		}
	}
}

// ============================================================================
// Test: Deposit / Withdrawal Flow
// ============================================================================

func TestDepositConfirmed_IncreasesCollateral(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	if err := p.ProcessEvent(mustDeposit(accountID, 1_000_000, 0)); err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}

	outputs := drainOutputs(persistCh)
	if len(outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(outputs))
	}

	got := p.Book().GetBalance(accountID).Collateral
	if got.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Errorf("collateral: got %s, want 1000000", got)
	}
}

func TestWithdrawal_InsufficientBalance_Fails(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	if err := p.ProcessEvent(mustDeposit(accountID, 100_000, 0)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	drainOutputs(persistCh)

	if err := p.ProcessEvent(mustWithdrawal(accountID, 200_000, 1)); err == nil {
		t.Fatal("expected error for insufficient balance, got nil")
	}

	// Collateral must be untouched by the rejected withdrawal
	got := p.Book().GetBalance(accountID).Collateral
	if got.Cmp(big.NewInt(100_000)) != 0 {
		t.Errorf("collateral: got %s, want 100000", got)
	}
}

func TestMultipleDeposits_SequencesAssigned(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	for i := int64(0); i < 5; i++ {
		if err := p.ProcessEvent(mustDeposit(accountID, 100_000, i)); err != nil {
			t.Fatalf("ProcessEvent %d failed: %v", i, err)
		}
	}

	outputs := drainOutputs(persistCh)
	if len(outputs) != 5 {
		t.Fatalf("expected 5 outputs, got %d", len(outputs))
	}
	for i, o := range outputs {
		if o.Envelope.Sequence != int64(i) {
			t.Errorf("output %d: expected sequence %d, got %d", i, i, o.Envelope.Sequence)
		}
	}
}

// ============================================================================
// Test: Settlement Flow
// ============================================================================

func TestSettlementRequest_UsesCachedOracleValues(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 10, 0),
		mustPriceUpdate("BTC-PERP", 1100, 1),
		mustRateUpdate("BTC-PERP", 15, 1),
		mustSettlementRequest(accountID, "BTC-PERP", 1),
	}
	for i, evt := range steps {
		if err := p.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	outputs := drainOutputs(persistCh)
	last := outputs[len(outputs)-1]
	if last.Settlement == nil {
		t.Fatal("expected settlement record on output")
	}
	if got := last.Settlement.NetSettlement.Int64(); got != 9_500 {
		t.Errorf("net: got %d, want 9500", got)
	}

	collateral := p.Book().GetBalance(accountID).Collateral
	if collateral.Cmp(big.NewInt(9_500)) != 0 {
		t.Errorf("collateral: got %s, want 9500", collateral)
	}

	pos := p.Book().GetPosition(accountID, "BTC-PERP")
	if pos.EntryPrice != 1100 || pos.LastFundingRate != 15 {
		t.Errorf("checkpoints: entry=%d rate=%d, want 1100/15", pos.EntryPrice, pos.LastFundingRate)
	}
}

func TestSettlementRequest_ExplicitValuesOverrideCache(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 10, 0),
		mustPriceUpdate("BTC-PERP", 9999, 1),
		mustRateUpdate("BTC-PERP", 9999, 1),
		mustSettlementRequestAt(accountID, "BTC-PERP", 1100, 15, 1),
	}
	for i, evt := range steps {
		if err := p.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
	drainOutputs(persistCh)

	collateral := p.Book().GetBalance(accountID).Collateral
	if collateral.Cmp(big.NewInt(9_500)) != 0 {
		t.Errorf("collateral: got %s, want 9500", collateral)
	}
}

func TestSettlementRequest_NoOracleData_Fails(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	if err := p.ProcessEvent(mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 0, 0)); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	drainOutputs(persistCh)

	if err := p.ProcessEvent(mustSettlementRequest(accountID, "BTC-PERP", 1)); err == nil {
		t.Fatal("expected error without oracle data, got nil")
	}
}

func TestSettlementRequest_NoPosition_Fails(t *testing.T) {
	p, _, _ := newTestProcessor()

	if err := p.ProcessEvent(mustSettlementRequest(uuid.New(), "BTC-PERP", 0)); err == nil {
		t.Fatal("expected error for unknown position, got nil")
	}
}

func TestSettlementRequest_RejectionLeavesStateUntouched(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustDeposit(accountID, 500, 0),
		mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 0, 1),
	}
	for i, evt := range steps {
		if err := p.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
	drainOutputs(persistCh)
	hashBefore := p.GetStateHash()

	// Invalid explicit oracle price
	bad := mustSettlementRequestAt(accountID, "BTC-PERP", 0, 0, 2)
	if err := p.ProcessEvent(bad); err == nil {
		t.Fatal("expected rejection, got nil")
	}

	if outputs := drainOutputs(persistCh); len(outputs) != 0 {
		t.Errorf("rejected settlement must not emit: got %d outputs", len(outputs))
	}
	if p.GetStateHash() != hashBefore {
		t.Error("rejected settlement must not advance the hash chain")
	}

	collateral := p.Book().GetBalance(accountID).Collateral
	if collateral.Cmp(big.NewInt(500)) != 0 {
		t.Errorf("collateral: got %s, want 500", collateral)
	}
}

func TestSettlementRequest_ReplayIsNoOp(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 10, 0),
		mustSettlementRequestAt(accountID, "BTC-PERP", 1100, 15, 1),
		mustSettlementRequestAt(accountID, "BTC-PERP", 1100, 15, 2),
	}
	for i, evt := range steps {
		if err := p.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	outputs := drainOutputs(persistCh)
	second := outputs[len(outputs)-1].Settlement
	if second == nil {
		t.Fatal("replay should still produce a settlement record")
	}
	if !second.IsNoOp() {
		t.Errorf("replay should move no value: net=%s", second.NetSettlement)
	}

	collateral := p.Book().GetBalance(accountID).Collateral
	if collateral.Cmp(big.NewInt(9_500)) != 0 {
		t.Errorf("collateral: got %s, want 9500", collateral)
	}
}

func TestSettlementRequest_FlatPositionEmitsZeroRecord(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustPositionOpened(accountID, "BTC-PERP", 0, 0, 0, 0),
		mustSettlementRequestAt(accountID, "BTC-PERP", 1100, 15, 1),
	}
	for i, evt := range steps {
		if err := p.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	outputs := drainOutputs(persistCh)
	ev := outputs[len(outputs)-1].Settlement
	if ev == nil || !ev.IsNoOp() {
		t.Fatal("flat settlement should emit a zero record")
	}

	pos := p.Book().GetPosition(accountID, "BTC-PERP")
	if pos.EntryPrice != 1100 || pos.LastFundingRate != 15 {
		t.Errorf("flat settlement must advance checkpoints: entry=%d rate=%d", pos.EntryPrice, pos.LastFundingRate)
	}
}

// ============================================================================
// Test: Oracle Updates
// ============================================================================

func TestOraclePriceUpdate_StaleIgnored(t *testing.T) {
	p, persistCh, _ := newTestProcessor()

	if err := p.ProcessEvent(mustPriceUpdate("BTC-PERP", 1100, 5)); err != nil {
		t.Fatalf("price 5 failed: %v", err)
	}
	drainOutputs(persistCh)

	// Stale sequence — silently ignored, no output
	if err := p.ProcessEvent(mustPriceUpdate("BTC-PERP", 900, 3)); err != nil {
		t.Fatalf("stale price should not error: %v", err)
	}
	if outputs := drainOutputs(persistCh); len(outputs) != 0 {
		t.Errorf("stale price should emit nothing, got %d outputs", len(outputs))
	}
}

func TestFundingRateUpdate_GapAccepted(t *testing.T) {
	p, persistCh, _ := newTestProcessor()

	if err := p.ProcessEvent(mustRateUpdate("BTC-PERP", 10, 1)); err != nil {
		t.Fatalf("rate 1 failed: %v", err)
	}
	if err := p.ProcessEvent(mustRateUpdate("BTC-PERP", 25, 10)); err != nil {
		t.Fatalf("rate gap should be accepted: %v", err)
	}

	outputs := drainOutputs(persistCh)
	if len(outputs) != 2 {
		t.Errorf("expected 2 outputs, got %d", len(outputs))
	}
}

// ============================================================================
// Test: Position Opens
// ============================================================================

func TestPositionOpened_InvalidEntryPrice_Fails(t *testing.T) {
	p, _, _ := newTestProcessor()

	if err := p.ProcessEvent(mustPositionOpened(uuid.New(), "BTC-PERP", 100, 0, 0, 0)); err == nil {
		t.Fatal("expected error for zero entry price on sized position")
	}
}

func TestPositionOpened_ResizeBumpsVersion(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 0, 0),
		mustPositionOpened(accountID, "BTC-PERP", 150, 1020, 0, 1),
	}
	for i, evt := range steps {
		if err := p.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
	drainOutputs(persistCh)

	pos := p.Book().GetPosition(accountID, "BTC-PERP")
	if pos.Size != 150 || pos.Version != 1 {
		t.Errorf("resize: size=%d version=%d, want 150/1", pos.Size, pos.Version)
	}
}

// ============================================================================
// Test: Idempotency
// ============================================================================

func TestIdempotency_DuplicateDeposit_Ignored(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	deposit := mustDeposit(accountID, 1_000_000, 0)

	if err := p.ProcessEvent(deposit); err != nil {
		t.Fatalf("first deposit failed: %v", err)
	}
	if got := len(drainOutputs(persistCh)); got != 1 {
		t.Fatalf("expected 1 output on first process, got %d", got)
	}

	if err := p.ProcessEvent(deposit); err != nil {
		t.Fatalf("duplicate deposit should not error: %v", err)
	}
	if got := len(drainOutputs(persistCh)); got != 0 {
		t.Errorf("expected 0 outputs for duplicate, got %d", got)
	}

	collateral := p.Book().GetBalance(accountID).Collateral
	if collateral.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Errorf("duplicate must not double-credit: got %s", collateral)
	}
}

// ============================================================================
// Test: Sequence Validation
// ============================================================================

func TestSequenceValidation_AccountGapDetected(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	if err := p.ProcessEvent(mustDeposit(accountID, 100_000, 0)); err != nil {
		t.Fatalf("seq 0 failed: %v", err)
	}
	drainOutputs(persistCh)

	// Skip seq 1, send seq 2 — should detect gap
	if err := p.ProcessEvent(mustDeposit(accountID, 100_000, 2)); err == nil {
		t.Fatal("expected sequence gap error, got nil")
	}
}

func TestSequenceValidation_AccountsArePartitioned(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	a := uuid.New()
	b := uuid.New()

	// Both accounts start at seq 0 independently
	if err := p.ProcessEvent(mustDeposit(a, 100, 0)); err != nil {
		t.Fatalf("account a seq 0: %v", err)
	}
	if err := p.ProcessEvent(mustDeposit(b, 100, 0)); err != nil {
		t.Fatalf("account b seq 0: %v", err)
	}
	drainOutputs(persistCh)
}

// ============================================================================
// Test: State Hash Chain
// ============================================================================

func TestStateHashChain_Deterministic(t *testing.T) {
	accountID := uuid.New()
	depositID := uuid.New()
	openID := uuid.New()
	settleID := uuid.New()

	run := func() [][32]byte {
		p, persistCh, _ := newTestProcessor()

		price := int64(1100)
		rate := int64(15)
		steps := []event.Event{
			&event.DepositConfirmed{
				DepositID: depositID, AccountID: accountID,
				Amount: 1_000_000, Sequence: 0, Timestamp: time.UnixMicro(1000000),
			},
			&event.PositionOpened{
				OpenID: openID, AccountID: accountID, Market: "BTC-PERP",
				Size: 100, EntryPrice: 1000, LastFundingRate: 10,
				Sequence: 1, Timestamp: time.UnixMicro(1001000),
			},
			&event.SettlementRequest{
				SettleID: settleID, AccountID: accountID, Market: "BTC-PERP",
				OraclePrice: &price, FundingRate: &rate,
				Sequence: 2, Timestamp: time.UnixMicro(1002000),
			},
		}
		for i, evt := range steps {
			if err := p.ProcessEvent(evt); err != nil {
				t.Fatalf("step %d failed: %v", i, err)
			}
		}

		outputs := drainOutputs(persistCh)
		hashes := make([][32]byte, len(outputs))
		for i, o := range outputs {
			hashes[i] = o.Envelope.StateHash
		}
		return hashes
	}

	hashes1 := run()
	hashes2 := run()

	if len(hashes1) != len(hashes2) {
		t.Fatalf("different number of outputs: %d vs %d", len(hashes1), len(hashes2))
	}
	for i := range hashes1 {
		if hashes1[i] != hashes2[i] {
			t.Errorf("hash %d differs: %x vs %x", i, hashes1[i], hashes2[i])
		}
	}
}

func TestStateHashChain_Linked(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	for i := int64(0); i < 3; i++ {
		if err := p.ProcessEvent(mustDeposit(accountID, 100, i)); err != nil {
			t.Fatalf("deposit %d failed: %v", i, err)
		}
	}

	outputs := drainOutputs(persistCh)
	for i := 1; i < len(outputs); i++ {
		if outputs[i].Envelope.PrevHash != outputs[i-1].Envelope.StateHash {
			t.Errorf("chain broken at %d: prev_hash != previous state_hash", i)
		}
	}
}

// ============================================================================
// Test: Snapshot round-trip
// ============================================================================

func TestSnapshot_RestoreResumesProcessing(t *testing.T) {
	p1, persistCh1, _ := newTestProcessor()
	accountID := uuid.New()

	steps := []event.Event{
		mustDeposit(accountID, 1_000_000, 0),
		mustPositionOpened(accountID, "BTC-PERP", 100, 1000, 10, 1),
	}
	for i, evt := range steps {
		if err := p1.ProcessEvent(evt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
	drainOutputs(persistCh1)

	snap := p1.CreateSnapshotState()

	p2, persistCh2, _ := newTestProcessor()
	p2.RestoreFromSnapshot(snap)
	p2.WarmLRU(snap.IdempotencyKeys)

	if p2.GetSequence() != p1.GetSequence() {
		t.Errorf("sequence: got %d, want %d", p2.GetSequence(), p1.GetSequence())
	}
	if p2.GetStateHash() != p1.GetStateHash() {
		t.Error("restored hash chain tip should match")
	}

	// Continue on the restored state
	if err := p2.ProcessEvent(mustSettlementRequestAt(accountID, "BTC-PERP", 1100, 15, 2)); err != nil {
		t.Fatalf("settle after restore failed: %v", err)
	}
	drainOutputs(persistCh2)

	collateral := p2.Book().GetBalance(accountID).Collateral
	if collateral.Cmp(big.NewInt(1_009_500)) != 0 {
		t.Errorf("collateral: got %s, want 1009500", collateral)
	}

	// Replayed pre-snapshot event is deduplicated
	if err := p2.ProcessEvent(steps[0]); err != nil {
		t.Fatalf("replayed deposit should not error: %v", err)
	}
	if got := len(drainOutputs(persistCh2)); got != 0 {
		t.Errorf("replayed deposit should emit nothing, got %d outputs", got)
	}
}

// ============================================================================
// Test: Envelope Integrity
// ============================================================================

func TestEnvelope_HasCorrectFields(t *testing.T) {
	p, persistCh, _ := newTestProcessor()
	accountID := uuid.New()

	deposit := mustDeposit(accountID, 1_000_000, 0)
	if err := p.ProcessEvent(deposit); err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}

	outputs := drainOutputs(persistCh)
	env := outputs[0].Envelope

	if env.Sequence != 0 {
		t.Errorf("expected sequence 0, got %d", env.Sequence)
	}
	if env.IdempotencyKey != deposit.IdempotencyKey() {
		t.Errorf("idempotency key mismatch: %s vs %s", env.IdempotencyKey, deposit.IdempotencyKey())
	}
	if env.EventType != event.EventTypeDepositConfirmed {
		t.Errorf("event type mismatch: %v vs %v", env.EventType, event.EventTypeDepositConfirmed)
	}
	if env.MarketID != nil {
		t.Errorf("expected nil market_id for deposit, got %v", env.MarketID)
	}
	if len(env.Payload) == 0 {
		t.Error("payload should not be empty")
	}
}

// ============================================================================
// Test: Projection Channel (non-blocking drop)
// ============================================================================

func TestProjectionChannel_DropsOnFull(t *testing.T) {
	persistCh := make(chan core.CoreOutput, 1024)
	projCh := make(chan core.CoreOutput, 1) // Tiny buffer — will fill up
	p := core.NewSettlementProcessor(0, 10_000, persistCh, projCh, nil, nil)

	accountID := uuid.New()

	for i := int64(0); i < 5; i++ {
		if err := p.ProcessEvent(mustDeposit(accountID, 100_000, i)); err != nil {
			t.Fatalf("ProcessEvent %d failed: %v", i, err)
		}
	}

	// All 5 should succeed (projection drops are silent)
	persistOutputs := drainOutputs(persistCh)
	if len(persistOutputs) != 5 {
		t.Errorf("expected 5 persist outputs, got %d", len(persistOutputs))
	}
}
