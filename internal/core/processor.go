package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"MarginSettle/internal/event"
	"MarginSettle/internal/observability"
	"MarginSettle/internal/settle"
	"MarginSettle/internal/state"

	"github.com/google/uuid"
)

// SettlementProcessor is the single-threaded event processor. All state
// mutation flows through ProcessEvent; nothing else touches the book.
type SettlementProcessor struct {
	sequence          int64
	hasher            *StateHasher
	book              *state.AccountBook
	oracle            *state.OracleCache
	idempotency       *IdempotencyChecker
	sequenceValidator *SequenceValidator
	metrics           *observability.Metrics

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput
}

// CoreOutput is what the processor emits per applied event. Settlement is
// non-nil only for executed settlements.
type CoreOutput struct {
	Envelope   *event.EventEnvelope
	Settlement *settle.Event
	StateDelta []byte
}

func NewSettlementProcessor(
	startSequence int64,
	lruCapacity int,
	persistChan, projectionChan chan<- CoreOutput,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) *SettlementProcessor {
	return &SettlementProcessor{
		sequence:          startSequence,
		hasher:            NewStateHasher(),
		book:              state.NewAccountBook(),
		oracle:            state.NewOracleCache(),
		idempotency:       NewIdempotencyChecker(lruCapacity, dbChecker),
		sequenceValidator: NewSequenceValidator(),
		metrics:           metrics,
		persistChan:       persistChan,
		projectionChan:    projectionChan,
	}
}

// ProcessEvent is the main processing pipeline
func (p *SettlementProcessor) ProcessEvent(evt event.Event) error {
	start := time.Now()
	eventType := evt.EventType().String()
	idempotencyKey := evt.IdempotencyKey()

	// Step 1: Idempotency check (two-tier)
	isDuplicate := p.idempotency.IsDuplicate(eventType, idempotencyKey)

	// Step 2: Sequence validation. Oracle partitions tolerate gaps; account
	// partitions are strict.
	switch e := evt.(type) {
	case *event.OraclePriceUpdate:
		if stale := p.sequenceValidator.ValidateGapTolerant(
			fmt.Sprintf("price:%s", e.Market), e.PriceSequence); stale {
			return nil
		}
	case *event.FundingRateUpdate:
		if stale := p.sequenceValidator.ValidateGapTolerant(
			fmt.Sprintf("rate:%s", e.Market), e.RateSequence); stale {
			return nil
		}
	default:
		partition := p.getPartition(evt)
		if err := p.sequenceValidator.ValidateSequence(
			partition, evt.SourceSequence(), idempotencyKey, isDuplicate); err != nil {
			return fmt.Errorf("sequence validation failed: %w", err)
		}
	}

	// If duplicate, skip processing
	if isDuplicate {
		if p.metrics != nil {
			p.metrics.CoreEventsRejected.WithLabelValues(eventType, "duplicate").Inc()
		}
		return nil
	}

	// Step 3: Dispatch
	result, err := p.dispatchEvent(evt)
	if err != nil {
		if p.metrics != nil {
			p.metrics.CoreEventsRejected.WithLabelValues(eventType, "validation").Inc()
		}
		return fmt.Errorf("dispatch failed: %w", err)
	}

	// Step 4: Conservation post-check. A successful settlement must move
	// exactly its net amount; anything else means corrupted state.
	if result.settlement != nil {
		diff := new(big.Int).Sub(result.settlement.NewCollateral, result.settlement.OldCollateral)
		if diff.Cmp(result.settlement.NetSettlement) != 0 {
			panic(fmt.Sprintf("FATAL: settlement conservation violated: moved %s, net %s",
				diff, result.settlement.NetSettlement))
		}
	}

	// Step 5: State digest and hash chain
	var stateDigest []byte
	if result.accountID != uuid.Nil {
		stateDigest = p.book.AccountDigest(result.accountID)
	}
	stateHash := p.hasher.ComputeHash(p.sequence, stateDigest)

	// Step 6: Envelope
	payload, err := json.Marshal(evt)
	if err != nil {
		panic(fmt.Sprintf("FATAL: marshal event payload: %v", err))
	}

	envelope := &event.EventEnvelope{
		Sequence:       p.sequence,
		IdempotencyKey: idempotencyKey,
		EventType:      evt.EventType(),
		MarketID:       evt.MarketID(),
		Timestamp:      p.getEventTimestamp(evt),
		SourceSequence: evt.SourceSequence(),
		Payload:        payload,
		StateHash:      stateHash,
		PrevHash:       result.prevHash,
	}

	output := CoreOutput{
		Envelope:   envelope,
		Settlement: result.settlement,
		StateDelta: stateDigest,
	}
	p.sequence++

	// Step 7: Emit. Persist channel uses BLOCKING send (backpressure, no
	// loss); projection channel uses NON-BLOCKING send with silent drop —
	// projections rebuild from the event log when they fall behind.
	p.persistChan <- output

	select {
	case p.projectionChan <- output:
	default:
		// Dropped — projection will catch up via rebuild
	}

	// Step 8: Mark as processed (add to LRU)
	p.idempotency.MarkProcessed(eventType, idempotencyKey)

	if p.metrics != nil {
		p.metrics.CoreEventsApplied.WithLabelValues(eventType).Inc()
		p.metrics.CoreEventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		p.metrics.CoreSequence.Set(float64(p.sequence))
	}

	return nil
}

// dispatchResult carries handler outcomes back to the pipeline.
type dispatchResult struct {
	accountID  uuid.UUID // Touched account, uuid.Nil for oracle updates
	settlement *settle.Event
	prevHash   [32]byte
}

func (p *SettlementProcessor) dispatchEvent(evt event.Event) (dispatchResult, error) {
	prevHash := p.hasher.GetPrevHash()

	switch e := evt.(type) {
	case *event.DepositConfirmed:
		if err := p.book.Deposit(e.AccountID, e.Amount); err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{accountID: e.AccountID, prevHash: prevHash}, nil

	case *event.WithdrawalRequested:
		if err := p.book.Withdraw(e.AccountID, e.Amount); err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{accountID: e.AccountID, prevHash: prevHash}, nil

	case *event.OraclePriceUpdate:
		p.oracle.UpdatePrice(e.Market, e.Price, e.PriceSequence, e.PriceTimestamp)
		return dispatchResult{prevHash: prevHash}, nil

	case *event.FundingRateUpdate:
		p.oracle.UpdateRate(e.Market, e.Rate, e.RateSequence, e.RateTimestamp)
		return dispatchResult{prevHash: prevHash}, nil

	case *event.PositionOpened:
		return p.handlePositionOpened(e, prevHash)

	case *event.SettlementRequest:
		return p.handleSettlementRequest(e, prevHash)

	default:
		return dispatchResult{}, fmt.Errorf("unknown event type: %T", evt)
	}
}

func (p *SettlementProcessor) handlePositionOpened(e *event.PositionOpened, prevHash [32]byte) (dispatchResult, error) {
	if e.Size != 0 && e.EntryPrice <= 0 {
		return dispatchResult{}, fmt.Errorf("position open rejected: entry price %d for size %d",
			e.EntryPrice, e.Size)
	}
	if e.LastFundingRate > settle.MaxRateMagnitude || e.LastFundingRate < -settle.MaxRateMagnitude {
		return dispatchResult{}, fmt.Errorf("position open rejected: funding checkpoint %d out of bounds",
			e.LastFundingRate)
	}

	var version int64
	if existing := p.book.GetPosition(e.AccountID, e.Market); existing != nil {
		version = existing.Version + 1
	}

	p.book.SetPosition(&settle.Position{
		AccountID:       e.AccountID,
		Market:          e.Market,
		Size:            e.Size,
		EntryPrice:      e.EntryPrice,
		LastFundingRate: e.LastFundingRate,
		Version:         version,
	})
	p.book.GetOrCreateBalance(e.AccountID)

	return dispatchResult{accountID: e.AccountID, prevHash: prevHash}, nil
}

func (p *SettlementProcessor) handleSettlementRequest(e *event.SettlementRequest, prevHash [32]byte) (dispatchResult, error) {
	start := time.Now()

	pos := p.book.GetPosition(e.AccountID, e.Market)
	if pos == nil {
		return dispatchResult{}, fmt.Errorf("no position for account %s in market %s",
			e.AccountID, e.Market)
	}
	bal := p.book.GetOrCreateBalance(e.AccountID)

	in, err := p.resolveInput(e)
	if err != nil {
		return dispatchResult{}, err
	}

	ev, err := settle.Settle(pos, bal, in)
	if err != nil {
		if p.metrics != nil {
			p.metrics.SettlementsRejected.WithLabelValues(e.Market, rejectReason(err)).Inc()
		}
		return dispatchResult{}, err
	}

	if p.metrics != nil {
		p.metrics.SettlementsExecuted.WithLabelValues(e.Market).Inc()
		p.metrics.SettlementDuration.WithLabelValues(e.Market).Observe(time.Since(start).Seconds())
		if ev.IsNoOp() {
			p.metrics.SettlementNoOps.WithLabelValues(e.Market).Inc()
		}
	}

	return dispatchResult{accountID: e.AccountID, settlement: ev, prevHash: prevHash}, nil
}

// resolveInput takes explicit price/rate from the request when present,
// otherwise the latest cached oracle values for the market.
func (p *SettlementProcessor) resolveInput(e *event.SettlementRequest) (settle.Input, error) {
	var in settle.Input

	if e.OraclePrice != nil {
		in.OraclePrice = *e.OraclePrice
	} else {
		price, ok := p.oracle.GetPrice(e.Market)
		if !ok {
			return in, fmt.Errorf("no oracle price for market %s", e.Market)
		}
		in.OraclePrice = price
	}

	if e.FundingRate != nil {
		in.FundingRate = *e.FundingRate
	} else {
		rate, ok := p.oracle.GetRate(e.Market)
		if !ok {
			return in, fmt.Errorf("no funding rate for market %s", e.Market)
		}
		in.FundingRate = rate
	}

	return in, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, settle.ErrInvalidOraclePrice):
		return "invalid_oracle_price"
	case errors.Is(err, settle.ErrInvalidPositionState):
		return "invalid_position_state"
	case errors.Is(err, settle.ErrFundingRateOutOfBounds):
		return "funding_rate_out_of_bounds"
	case errors.Is(err, settle.ErrArithmeticOverflow):
		return "arithmetic_overflow"
	default:
		return "other"
	}
}

// getPartition determines partition key for strict sequence validation.
// Account-scoped events order per account so one slow account cannot stall
// another.
func (p *SettlementProcessor) getPartition(evt event.Event) string {
	switch e := evt.(type) {
	case *event.DepositConfirmed:
		return fmt.Sprintf("account:%s", e.AccountID)
	case *event.WithdrawalRequested:
		return fmt.Sprintf("account:%s", e.AccountID)
	case *event.PositionOpened:
		return fmt.Sprintf("account:%s", e.AccountID)
	case *event.SettlementRequest:
		return fmt.Sprintf("account:%s", e.AccountID)
	default:
		return "global"
	}
}

// getEventTimestamp extracts the versioned timestamp from the event. The
// core never calls time.Now(); all timestamps are inputs.
func (p *SettlementProcessor) getEventTimestamp(evt event.Event) time.Time {
	switch e := evt.(type) {
	case *event.DepositConfirmed:
		return e.Timestamp
	case *event.WithdrawalRequested:
		return e.Timestamp
	case *event.OraclePriceUpdate:
		return time.UnixMicro(e.PriceTimestamp)
	case *event.FundingRateUpdate:
		return time.UnixMicro(e.RateTimestamp)
	case *event.PositionOpened:
		return e.Timestamp
	case *event.SettlementRequest:
		return e.Timestamp
	default:
		panic(fmt.Sprintf("FATAL: getEventTimestamp called with unhandled event type %T", evt))
	}
}

// --- Snapshot Restore & Startup Methods ---

// SnapshotState holds the serializable in-memory state for restore.
// This mirrors persistence.SnapshotData but uses typed fields.
type SnapshotState struct {
	Sequence        int64
	StateHash       [32]byte
	Positions       []*settle.Position
	Balances        []*settle.Balance
	Prices          map[string]*state.PriceState
	Rates           map[string]*state.RateState
	SequenceState   map[string]int64
	IdempotencyKeys []string
}

// RestoreFromSnapshot restores the processor's in-memory state. On warm
// restart, load the latest snapshot then replay events past it.
func (p *SettlementProcessor) RestoreFromSnapshot(snap *SnapshotState) {
	p.sequence = snap.Sequence + 1 // Next sequence to assign
	p.hasher.SetPrevHash(snap.StateHash)

	for _, pos := range snap.Positions {
		p.book.SetPosition(pos)
	}
	for _, bal := range snap.Balances {
		p.book.RestoreBalance(bal)
	}
	for market, ps := range snap.Prices {
		p.oracle.RestorePrice(market, ps)
	}
	for market, rs := range snap.Rates {
		p.oracle.RestoreRate(market, rs)
	}
	for partition, nextSeq := range snap.SequenceState {
		p.sequenceValidator.RestorePartition(partition, nextSeq)
	}
}

// WarmLRU loads recent idempotency keys into the LRU cache so replayed
// deliveries skip the cold DB path.
func (p *SettlementProcessor) WarmLRU(keys []string) {
	p.idempotency.lru.WarmFromKeys(keys)
}

// GetSequence returns the current global sequence number.
func (p *SettlementProcessor) GetSequence() int64 {
	return p.sequence
}

// GetStateHash returns the current state hash (chain tip).
func (p *SettlementProcessor) GetStateHash() [32]byte {
	return p.hasher.GetPrevHash()
}

// Book exposes read access for queries answered from core state.
func (p *SettlementProcessor) Book() *state.AccountBook {
	return p.book
}

// CreateSnapshotState captures the current in-memory state for persistence.
func (p *SettlementProcessor) CreateSnapshotState() *SnapshotState {
	return &SnapshotState{
		Sequence:        p.sequence - 1, // Last processed sequence
		StateHash:       p.hasher.GetPrevHash(),
		Positions:       p.book.AllPositions(),
		Balances:        p.book.AllBalances(),
		Prices:          p.oracle.AllPrices(),
		Rates:           p.oracle.AllRates(),
		SequenceState:   p.sequenceValidator.GetAllPartitions(),
		IdempotencyKeys: p.idempotency.lru.GetAllKeys(),
	}
}
