package settle_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"MarginSettle/internal/numeric"
	"MarginSettle/internal/settle"

	"github.com/google/uuid"
)

var testAccount = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func newPosition(size, entryPrice, lastRate int64) *settle.Position {
	return &settle.Position{
		AccountID:       testAccount,
		Market:          "BTC-PERP",
		Size:            size,
		EntryPrice:      entryPrice,
		LastFundingRate: lastRate,
	}
}

func newBalance(collateral int64) *settle.Balance {
	return &settle.Balance{
		AccountID:  testAccount,
		Collateral: big.NewInt(collateral),
	}
}

func mustSettle(t *testing.T, pos *settle.Position, bal *settle.Balance, in settle.Input) *settle.Event {
	t.Helper()
	ev, err := settle.Settle(pos, bal, in)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	return ev
}

// ============================================================================
// Test: concrete scenarios
// ============================================================================

func TestSettle_LongProfit(t *testing.T) {
	pos := newPosition(100, 1000, 10)
	bal := newBalance(0)

	ev := mustSettle(t, pos, bal, settle.Input{OraclePrice: 1100, FundingRate: 15})

	if got := ev.UnrealizedPnL.Int64(); got != 10_000 {
		t.Errorf("pnl: got %d, want 10000", got)
	}
	if got := ev.FundingPayment.Int64(); got != 500 {
		t.Errorf("funding: got %d, want 500", got)
	}
	if got := ev.NetSettlement.Int64(); got != 9_500 {
		t.Errorf("net: got %d, want 9500", got)
	}
	if got := bal.Collateral.Int64(); got != 9_500 {
		t.Errorf("collateral: got %d, want 9500", got)
	}
	if pos.EntryPrice != 1100 {
		t.Errorf("entry price: got %d, want 1100", pos.EntryPrice)
	}
	if pos.LastFundingRate != 15 {
		t.Errorf("funding checkpoint: got %d, want 15", pos.LastFundingRate)
	}
	if pos.Size != 100 {
		t.Errorf("size must not change: got %d", pos.Size)
	}
}

func TestSettle_LongLoss(t *testing.T) {
	pos := newPosition(100, 1000, 0)
	bal := newBalance(50_000)

	ev := mustSettle(t, pos, bal, settle.Input{OraclePrice: 900, FundingRate: 0})

	if got := ev.NetSettlement.Int64(); got != -10_000 {
		t.Errorf("net: got %d, want -10000", got)
	}
	if got := bal.Collateral.Int64(); got != 40_000 {
		t.Errorf("collateral: got %d, want 40000", got)
	}
}

func TestSettle_ShortMirrorsLong(t *testing.T) {
	long := newPosition(100, 1000, 10)
	longBal := newBalance(0)
	short := newPosition(-100, 1000, 10)
	shortBal := newBalance(0)

	in := settle.Input{OraclePrice: 1100, FundingRate: 15}
	lev := mustSettle(t, long, longBal, in)
	sev := mustSettle(t, short, shortBal, in)

	wantNeg := new(big.Int).Neg(lev.NetSettlement)
	if sev.NetSettlement.Cmp(wantNeg) != 0 {
		t.Errorf("short net: got %s, want %s", sev.NetSettlement, wantNeg)
	}
	if got := shortBal.Collateral.Int64(); got != -9_500 {
		t.Errorf("short collateral: got %d, want -9500", got)
	}
	if short.EntryPrice != 1100 || short.LastFundingRate != 15 {
		t.Errorf("short checkpoints: entry=%d rate=%d, want 1100/15",
			short.EntryPrice, short.LastFundingRate)
	}
}

func TestSettle_FundingOnly(t *testing.T) {
	// Price unchanged, only the funding leg moves value.
	pos := newPosition(50, 2000, 100)
	bal := newBalance(1_000_000)

	ev := mustSettle(t, pos, bal, settle.Input{OraclePrice: 2000, FundingRate: 140})

	if got := ev.UnrealizedPnL.Int64(); got != 0 {
		t.Errorf("pnl: got %d, want 0", got)
	}
	if got := ev.FundingPayment.Int64(); got != 2_000 {
		t.Errorf("funding: got %d, want 2000", got)
	}
	if got := bal.Collateral.Int64(); got != 998_000 {
		t.Errorf("collateral: got %d, want 998000", got)
	}
}

func TestSettle_NegativeCollateralAllowed(t *testing.T) {
	pos := newPosition(100, 1000, 0)
	bal := newBalance(5_000)

	mustSettle(t, pos, bal, settle.Input{OraclePrice: 900, FundingRate: 0})

	if got := bal.Collateral.Int64(); got != -5_000 {
		t.Errorf("collateral: got %d, want -5000", got)
	}
}

// ============================================================================
// Test: idempotence and composition
// ============================================================================

func TestSettle_Idempotent(t *testing.T) {
	pos := newPosition(100, 1000, 10)
	bal := newBalance(0)
	in := settle.Input{OraclePrice: 1100, FundingRate: 15}

	mustSettle(t, pos, bal, in)
	ev := mustSettle(t, pos, bal, in)

	if !ev.IsNoOp() {
		t.Errorf("replay should move no value: net=%s pnl=%s funding=%s",
			ev.NetSettlement, ev.UnrealizedPnL, ev.FundingPayment)
	}
	if got := bal.Collateral.Int64(); got != 9_500 {
		t.Errorf("collateral after replay: got %d, want 9500", got)
	}
}

func TestSettle_SequentialEqualsDirect(t *testing.T) {
	// Two steps through an intermediate price land on the same state as one
	// step to the final price.
	stepPos := newPosition(100, 1000, 10)
	stepBal := newBalance(0)
	mustSettle(t, stepPos, stepBal, settle.Input{OraclePrice: 1050, FundingRate: 12})
	mustSettle(t, stepPos, stepBal, settle.Input{OraclePrice: 1100, FundingRate: 15})

	directPos := newPosition(100, 1000, 10)
	directBal := newBalance(0)
	mustSettle(t, directPos, directBal, settle.Input{OraclePrice: 1100, FundingRate: 15})

	if stepBal.Collateral.Cmp(directBal.Collateral) != 0 {
		t.Errorf("collateral: stepped %s, direct %s", stepBal.Collateral, directBal.Collateral)
	}
	if stepPos.EntryPrice != directPos.EntryPrice {
		t.Errorf("entry price: stepped %d, direct %d", stepPos.EntryPrice, directPos.EntryPrice)
	}
	if stepPos.LastFundingRate != directPos.LastFundingRate {
		t.Errorf("funding checkpoint: stepped %d, direct %d",
			stepPos.LastFundingRate, directPos.LastFundingRate)
	}
}

// ============================================================================
// Test: flat positions
// ============================================================================

func TestSettle_FlatPosition(t *testing.T) {
	pos := newPosition(0, 0, 10)
	bal := newBalance(123)

	ev := mustSettle(t, pos, bal, settle.Input{OraclePrice: 1100, FundingRate: 15})

	if !ev.IsNoOp() {
		t.Error("flat settlement should move no value")
	}
	if got := bal.Collateral.Int64(); got != 123 {
		t.Errorf("collateral: got %d, want 123", got)
	}
	// Checkpoints still advance so a later open starts from fresh marks.
	if pos.EntryPrice != 1100 {
		t.Errorf("entry price: got %d, want 1100", pos.EntryPrice)
	}
	if pos.LastFundingRate != 15 {
		t.Errorf("funding checkpoint: got %d, want 15", pos.LastFundingRate)
	}
	if pos.Version != 1 {
		t.Errorf("version: got %d, want 1", pos.Version)
	}
}

func TestSettle_FlatSkipsEntryPriceCheck(t *testing.T) {
	// A flat position may carry entry_price == 0; that is not a fault.
	pos := newPosition(0, 0, 0)
	bal := newBalance(0)

	if _, err := settle.Settle(pos, bal, settle.Input{OraclePrice: 500, FundingRate: 0}); err != nil {
		t.Fatalf("flat settle: %v", err)
	}
}

func TestSettle_FlatStillValidatesRate(t *testing.T) {
	pos := newPosition(0, 0, 0)
	bal := newBalance(0)

	_, err := settle.Settle(pos, bal, settle.Input{
		OraclePrice: 500,
		FundingRate: settle.MaxRateMagnitude + 1,
	})
	if !errors.Is(err, settle.ErrFundingRateOutOfBounds) {
		t.Errorf("got %v, want ErrFundingRateOutOfBounds", err)
	}
}

// ============================================================================
// Test: validation order and rejection
// ============================================================================

func TestSettle_RejectsNonPositiveOracle(t *testing.T) {
	for _, price := range []int64{0, -1, math.MinInt64} {
		pos := newPosition(100, 1000, 0)
		bal := newBalance(0)

		_, err := settle.Settle(pos, bal, settle.Input{OraclePrice: price})
		if !errors.Is(err, settle.ErrInvalidOraclePrice) {
			t.Errorf("price %d: got %v, want ErrInvalidOraclePrice", price, err)
		}
	}
}

func TestSettle_RejectsCorruptEntryPrice(t *testing.T) {
	for _, entry := range []int64{0, -500} {
		pos := newPosition(100, entry, 0)
		bal := newBalance(0)

		_, err := settle.Settle(pos, bal, settle.Input{OraclePrice: 1000})
		if !errors.Is(err, settle.ErrInvalidPositionState) {
			t.Errorf("entry %d: got %v, want ErrInvalidPositionState", entry, err)
		}
	}
}

func TestSettle_RejectsRateOutOfBounds(t *testing.T) {
	cases := []struct {
		name     string
		rate     int64
		lastRate int64
	}{
		{"input over", settle.MaxRateMagnitude + 1, 0},
		{"input under", -settle.MaxRateMagnitude - 1, 0},
		{"checkpoint over", 0, settle.MaxRateMagnitude + 1},
		{"checkpoint under", 0, -settle.MaxRateMagnitude - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := newPosition(100, 1000, tc.lastRate)
			bal := newBalance(0)

			_, err := settle.Settle(pos, bal, settle.Input{OraclePrice: 1000, FundingRate: tc.rate})
			if !errors.Is(err, settle.ErrFundingRateOutOfBounds) {
				t.Errorf("got %v, want ErrFundingRateOutOfBounds", err)
			}
		})
	}
}

func TestSettle_BoundaryRateAccepted(t *testing.T) {
	pos := newPosition(1, 1000, -settle.MaxRateMagnitude)
	bal := newBalance(0)

	if _, err := settle.Settle(pos, bal, settle.Input{
		OraclePrice: 1000,
		FundingRate: settle.MaxRateMagnitude,
	}); err != nil {
		t.Fatalf("boundary rates should be accepted: %v", err)
	}
}

func TestSettle_OraclePrecedesEntryPriceCheck(t *testing.T) {
	// Both faults present; oracle validation wins.
	pos := newPosition(100, 0, 0)
	bal := newBalance(0)

	_, err := settle.Settle(pos, bal, settle.Input{OraclePrice: 0})
	if !errors.Is(err, settle.ErrInvalidOraclePrice) {
		t.Errorf("got %v, want ErrInvalidOraclePrice", err)
	}
}

func TestSettle_EntryPricePrecedesRateCheck(t *testing.T) {
	pos := newPosition(100, 0, settle.MaxRateMagnitude+1)
	bal := newBalance(0)

	_, err := settle.Settle(pos, bal, settle.Input{OraclePrice: 1000})
	if !errors.Is(err, settle.ErrInvalidPositionState) {
		t.Errorf("got %v, want ErrInvalidPositionState", err)
	}
}

func TestSettle_ErrorLeavesStateUntouched(t *testing.T) {
	pos := newPosition(100, 0, 7)
	bal := newBalance(42)
	before := *pos
	beforeCollateral := new(big.Int).Set(bal.Collateral)

	if _, err := settle.Settle(pos, bal, settle.Input{OraclePrice: 1000}); err == nil {
		t.Fatal("expected rejection")
	}

	if *pos != before {
		t.Errorf("position mutated on error: got %+v, want %+v", *pos, before)
	}
	if bal.Collateral.Cmp(beforeCollateral) != 0 {
		t.Errorf("collateral mutated on error: got %s, want %s", bal.Collateral, beforeCollateral)
	}
}

// ============================================================================
// Test: overflow
// ============================================================================

func TestSettle_OverflowRejectedWithoutMutation(t *testing.T) {
	pos := newPosition(math.MaxInt64, 1, 0)
	bal := &settle.Balance{
		AccountID:  testAccount,
		Collateral: new(big.Int).Set(numeric.MaxInt128),
	}
	before := *pos
	beforeCollateral := new(big.Int).Set(bal.Collateral)

	_, err := settle.Settle(pos, bal, settle.Input{OraclePrice: math.MaxInt64, FundingRate: 0})
	if !errors.Is(err, settle.ErrArithmeticOverflow) {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}

	if *pos != before {
		t.Errorf("position mutated on overflow: got %+v, want %+v", *pos, before)
	}
	if bal.Collateral.Cmp(beforeCollateral) != 0 {
		t.Errorf("collateral mutated on overflow: got %s, want %s", bal.Collateral, beforeCollateral)
	}
}

func TestSettle_ExtremeInputsWithinRange(t *testing.T) {
	// Worst-case single product fits comfortably; only the collateral sum
	// can leave the stored range.
	pos := newPosition(math.MaxInt64, 1, 0)
	bal := newBalance(0)

	ev := mustSettle(t, pos, bal, settle.Input{OraclePrice: math.MaxInt64, FundingRate: 0})

	want := new(big.Int).Mul(
		big.NewInt(math.MaxInt64-1),
		big.NewInt(math.MaxInt64),
	)
	if ev.NetSettlement.Cmp(want) != 0 {
		t.Errorf("net: got %s, want %s", ev.NetSettlement, want)
	}
	if bal.Collateral.Cmp(want) != 0 {
		t.Errorf("collateral: got %s, want %s", bal.Collateral, want)
	}
}

// ============================================================================
// Test: event contents
// ============================================================================

func TestSettle_EventRecordsTransition(t *testing.T) {
	pos := newPosition(100, 1000, 10)
	pos.Version = 4
	bal := newBalance(250)

	ev := mustSettle(t, pos, bal, settle.Input{OraclePrice: 1100, FundingRate: 15})

	if ev.AccountID != testAccount || ev.Market != "BTC-PERP" {
		t.Errorf("identity: got %s/%s", ev.AccountID, ev.Market)
	}
	if ev.OldEntryPrice != 1000 || ev.NewEntryPrice != 1100 {
		t.Errorf("entry transition: got %d->%d, want 1000->1100", ev.OldEntryPrice, ev.NewEntryPrice)
	}
	if ev.OldFundingRate != 10 || ev.NewFundingRate != 15 {
		t.Errorf("rate transition: got %d->%d, want 10->15", ev.OldFundingRate, ev.NewFundingRate)
	}
	if got := ev.OldCollateral.Int64(); got != 250 {
		t.Errorf("old collateral: got %d, want 250", got)
	}
	if got := ev.NewCollateral.Int64(); got != 9_750 {
		t.Errorf("new collateral: got %d, want 9750", got)
	}
	if ev.PositionVersion != 5 {
		t.Errorf("version: got %d, want 5", ev.PositionVersion)
	}

	// Conservation: new - old == net.
	diff := new(big.Int).Sub(ev.NewCollateral, ev.OldCollateral)
	if diff.Cmp(ev.NetSettlement) != 0 {
		t.Errorf("conservation: diff %s, net %s", diff, ev.NetSettlement)
	}
}
