package state_test

import (
	"bytes"
	"math/big"
	"testing"

	"MarginSettle/internal/settle"
	"MarginSettle/internal/state"

	"github.com/google/uuid"
)

func TestAccountBook_InitialBalanceZero(t *testing.T) {
	ab := state.NewAccountBook()
	accountID := uuid.New()

	bal := ab.GetOrCreateBalance(accountID)
	if bal.Collateral.Sign() != 0 {
		t.Errorf("initial collateral should be 0, got %s", bal.Collateral)
	}
}

func TestAccountBook_DepositWithdraw(t *testing.T) {
	ab := state.NewAccountBook()
	accountID := uuid.New()

	if err := ab.Deposit(accountID, 1_000_000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := ab.Withdraw(accountID, 400_000); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	got := ab.GetBalance(accountID).Collateral
	if got.Cmp(big.NewInt(600_000)) != 0 {
		t.Errorf("collateral: got %s, want 600000", got)
	}
}

func TestAccountBook_WithdrawInsufficient(t *testing.T) {
	ab := state.NewAccountBook()
	accountID := uuid.New()

	if err := ab.Deposit(accountID, 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := ab.Withdraw(accountID, 101); err == nil {
		t.Error("overdraft withdrawal should be rejected")
	}

	got := ab.GetBalance(accountID).Collateral
	if got.Cmp(big.NewInt(100)) != 0 {
		t.Errorf("rejected withdrawal must not change collateral: got %s", got)
	}
}

func TestAccountBook_WithdrawUnknownAccount(t *testing.T) {
	ab := state.NewAccountBook()

	if err := ab.Withdraw(uuid.New(), 10); err == nil {
		t.Error("withdrawal from unknown account should be rejected")
	}
}

func TestAccountBook_NonPositiveAmounts(t *testing.T) {
	ab := state.NewAccountBook()
	accountID := uuid.New()

	if err := ab.Deposit(accountID, 0); err == nil {
		t.Error("zero deposit should be rejected")
	}
	if err := ab.Deposit(accountID, -5); err == nil {
		t.Error("negative deposit should be rejected")
	}
	if err := ab.Withdraw(accountID, 0); err == nil {
		t.Error("zero withdrawal should be rejected")
	}
}

func TestAccountBook_WithdrawNegativeCollateralBlocked(t *testing.T) {
	// Settlement may push collateral negative; withdrawals then fail until
	// the account is topped up.
	ab := state.NewAccountBook()
	accountID := uuid.New()
	ab.RestoreBalance(&settle.Balance{
		AccountID:  accountID,
		Collateral: big.NewInt(-500),
	})

	if err := ab.Withdraw(accountID, 1); err == nil {
		t.Error("withdrawal against negative collateral should be rejected")
	}
}

func TestAccountBook_AccountPositionsSorted(t *testing.T) {
	ab := state.NewAccountBook()
	accountID := uuid.New()

	for _, market := range []string{"SOL-PERP", "BTC-PERP", "ETH-PERP"} {
		ab.SetPosition(&settle.Position{
			AccountID:  accountID,
			Market:     market,
			Size:       1,
			EntryPrice: 100,
		})
	}

	positions := ab.AccountPositions(accountID)
	want := []string{"BTC-PERP", "ETH-PERP", "SOL-PERP"}
	for i, pos := range positions {
		if pos.Market != want[i] {
			t.Errorf("position %d: got %s, want %s", i, pos.Market, want[i])
		}
	}
}

func TestAccountBook_DigestDeterministic(t *testing.T) {
	accountID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	build := func() *state.AccountBook {
		ab := state.NewAccountBook()
		ab.Deposit(accountID, 9_500)
		ab.SetPosition(&settle.Position{
			AccountID:       accountID,
			Market:          "BTC-PERP",
			Size:            100,
			EntryPrice:      1100,
			LastFundingRate: 15,
			Version:         1,
		})
		return ab
	}

	d1 := build().AccountDigest(accountID)
	d2 := build().AccountDigest(accountID)
	if !bytes.Equal(d1, d2) {
		t.Error("digest should be deterministic across identical books")
	}
}

func TestAccountBook_DigestChangesWithState(t *testing.T) {
	accountID := uuid.New()
	ab := state.NewAccountBook()
	ab.Deposit(accountID, 100)

	before := ab.AccountDigest(accountID)
	ab.Deposit(accountID, 1)
	after := ab.AccountDigest(accountID)

	if bytes.Equal(before, after) {
		t.Error("digest should change when collateral changes")
	}
}

func TestOracleCache_StaleIgnored(t *testing.T) {
	oc := state.NewOracleCache()

	oc.UpdatePrice("BTC-PERP", 1000, 5, 1)
	oc.UpdatePrice("BTC-PERP", 900, 4, 2) // stale sequence

	got, ok := oc.GetPrice("BTC-PERP")
	if !ok || got != 1000 {
		t.Errorf("price: got %d (ok=%v), want 1000", got, ok)
	}
}

func TestOracleCache_GapAccepted(t *testing.T) {
	oc := state.NewOracleCache()

	oc.UpdateRate("BTC-PERP", 10, 1, 1)
	oc.UpdateRate("BTC-PERP", 25, 10, 2) // gap in sequence

	got, ok := oc.GetRate("BTC-PERP")
	if !ok || got != 25 {
		t.Errorf("rate: got %d (ok=%v), want 25", got, ok)
	}
}

func TestOracleCache_UnknownMarket(t *testing.T) {
	oc := state.NewOracleCache()

	if _, ok := oc.GetPrice("ETH-PERP"); ok {
		t.Error("unknown market should report no price")
	}
	if _, ok := oc.GetRate("ETH-PERP"); ok {
		t.Error("unknown market should report no rate")
	}
}
