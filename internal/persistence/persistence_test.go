package persistence_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"MarginSettle/internal/persistence"
	"MarginSettle/internal/testutil"

	"github.com/google/uuid"
)

// These tests need the docker-compose.test.yml Postgres.

func setupMigrated(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)

	migrator := persistence.NewMigrator(db, "../../migrations")
	if err := migrator.Up(context.Background()); err != nil {
		cleanup()
		t.Fatalf("migrate up: %v", err)
	}

	return db, cleanup
}

func TestEventLogRoundTrip(t *testing.T) {
	db, cleanup := setupMigrated(t)
	defer cleanup()

	ctx := context.Background()
	accountID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	writer := persistence.NewEventLogWriter(db, 50, 10*time.Millisecond)

	events := []persistence.EventRow{
		{
			Sequence:       0,
			EventType:      "DepositConfirmed",
			IdempotencyKey: uuid.NewString(),
			Payload:        []byte(`{"AccountID":"` + accountID.String() + `","Amount":5000}`),
			StateHash:      make([]byte, 32),
			PrevHash:       make([]byte, 32),
			Timestamp:      now,
			SourceSequence: 1,
		},
		{
			Sequence:       1,
			EventType:      "SettlementRequest",
			IdempotencyKey: uuid.NewString(),
			Payload:        []byte(`{"AccountID":"` + accountID.String() + `","Market":"ETH-USD"}`),
			StateHash:      make([]byte, 32),
			PrevHash:       make([]byte, 32),
			Timestamp:      now,
			SourceSequence: 2,
		},
	}
	settlements := []persistence.SettlementRow{
		{
			Sequence:        1,
			AccountID:       accountID.String(),
			Market:          "ETH-USD",
			Size:            100,
			OraclePrice:     1100,
			FundingRate:     15,
			UnrealizedPnL:   "10000",
			FundingPayment:  "500",
			NetSettlement:   "9500",
			OldEntryPrice:   1000,
			NewEntryPrice:   1100,
			OldFundingRate:  10,
			NewFundingRate:  15,
			OldCollateral:   "0",
			NewCollateral:   "9500",
			PositionVersion: 1,
			Timestamp:       now,
		},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := writer.WriteEventBatch(ctx, tx, events); err != nil {
		tx.Rollback()
		t.Fatalf("write events: %v", err)
	}
	if err := writer.WriteSettlementBatch(ctx, tx, settlements); err != nil {
		tx.Rollback()
		t.Fatalf("write settlements: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	snapMgr := persistence.NewSnapshotManager(db)

	got, err := snapMgr.LoadEventsFrom(ctx, 0, 100)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded events = %d, want 2", len(got))
	}
	if got[0].EventType != "DepositConfirmed" || got[1].EventType != "SettlementRequest" {
		t.Errorf("event types = %s, %s", got[0].EventType, got[1].EventType)
	}

	latest, err := snapMgr.GetLatestSequence(ctx)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if latest != 1 {
		t.Errorf("latest sequence = %d, want 1", latest)
	}

	// Tier-2 idempotency lookup hits the unique (event_type, key) index.
	checker := persistence.NewPostgresIdempotencyChecker(db)
	dup, err := checker.IsDuplicate("DepositConfirmed", events[0].IdempotencyKey)
	if err != nil {
		t.Fatalf("idempotency lookup: %v", err)
	}
	if !dup {
		t.Error("persisted key not reported as duplicate")
	}

	dup, err = checker.IsDuplicate("DepositConfirmed", uuid.NewString())
	if err != nil {
		t.Fatalf("idempotency lookup: %v", err)
	}
	if dup {
		t.Error("unknown key reported as duplicate")
	}
}

func TestEventWriteIsIdempotent(t *testing.T) {
	db, cleanup := setupMigrated(t)
	defer cleanup()

	ctx := context.Background()
	writer := persistence.NewEventLogWriter(db, 50, 10*time.Millisecond)

	row := persistence.EventRow{
		Sequence:       0,
		EventType:      "DepositConfirmed",
		IdempotencyKey: uuid.NewString(),
		Payload:        []byte(`{"Amount":1}`),
		StateHash:      make([]byte, 32),
		PrevHash:       make([]byte, 32),
		Timestamp:      time.Now(),
		SourceSequence: 1,
	}

	for i := 0; i < 2; i++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		if err := writer.WriteEventBatch(ctx, tx, []persistence.EventRow{row}); err != nil {
			tx.Rollback()
			t.Fatalf("write attempt %d: %v", i, err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("commit attempt %d: %v", i, err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_log.events WHERE sequence = 0`,
	).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows for sequence 0 = %d, want 1", count)
	}
}

func TestSnapshotSaveLoadVerify(t *testing.T) {
	db, cleanup := setupMigrated(t)
	defer cleanup()

	ctx := context.Background()
	snapMgr := persistence.NewSnapshotManager(db)

	snap := &persistence.SnapshotData{
		Sequence:  41,
		StateHash: make([]byte, 32),
		Positions: []persistence.PositionSnapshot{
			{AccountID: uuid.NewString(), Market: "ETH-USD", Size: 100, EntryPrice: 1000, LastFundingRate: 10, Version: 3},
		},
		Balances: []persistence.BalanceSnapshot{
			{AccountID: uuid.NewString(), Collateral: "170141183460469231731687303715884105727"},
		},
		Prices:          map[string]persistence.PriceSnap{"ETH-USD": {Price: 1100, Sequence: 7, Timestamp: 1}},
		Rates:           map[string]persistence.RateSnap{"ETH-USD": {Rate: 15, Sequence: 4, Timestamp: 1}},
		SequenceState:   map[string]int64{"price:ETH-USD": 8},
		IdempotencyKeys: []string{"a", "b"},
		CreatedAt:       time.Now(),
	}

	if err := snapMgr.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	// Unverified snapshots must never be loaded.
	loaded, err := snapMgr.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if loaded != nil {
		t.Fatal("loaded an unverified snapshot")
	}

	if err := snapMgr.MarkVerified(ctx, snap.Sequence); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	loaded, err = snapMgr.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if loaded == nil {
		t.Fatal("verified snapshot not loaded")
	}
	if loaded.Sequence != 41 {
		t.Errorf("sequence = %d, want 41", loaded.Sequence)
	}
	if got := loaded.Balances[0].Collateral; got != snap.Balances[0].Collateral {
		t.Errorf("collateral = %s, want %s", got, snap.Balances[0].Collateral)
	}
	if got := loaded.Prices["ETH-USD"].Price; got != 1100 {
		t.Errorf("price = %d, want 1100", got)
	}
}
