package projection

import (
	"fmt"
	"testing"
	"time"
)

func addSettlement(rs *RecentSettlements, seq int64, account string) {
	rs.Add(seq, SettlementRecord{
		AccountID:     account,
		Market:        "BTC-USD",
		NetSettlement: fmt.Sprintf("%d", seq),
	}, time.Now())
}

func TestRecentSettlements_NewestFirst(t *testing.T) {
	rs := NewRecentSettlements(8)
	for seq := int64(1); seq <= 5; seq++ {
		addSettlement(rs, seq, "acct-a")
	}

	got := rs.QueryByAccount("acct-a", 3)
	if len(got) != 3 {
		t.Fatalf("len: got %d, want 3", len(got))
	}
	if got[0].Sequence != 5 || got[1].Sequence != 4 || got[2].Sequence != 3 {
		t.Errorf("order: got %d,%d,%d, want 5,4,3", got[0].Sequence, got[1].Sequence, got[2].Sequence)
	}
}

func TestRecentSettlements_FiltersByAccount(t *testing.T) {
	rs := NewRecentSettlements(8)
	addSettlement(rs, 1, "acct-a")
	addSettlement(rs, 2, "acct-b")
	addSettlement(rs, 3, "acct-a")

	got := rs.QueryByAccount("acct-b", 10)
	if len(got) != 1 {
		t.Fatalf("len: got %d, want 1", len(got))
	}
	if got[0].Sequence != 2 {
		t.Errorf("sequence: got %d, want 2", got[0].Sequence)
	}
}

func TestRecentSettlements_EvictsOldest(t *testing.T) {
	rs := NewRecentSettlements(4)
	for seq := int64(1); seq <= 6; seq++ {
		addSettlement(rs, seq, "acct-a")
	}

	got := rs.QueryByAccount("acct-a", 10)
	if len(got) != 4 {
		t.Fatalf("len: got %d, want 4", len(got))
	}
	if got[0].Sequence != 6 {
		t.Errorf("newest: got %d, want 6", got[0].Sequence)
	}
	if got[3].Sequence != 3 {
		t.Errorf("oldest retained: got %d, want 3", got[3].Sequence)
	}
}

func TestRecentSettlements_Latest(t *testing.T) {
	rs := NewRecentSettlements(4)
	if _, ok := rs.Latest(); ok {
		t.Fatal("expected empty ring to report no latest entry")
	}

	addSettlement(rs, 7, "acct-a")
	entry, ok := rs.Latest()
	if !ok {
		t.Fatal("expected latest entry")
	}
	if entry.Sequence != 7 {
		t.Errorf("sequence: got %d, want 7", entry.Sequence)
	}
}
