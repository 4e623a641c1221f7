package projection

import (
	"sync"
	"time"
)

// HistoryEntry is one executed settlement kept in the in-memory ring.
type HistoryEntry struct {
	Sequence  int64
	Record    SettlementRecord
	Timestamp time.Time
}

// RecentSettlements keeps a bounded in-memory ring of the latest executed
// settlements so status queries don't hit Postgres. Unlike the tables, it
// is read from the query goroutine, hence the lock.
type RecentSettlements struct {
	mu      sync.RWMutex
	entries []HistoryEntry
	next    int
	filled  bool
}

func NewRecentSettlements(capacity int) *RecentSettlements {
	if capacity <= 0 {
		capacity = 256
	}
	return &RecentSettlements{
		entries: make([]HistoryEntry, capacity),
	}
}

// Add records a settlement, evicting the oldest when full.
func (rs *RecentSettlements) Add(sequence int64, rec SettlementRecord, ts time.Time) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.entries[rs.next] = HistoryEntry{Sequence: sequence, Record: rec, Timestamp: ts}
	rs.next++
	if rs.next == len(rs.entries) {
		rs.next = 0
		rs.filled = true
	}
}

// QueryByAccount returns the newest settlements for an account, newest
// first, up to limit.
func (rs *RecentSettlements) QueryByAccount(accountID string, limit int) []HistoryEntry {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	size := rs.next
	if rs.filled {
		size = len(rs.entries)
	}

	result := make([]HistoryEntry, 0, limit)
	for i := 1; i <= size && len(result) < limit; i++ {
		idx := rs.next - i
		if idx < 0 {
			idx += len(rs.entries)
		}
		if rs.entries[idx].Record.AccountID == accountID {
			result = append(result, rs.entries[idx])
		}
	}
	return result
}

// Latest returns the newest entry, or false when empty.
func (rs *RecentSettlements) Latest() (HistoryEntry, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if rs.next == 0 && !rs.filled {
		return HistoryEntry{}, false
	}
	idx := rs.next - 1
	if idx < 0 {
		idx += len(rs.entries)
	}
	return rs.entries[idx], true
}
