package audit

import (
	"context"
	"sync"
)

// MemoryRecorder keeps audit entries in memory. Used when no DATABASE_URL
// is configured, and in tests.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) RecordIntroAnswer(_ context.Context, userID int64, answer string) {
	e := newEntry(userID, KindIntroAnswer)
	e.Text = answer

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

func (m *MemoryRecorder) RecordTurn(_ context.Context, userID int64, capability, model string, callErr error) {
	e := newEntry(userID, KindTurn)
	e.Capability = capability
	e.Model = model
	e.Error = errString(callErr)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

// Entries returns a copy of everything recorded so far.
func (m *MemoryRecorder) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}
