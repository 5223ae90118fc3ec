// Package history keeps the bounded, most-recent-first list of calculation
// results and moves it to and from a store.Store.
package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/store"
)

const (
	MaxEntries = 50
	StorageKey = "calculator_history"
)

// Manager owns the in-memory history. The in-memory list is authoritative;
// Load and Persist are explicit steps left to the caller.
type Manager struct {
	mu      sync.RWMutex
	entries []domain.Result
	store   store.Store
}

// NewManager returns an empty history backed by s. A nil store disables
// persistence.
func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Add prepends r and drops entries beyond MaxEntries.
func (m *Manager) Add(r domain.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]domain.Result{r}, m.entries...)
	if len(m.entries) > MaxEntries {
		m.entries = m.entries[:MaxEntries]
	}
}

func (m *Manager) Clear() {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
}

// ByID returns the entry with the given ID.
func (m *Manager) ByID(id string) (domain.Result, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.entries {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Result{}, false
}

// All returns a copy of the entries, most recent first.
func (m *Manager) All() []domain.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Result, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Statistics aggregates the history. ok is false when it is empty.
func (m *Manager) Statistics() (stats domain.Statistics, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Aggregate(m.entries)
}

// Between returns the entries whose date falls in [since, until]
// (YYYY-MM-DD, either may be empty) in tz.
func (m *Manager) Between(since, until string, tz *time.Location) ([]domain.Result, error) {
	return domain.FilterByTimeRange(m.All(), since, until, tz)
}

// Load replaces the in-memory history with the persisted one. A missing key
// leaves the history empty. On error the in-memory state is unchanged.
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	var entries []domain.Result
	found, err := m.store.Load(ctx, StorageKey, &entries)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if !found {
		return nil
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()
	return nil
}

// Persist writes the current history to the store. An empty history removes
// the key.
func (m *Manager) Persist(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	entries := m.All()
	if len(entries) == 0 {
		if err := m.store.Delete(ctx, StorageKey); err != nil {
			return fmt.Errorf("persist history: %w", err)
		}
		return nil
	}
	if err := m.store.Save(ctx, StorageKey, entries); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}
