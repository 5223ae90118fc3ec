package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(i int) domain.Result {
	return domain.Result{
		ID:        fmt.Sprintf("r%d", i),
		Timestamp: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		Summary:   domain.Summary{TotalCost: float64(i), TotalTokens: i * 10},
	}
}

func TestManager_Add_MostRecentFirst(t *testing.T) {
	m := NewManager(nil)
	m.Add(entry(1))
	m.Add(entry(2))

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "r2", all[0].ID)
	assert.Equal(t, "r1", all[1].ID)
}

func TestManager_Add_Cap(t *testing.T) {
	m := NewManager(nil)
	for i := 1; i <= MaxEntries+1; i++ {
		m.Add(entry(i))
	}

	assert.Equal(t, MaxEntries, m.Len())
	all := m.All()
	assert.Equal(t, "r51", all[0].ID)
	_, found := m.ByID("r1")
	assert.False(t, found, "oldest entry should be evicted")
	_, found = m.ByID("r2")
	assert.True(t, found)
}

func TestManager_ByID(t *testing.T) {
	m := NewManager(nil)
	m.Add(entry(7))

	r, ok := m.ByID("r7")
	assert.True(t, ok)
	assert.Equal(t, 7.0, r.Summary.TotalCost)

	_, ok = m.ByID("nope")
	assert.False(t, ok)
}

func TestManager_All_ReturnsCopy(t *testing.T) {
	m := NewManager(nil)
	m.Add(entry(1))
	all := m.All()
	all[0].ID = "mutated"

	_, ok := m.ByID("r1")
	assert.True(t, ok)
}

func TestManager_Statistics(t *testing.T) {
	m := NewManager(nil)
	_, ok := m.Statistics()
	assert.False(t, ok)

	m.Add(entry(1))
	m.Add(entry(3))
	stats, ok := m.Statistics()
	require.True(t, ok)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 2.0, stats.AverageCost, 1e-12)
	assert.Equal(t, 30, stats.MaxTokens)
	assert.True(t, stats.MostRecentTimestamp.Equal(entry(3).Timestamp))
}

func TestManager_Clear(t *testing.T) {
	m := NewManager(nil)
	m.Add(entry(1))
	m.Clear()
	assert.Zero(t, m.Len())
}

func TestManager_Between(t *testing.T) {
	m := NewManager(nil)
	m.Add(entry(1))  // 2026-02-01
	m.Add(entry(30)) // 2026-02-02 06:00

	got, err := m.Between("2026-02-02", "", time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r30", got[0].ID)

	_, err = m.Between("yesterday", "", time.UTC)
	assert.Error(t, err)
}

func TestManager_PersistLoad(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	m := NewManager(s)
	m.Add(entry(1))
	m.Add(entry(2))
	require.NoError(t, m.Persist(ctx))

	restored := NewManager(s)
	require.NoError(t, restored.Load(ctx))
	all := restored.All()
	require.Len(t, all, 2)
	assert.Equal(t, "r2", all[0].ID)
	assert.True(t, all[0].Timestamp.Equal(entry(2).Timestamp))
}

func TestManager_Load_Missing(t *testing.T) {
	m := NewManager(store.NewMemoryStore())
	require.NoError(t, m.Load(context.Background()))
	assert.Zero(t, m.Len())
}

func TestManager_Load_TruncatesOversized(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	var big []domain.Result
	for i := 0; i < MaxEntries+10; i++ {
		big = append(big, entry(i))
	}
	require.NoError(t, s.Save(ctx, StorageKey, big))

	m := NewManager(s)
	require.NoError(t, m.Load(ctx))
	assert.Equal(t, MaxEntries, m.Len())
}

func TestManager_Load_CorruptKeepsState(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Save(ctx, StorageKey, "not a list"))

	m := NewManager(s)
	m.Add(entry(1))
	assert.Error(t, m.Load(ctx))
	assert.Equal(t, 1, m.Len())
}

func TestManager_ClearPersisted(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	m := NewManager(s)
	m.Add(entry(1))
	require.NoError(t, m.Persist(ctx))

	m.Clear()
	require.NoError(t, m.Persist(ctx))

	var persisted []domain.Result
	found, err := s.Load(ctx, StorageKey, &persisted)
	require.NoError(t, err)
	assert.False(t, found, "an empty history removes the stored key")

	restored := NewManager(s)
	restored.Add(entry(9))
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, 1, restored.Len(), "loading a removed key keeps the in-memory state")
}

type deleteFailingStore struct{ *store.MemoryStore }

func (deleteFailingStore) Delete(context.Context, string) error {
	return errors.New("read-only")
}

func TestManager_PersistEmpty_DeleteError(t *testing.T) {
	m := NewManager(deleteFailingStore{store.NewMemoryStore()})
	err := m.Persist(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}
