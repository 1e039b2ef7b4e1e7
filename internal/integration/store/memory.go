package store

import (
	"context"
	"sync"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// Memory is an in-memory record store. It backs tests and ephemeral runs;
// nothing survives Close.
type Memory struct {
	mu          sync.RWMutex
	collections map[adapter.Kind][]adapter.Row
}

// NewMemory creates an empty in-memory record store.
func NewMemory() *Memory {
	return &Memory{
		collections: make(map[adapter.Kind][]adapter.Row),
	}
}

// LoadAll returns every row of the collection in insertion order.
func (m *Memory) LoadAll(_ context.Context, kind adapter.Kind) ([]adapter.Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]adapter.Row, 0, len(m.collections[kind]))
	for _, row := range m.collections[kind] {
		rows = append(rows, row.Clone())
	}
	return rows, nil
}

// NextID returns max(existing ids)+1, or 1 when the collection is empty.
func (m *Memory) NextID(_ context.Context, kind adapter.Kind) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	max, err := maxID(m.collections[kind])
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// AppendRow appends one row to the collection.
func (m *Memory) AppendRow(_ context.Context, kind adapter.Kind, row adapter.Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections[kind] = append(m.collections[kind], row.Clone())
	return nil
}

// OverwriteAll replaces the whole collection with the given rows.
func (m *Memory) OverwriteAll(_ context.Context, kind adapter.Kind, rows []adapter.Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	replaced := make([]adapter.Row, 0, len(rows))
	for _, row := range rows {
		replaced = append(replaced, row.Clone())
	}
	m.collections[kind] = replaced
	return nil
}

// Close discards the store contents.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections = make(map[adapter.Kind][]adapter.Row)
	return nil
}
