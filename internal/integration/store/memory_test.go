package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-ledger/core/internal/application/adapter"
)

func TestMemory_EmptyCollection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rows, err := m.LoadAll(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Empty(t, rows)

	next, err := m.NextID(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

func TestMemory_NextIDIsMaxPlusOne(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, adapter.Row{"id": "2"}))
	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, adapter.Row{"id": "7"}))
	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, adapter.Row{"id": "3"}))

	next, err := m.NextID(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)
}

func TestMemory_NextIDRejectsUnreadableID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, adapter.Row{"id": "not-a-number"}))

	_, err := m.NextID(ctx, adapter.KindUsers)
	assert.Error(t, err)
}

func TestMemory_RowsAreIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	original := adapter.Row{"id": "1", "nome": "Ana"}
	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, original))

	// Mutating the appended row must not leak into the store.
	original["nome"] = "changed"

	rows, err := m.LoadAll(ctx, adapter.KindUsers)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["nome"])

	// Nor must mutating a loaded row.
	rows[0]["nome"] = "changed again"

	rows, err = m.LoadAll(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Equal(t, "Ana", rows[0]["nome"])
}

func TestMemory_OverwriteAllReplacesCollection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendRow(ctx, adapter.KindCategories, adapter.Row{"id": "1", "nome": "Food"}))
	require.NoError(t, m.AppendRow(ctx, adapter.KindCategories, adapter.Row{"id": "2", "nome": "Rent"}))

	err := m.OverwriteAll(ctx, adapter.KindCategories, []adapter.Row{
		{"id": "2", "nome": "Housing"},
	})
	require.NoError(t, err)

	rows, err := m.LoadAll(ctx, adapter.KindCategories)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Housing", rows[0]["nome"])
}

func TestMemory_CollectionsAreIndependent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, adapter.Row{"id": "1"}))

	rows, err := m.LoadAll(ctx, adapter.KindAccounts)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemory_CloseDiscardsEverything(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendRow(ctx, adapter.KindUsers, adapter.Row{"id": "1"}))
	require.NoError(t, m.Close())

	rows, err := m.LoadAll(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
