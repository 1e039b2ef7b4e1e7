package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/integration/persistence/model"
)

func newTestWorkbook(t *testing.T) (*Workbook, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWorkbook(dir, model.LegacyTables())
	require.NoError(t, err)
	return w, dir
}

func TestWorkbook_MissingFileIsEmptyCollection(t *testing.T) {
	w, _ := newTestWorkbook(t)
	ctx := context.Background()

	rows, err := w.LoadAll(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Empty(t, rows)

	next, err := w.NextID(ctx, adapter.KindUsers)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

func TestWorkbook_AppendCreatesLegacyFile(t *testing.T) {
	w, dir := newTestWorkbook(t)
	ctx := context.Background()

	err := w.AppendRow(ctx, adapter.KindUsers, adapter.Row{
		"id":            "1",
		"nome":          "Ana",
		"email":         "ana@example.com",
		"senha":         "$2a$04$hash",
		"data_cadastro": "2024-03-01 12:00:00",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "usuarios.xlsx"))
	assert.NoError(t, err)
}

func TestWorkbook_RowsSurviveReopen(t *testing.T) {
	w, dir := newTestWorkbook(t)
	ctx := context.Background()

	err := w.AppendRow(ctx, adapter.KindCategories, adapter.Row{
		"id":    "1",
		"nome":  "Food",
		"tipo":  "variavel",
		"icone": "🍜",
	})
	require.NoError(t, err)

	reopened, err := NewWorkbook(dir, model.LegacyTables())
	require.NoError(t, err)

	rows, err := reopened.LoadAll(ctx, adapter.KindCategories)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Food", rows[0]["nome"])
	assert.Equal(t, "variavel", rows[0]["tipo"])
	assert.Equal(t, "🍜", rows[0]["icone"])
}

func TestWorkbook_EmptyTrailingCellsRoundTrip(t *testing.T) {
	// Spreadsheet readers drop trailing empty cells; a row with an empty
	// last column must still come back with every column present.
	w, _ := newTestWorkbook(t)
	ctx := context.Background()

	err := w.AppendRow(ctx, adapter.KindCategories, adapter.Row{
		"id":    "1",
		"nome":  "Rent",
		"tipo":  "fixa",
		"icone": "",
	})
	require.NoError(t, err)

	rows, err := w.LoadAll(ctx, adapter.KindCategories)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	icon, ok := rows[0]["icone"]
	assert.True(t, ok)
	assert.Equal(t, "", icon)
}

func TestWorkbook_NextIDIsMaxPlusOne(t *testing.T) {
	w, _ := newTestWorkbook(t)
	ctx := context.Background()

	require.NoError(t, w.AppendRow(ctx, adapter.KindCategories, adapter.Row{
		"id": "4", "nome": "Food", "tipo": "variavel", "icone": "",
	}))
	require.NoError(t, w.AppendRow(ctx, adapter.KindCategories, adapter.Row{
		"id": "2", "nome": "Rent", "tipo": "fixa", "icone": "",
	}))

	next, err := w.NextID(ctx, adapter.KindCategories)
	require.NoError(t, err)
	assert.Equal(t, int64(5), next)
}

func TestWorkbook_OverwriteAllReplacesFile(t *testing.T) {
	w, _ := newTestWorkbook(t)
	ctx := context.Background()

	require.NoError(t, w.AppendRow(ctx, adapter.KindCategories, adapter.Row{
		"id": "1", "nome": "Food", "tipo": "variavel", "icone": "",
	}))
	require.NoError(t, w.AppendRow(ctx, adapter.KindCategories, adapter.Row{
		"id": "2", "nome": "Rent", "tipo": "fixa", "icone": "",
	}))

	err := w.OverwriteAll(ctx, adapter.KindCategories, []adapter.Row{
		{"id": "2", "nome": "Housing", "tipo": "fixa", "icone": "🏠"},
	})
	require.NoError(t, err)

	rows, err := w.LoadAll(ctx, adapter.KindCategories)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Housing", rows[0]["nome"])
}

func TestWorkbook_UnknownCollectionFails(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWorkbook(dir, map[adapter.Kind]adapter.Table{})
	require.NoError(t, err)

	_, err = w.LoadAll(context.Background(), adapter.KindUsers)
	assert.Error(t, err)
}
