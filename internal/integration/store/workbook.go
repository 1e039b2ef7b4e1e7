package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// Workbook is a record store over one xlsx file per collection, matching the
// legacy data files in name, column order and value encoding.
//
// Every mutation rewrites the whole file: there is no append-only log and no
// partial-write atomicity, so a crash mid-write can corrupt the backing file.
// The sqlite backend is the one to pick when that matters.
type Workbook struct {
	mu     sync.RWMutex
	dir    string
	tables map[adapter.Kind]adapter.Table
}

// NewWorkbook creates a workbook store rooted at dir, creating the directory
// when missing. The tables fix each collection's file name and column order.
func NewWorkbook(dir string, tables map[adapter.Kind]adapter.Table) (*Workbook, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, storageError("create data directory", err)
	}
	return &Workbook{
		dir:    dir,
		tables: tables,
	}, nil
}

// LoadAll returns every row of the collection in file order. A collection
// whose file does not exist yet yields an empty result.
func (w *Workbook) LoadAll(_ context.Context, kind adapter.Kind) ([]adapter.Row, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.loadAll(kind)
}

// NextID returns max(existing ids)+1, or 1 when the collection is empty.
func (w *Workbook) NextID(_ context.Context, kind adapter.Kind) (int64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rows, err := w.loadAll(kind)
	if err != nil {
		return 0, err
	}
	max, err := maxID(rows)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// AppendRow appends one row to the collection and rewrites the file.
func (w *Workbook) AppendRow(_ context.Context, kind adapter.Kind, row adapter.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	rows, err := w.loadAll(kind)
	if err != nil {
		return err
	}
	return w.writeAll(kind, append(rows, row))
}

// OverwriteAll replaces the whole collection file with the given rows.
func (w *Workbook) OverwriteAll(_ context.Context, kind adapter.Kind, rows []adapter.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.writeAll(kind, rows)
}

// Close is a no-op; files are closed after every operation.
func (w *Workbook) Close() error {
	return nil
}

func (w *Workbook) path(kind adapter.Kind) (string, adapter.Table, error) {
	table, ok := w.tables[kind]
	if !ok {
		return "", adapter.Table{}, storageError(fmt.Sprintf("unknown collection %q", kind), nil)
	}
	return filepath.Join(w.dir, table.File), table, nil
}

func (w *Workbook) loadAll(kind adapter.Kind) ([]adapter.Row, error) {
	path, _, err := w.path(kind)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, storageError("open collection file "+path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, storageError("read collection file "+path, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]adapter.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(adapter.Row, len(headers))
		for i, header := range headers {
			if i < len(line) {
				row[header] = line[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *Workbook) writeAll(kind adapter.Kind, rows []adapter.Row) error {
	path, table, err := w.path(kind)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &table.Columns); err != nil {
		return storageError("write collection header", err)
	}
	for i, row := range rows {
		values := make([]interface{}, len(table.Columns))
		for j, column := range table.Columns {
			values[j] = row[column]
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return storageError("write collection row", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return storageError("save collection file "+path, err)
	}
	return nil
}
