// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "context"

// Kind names one of the four persisted collections.
type Kind string

const (
	KindUsers        Kind = "users"
	KindAccounts     Kind = "accounts"
	KindCategories   Kind = "categories"
	KindTransactions Kind = "transactions"
)

// IDColumn is the column every collection uses for its integer identifier.
// NextID derives the next identifier from it.
const IDColumn = "id"

// Row is one persisted record: column name to encoded value. Value shapes
// are owned by the entity codecs, not by the store.
type Row map[string]string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Table describes how a collection is laid out by backends that persist
// positional, named columns (the workbook backend). The column order and
// file name match the legacy data files.
type Table struct {
	File    string
	Columns []string
}

// RecordStore is the generic persistence contract backing every entity
// collection. AppendRow and OverwriteAll are the only write primitives;
// every save, edit and delete composes from these two.
//
// Implementations serialize writes against reads of the same collection so
// a caller never observes a partially rewritten collection.
type RecordStore interface {
	// LoadAll returns every row of the collection in insertion order. A
	// collection that has never been written yields an empty result, not
	// an error.
	LoadAll(ctx context.Context, kind Kind) ([]Row, error)

	// NextID returns max(existing ids)+1 for the collection, or 1 when the
	// collection is empty.
	NextID(ctx context.Context, kind Kind) (int64, error)

	// AppendRow appends one row to the collection.
	AppendRow(ctx context.Context, kind Kind, row Row) error

	// OverwriteAll replaces the whole collection with the given rows.
	OverwriteAll(ctx context.Context, kind Kind, rows []Row) error

	// Close releases the backing resources.
	Close() error
}
