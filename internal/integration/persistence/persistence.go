// Package persistence implements repository interfaces over the record store.
//
// Every entity's save, edit and delete composes from the store's two write
// primitives: a save appends one row, an edit or delete loads the whole
// collection, adjusts it in memory and writes it back in full.
package persistence

import (
	"strconv"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// matchID reports whether the row's id column holds the given identifier.
func matchID(row adapter.Row, id int64) bool {
	return row[adapter.IDColumn] == strconv.FormatInt(id, 10)
}
