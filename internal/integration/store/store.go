// Package store provides the record store backends: an in-memory store for
// tests, a workbook store compatible with the legacy xlsx data files, and a
// sqlite store.
package store

import (
	"strconv"

	"github.com/finance-ledger/core/internal/application/adapter"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
)

// maxID returns the largest identifier present in the rows, or 0 for an
// empty collection.
func maxID(rows []adapter.Row) (int64, error) {
	var max int64
	for _, row := range rows {
		id, err := strconv.ParseInt(row[adapter.IDColumn], 10, 64)
		if err != nil {
			return 0, domainerror.NewLedgerError(
				domainerror.ErrCodeStorageFailure,
				"collection has a row without a readable id",
				err,
			)
		}
		if id > max {
			max = id
		}
	}
	return max, nil
}

func storageError(message string, err error) error {
	return domainerror.NewLedgerError(domainerror.ErrCodeStorageFailure, message, err)
}
