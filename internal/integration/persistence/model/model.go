// Package model maps ledger entities to and from store rows.
//
// Column names, file names and value encodings are those of the legacy data
// files, preserved bit-for-bit so existing collections keep loading:
// Portuguese column headers, timestamps as "YYYY-MM-DD HH:MM:SS" strings and
// the literal enum values "entrada"/"saida" and "fixa"/"variavel".
package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// TimeLayout is the timestamp encoding of the legacy data files.
const TimeLayout = "2006-01-02 15:04:05"

// LegacyTables describes the file name and column order of each collection
// for backends that persist positional, named columns.
func LegacyTables() map[adapter.Kind]adapter.Table {
	return map[adapter.Kind]adapter.Table{
		adapter.KindUsers: {
			File:    "usuarios.xlsx",
			Columns: []string{colID, colUserName, colUserEmail, colUserPassword, colUserCreatedAt},
		},
		adapter.KindAccounts: {
			File:    "contas.xlsx",
			Columns: []string{colID, colAccountOwner, colAccountKind, colAccountCreatedAt},
		},
		adapter.KindCategories: {
			File:    "categorias.xlsx",
			Columns: []string{colID, colCategoryName, colCategoryKind, colCategoryIcon},
		},
		adapter.KindTransactions: {
			File:    "transacoes.xlsx",
			Columns: []string{colID, colTransactionAccount, colTransactionCategory, colTransactionType, colTransactionAmount, colTransactionDescription, colTransactionTimestamp},
		},
	}
}

// colID is shared by every collection, see adapter.IDColumn.
const colID = adapter.IDColumn

func encodeID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeID(row adapter.Row, column string) (int64, error) {
	id, err := strconv.ParseInt(row[column], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return id, nil
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func decodeTime(row adapter.Row, column string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, row[column], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", column, err)
	}
	return t, nil
}
