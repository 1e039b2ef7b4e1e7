// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the store.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not
	// 'entry' or 'exit'.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidCategoryID is returned when a supplied category id is zero or
	// negative. Zero is not a legal id; optional fields signal presence with
	// a pointer, never a zero value.
	ErrInvalidCategoryID = errors.New("invalid category id")
)

// Transaction error codes.
const (
	ErrCodeInvalidTransactionType LedgerErrorCode = "VAL-030001"
	ErrCodeInvalidCategoryID      LedgerErrorCode = "VAL-030002"
	ErrCodeTransactionNotFound    LedgerErrorCode = "NF-030001"
)
