// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryKind is returned when the category kind is not
	// 'fixed' or 'variable'.
	ErrInvalidCategoryKind = errors.New("invalid category kind")
)

// Category error codes.
const (
	ErrCodeInvalidCategoryKind LedgerErrorCode = "VAL-020001"
	ErrCodeCategoryNotFound    LedgerErrorCode = "NF-020001"
)
