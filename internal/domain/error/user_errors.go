// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the store.
	ErrUserNotFound = errors.New("user not found")
)

// User error codes.
const (
	ErrCodeUserNotFound LedgerErrorCode = "NF-040001"
)
