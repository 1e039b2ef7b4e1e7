// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Storage errors. These cover backing-store corruption or unavailability and
// are surfaced to the caller rather than swallowed.
var (
	// ErrStorageFailure is returned when the backing store cannot be read or written.
	ErrStorageFailure = errors.New("storage failure")
)

// Storage error codes.
const (
	ErrCodeStorageFailure LedgerErrorCode = "STO-010001"
)
