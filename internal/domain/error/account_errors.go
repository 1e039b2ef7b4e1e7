// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the store.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount is returned when a deposit or expense amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when an expense exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account error codes.
const (
	ErrCodeInvalidAmount     LedgerErrorCode = "VAL-010001"
	ErrCodeAccountNotFound   LedgerErrorCode = "NF-010001"
	ErrCodeInsufficientFunds LedgerErrorCode = "FND-010001"
)
