// Package error defines domain-specific errors for the ledger.
package error

// LedgerErrorCode identifies a ledger error.
// Format: FAMILY-XXYYYY where the family is the error taxonomy
// (VAL validation, NF not found, FND insufficient funds, STO storage).
type LedgerErrorCode string

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
