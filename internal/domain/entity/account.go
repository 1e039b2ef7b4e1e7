// Package entity defines the core business entities of the ledger.
package entity

import "time"

// Account kinds. The kind is a free-form string; these are the values the
// system provisions by itself.
const (
	AccountKindChecking = "checking"
	AccountKindSavings  = "savings"
)

// Account represents a user's account in the ledger.
//
// An account references its owner by ID only; it never holds the User value.
// The balance is not a field: it is derived on demand from the transaction
// log (sum of entries minus sum of exits for this account).
type Account struct {
	ID          int64
	OwnerUserID int64
	Kind        string
	CreatedAt   time.Time
}

// NewAccount creates a new Account entity. The ID is assigned by the
// repository when the account is persisted.
func NewAccount(ownerUserID int64, kind string, createdAt time.Time) *Account {
	return &Account{
		OwnerUserID: ownerUserID,
		Kind:        kind,
		CreatedAt:   createdAt,
	}
}
