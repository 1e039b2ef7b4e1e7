// Package entity defines the core business entities of the ledger.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType encodes the direction of a transaction. The amount itself
// is always positive; money received is an entry, money spent is an exit.
type TransactionType string

const (
	TransactionTypeEntry TransactionType = "entry"
	TransactionTypeExit  TransactionType = "exit"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeEntry || t == TransactionTypeExit
}

// Transaction represents a single dated movement of funds against an account
// and a category.
//
// Categories are a weak reference: deleting a category leaves transactions
// pointing at the now-absent ID.
type Transaction struct {
	ID          int64
	AccountID   int64
	CategoryID  int64
	Type        TransactionType
	Amount      decimal.Decimal // always positive, direction is in Type
	Description string
	Timestamp   time.Time
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// repository when the transaction is persisted.
func NewTransaction(
	accountID int64,
	categoryID int64,
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	timestamp time.Time,
) *Transaction {
	return &Transaction{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Timestamp:   timestamp,
	}
}
