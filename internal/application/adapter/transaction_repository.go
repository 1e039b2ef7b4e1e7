// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-ledger/core/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations.
type TransactionRepository interface {
	// Create persists a new transaction. When the transaction has no ID yet,
	// the next collection ID is assigned before the append.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindByAccount retrieves all transactions of the account, in store
	// order, unfiltered by type or date.
	FindByAccount(ctx context.Context, accountID int64) ([]*entity.Transaction, error)

	// Update rewrites the stored row for the transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes the transaction by ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error
}
