// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-ledger/core/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// Accounts are never deleted.
type AccountRepository interface {
	// Create persists a new account. When the account has no ID yet, the
	// next collection ID is assigned before the append.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByUser retrieves all accounts owned by the user, in store order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Account, error)
}
