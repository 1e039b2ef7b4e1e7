// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-ledger/core/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user. When the user has no ID yet, the next
	// collection ID is assigned before the append.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves the first user whose email matches exactly
	// (case-sensitive, store order).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update rewrites the stored row for the user.
	Update(ctx context.Context, user *entity.User) error
}
