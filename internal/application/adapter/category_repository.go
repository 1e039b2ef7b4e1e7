// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-ledger/core/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create persists a new category. When the category has no ID yet, the
	// next collection ID is assigned before the append.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindByName retrieves the first category whose name matches,
	// case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves every category in store order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update rewrites the stored row for the category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category by ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error
}
