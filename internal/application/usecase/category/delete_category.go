// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID int64
}

// DeleteCategoryUseCase handles category deletion logic.
//
// Deleting an absent ID is a no-op, not an error. Transactions referencing
// the category keep their category id; there is no referential integrity.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *adapter.LedgerGuard
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *adapter.LedgerGuard) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	err := uc.guard.Write(func() error {
		return uc.categoryRepo.Delete(ctx, input.CategoryID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
