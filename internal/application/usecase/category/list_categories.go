// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing all categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase lists every category, in store order.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *adapter.LedgerGuard
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, guard *adapter.LedgerGuard) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	var categories []*entity.Category
	err := uc.guard.Read(func() error {
		found, err := uc.categoryRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		categories = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
