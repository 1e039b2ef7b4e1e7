// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
)

// FindCategoryInput represents the input for a category lookup by name.
type FindCategoryInput struct {
	Name string
}

// FindCategoryOutput represents the output of a category lookup by name.
type FindCategoryOutput struct {
	Category *entity.Category
}

// FindCategoryUseCase retrieves the first category whose name matches,
// case-insensitively.
type FindCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *adapter.LedgerGuard
}

// NewFindCategoryUseCase creates a new FindCategoryUseCase instance.
func NewFindCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *adapter.LedgerGuard) *FindCategoryUseCase {
	return &FindCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the lookup.
func (uc *FindCategoryUseCase) Execute(ctx context.Context, input FindCategoryInput) (*FindCategoryOutput, error) {
	var category *entity.Category
	err := uc.guard.Read(func() error {
		found, err := uc.categoryRepo.FindByName(ctx, input.Name)
		if err != nil {
			return err
		}
		category = found
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &FindCategoryOutput{
		Category: category,
	}, nil
}
