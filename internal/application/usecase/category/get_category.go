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

// GetCategoryInput represents the input for a category lookup by ID.
type GetCategoryInput struct {
	CategoryID int64
}

// GetCategoryOutput represents the output of a category lookup.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase retrieves one category by ID.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *adapter.LedgerGuard
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *adapter.LedgerGuard) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the lookup.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	var category *entity.Category
	err := uc.guard.Read(func() error {
		found, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
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

	return &GetCategoryOutput{
		Category: category,
	}, nil
}
