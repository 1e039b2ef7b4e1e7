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

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	CategoryID int64
	Name       *string
	Kind       *entity.CategoryKind
	Icon       *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *adapter.LedgerGuard
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *adapter.LedgerGuard) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if input.Kind != nil && !input.Kind.Valid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'fixed' or 'variable'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	var category *entity.Category
	err := uc.guard.Write(func() error {
		found, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Kind != nil {
			found.Kind = *input.Kind
		}
		if input.Icon != nil {
			found.Icon = *input.Icon
		}

		if err := uc.categoryRepo.Update(ctx, found); err != nil {
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
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
