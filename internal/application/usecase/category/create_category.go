// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Kind entity.CategoryKind
	Icon string // optional
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic. The kind is
// validated here, at construction, not deferred to later edits.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *adapter.LedgerGuard
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *adapter.LedgerGuard) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !input.Kind.Valid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'fixed' or 'variable'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	category := entity.NewCategory(input.Name, input.Kind, input.Icon)
	err := uc.guard.Write(func() error {
		return uc.categoryRepo.Create(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
