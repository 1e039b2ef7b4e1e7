package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	store adapter.RecordStore
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(store adapter.RecordStore) adapter.CategoryRepository {
	return &categoryRepository{
		store: store,
	}
}

// Create persists a new category, assigning the next collection ID when unset.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == 0 {
		id, err := r.store.NextID(ctx, adapter.KindCategories)
		if err != nil {
			return fmt.Errorf("assign category id: %w", err)
		}
		category.ID = id
	}
	return r.store.AppendRow(ctx, adapter.KindCategories, model.CategoryToRow(category))
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	categories, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// FindByName retrieves the first category whose name matches, case-insensitively.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	categories, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

// FindAll retrieves every category in store order.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.store.LoadAll(ctx, adapter.KindCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		category, err := model.CategoryFromRow(row)
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeStorageFailure,
				"categories collection is corrupt",
				err,
			)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Update rewrites the stored row for the category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	rows, err := r.store.LoadAll(ctx, adapter.KindCategories)
	if err != nil {
		return err
	}
	replaced := false
	for i, row := range rows {
		if matchID(row, category.ID) {
			rows[i] = model.CategoryToRow(category)
			replaced = true
			break
		}
	}
	if !replaced {
		return domainerror.ErrCategoryNotFound
	}
	return r.store.OverwriteAll(ctx, adapter.KindCategories, rows)
}

// Delete removes the category by ID. Deleting an absent ID is a no-op.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.store.LoadAll(ctx, adapter.KindCategories)
	if err != nil {
		return err
	}
	kept := make([]adapter.Row, 0, len(rows))
	for _, row := range rows {
		if !matchID(row, id) {
			kept = append(kept, row)
		}
	}
	return r.store.OverwriteAll(ctx, adapter.KindCategories, kept)
}
