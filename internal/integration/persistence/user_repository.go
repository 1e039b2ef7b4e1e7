package persistence

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	store adapter.RecordStore
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(store adapter.RecordStore) adapter.UserRepository {
	return &userRepository{
		store: store,
	}
}

// Create persists a new user, assigning the next collection ID when unset.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == 0 {
		id, err := r.store.NextID(ctx, adapter.KindUsers)
		if err != nil {
			return fmt.Errorf("assign user id: %w", err)
		}
		user.ID = id
	}
	return r.store.AppendRow(ctx, adapter.KindUsers, model.UserToRow(user))
}

// FindByID retrieves a user by its ID.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// FindByEmail retrieves the first user whose email matches exactly.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// Update rewrites the stored row for the user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	rows, err := r.store.LoadAll(ctx, adapter.KindUsers)
	if err != nil {
		return err
	}
	replaced := false
	for i, row := range rows {
		if matchID(row, user.ID) {
			rows[i] = model.UserToRow(user)
			replaced = true
			break
		}
	}
	if !replaced {
		return domainerror.ErrUserNotFound
	}
	return r.store.OverwriteAll(ctx, adapter.KindUsers, rows)
}

func (r *userRepository) loadAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.store.LoadAll(ctx, adapter.KindUsers)
	if err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		user, err := model.UserFromRow(row)
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeStorageFailure,
				"users collection is corrupt",
				err,
			)
		}
		users = append(users, user)
	}
	return users, nil
}
