package persistence

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	store adapter.RecordStore
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(store adapter.RecordStore) adapter.AccountRepository {
	return &accountRepository{
		store: store,
	}
}

// Create persists a new account, assigning the next collection ID when unset.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == 0 {
		id, err := r.store.NextID(ctx, adapter.KindAccounts)
		if err != nil {
			return fmt.Errorf("assign account id: %w", err)
		}
		account.ID = id
	}
	return r.store.AppendRow(ctx, adapter.KindAccounts, model.AccountToRow(account))
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	accounts, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

// FindByUser retrieves all accounts owned by the user, in store order.
func (r *accountRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Account, error) {
	accounts, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]*entity.Account, 0)
	for _, account := range accounts {
		if account.OwnerUserID == userID {
			owned = append(owned, account)
		}
	}
	return owned, nil
}

func (r *accountRepository) loadAll(ctx context.Context) ([]*entity.Account, error) {
	rows, err := r.store.LoadAll(ctx, adapter.KindAccounts)
	if err != nil {
		return nil, err
	}
	accounts := make([]*entity.Account, 0, len(rows))
	for _, row := range rows {
		account, err := model.AccountFromRow(row)
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeStorageFailure,
				"accounts collection is corrupt",
				err,
			)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
