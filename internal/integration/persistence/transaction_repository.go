package persistence

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	store adapter.RecordStore
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(store adapter.RecordStore) adapter.TransactionRepository {
	return &transactionRepository{
		store: store,
	}
}

// Create persists a new transaction, assigning the next collection ID when unset.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.ID == 0 {
		id, err := r.store.NextID(ctx, adapter.KindTransactions)
		if err != nil {
			return fmt.Errorf("assign transaction id: %w", err)
		}
		transaction.ID = id
	}
	return r.store.AppendRow(ctx, adapter.KindTransactions, model.TransactionToRow(transaction))
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	transactions, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, transaction := range transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// FindByAccount retrieves all transactions of the account, in store order.
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.Transaction, error) {
	transactions, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]*entity.Transaction, 0)
	for _, transaction := range transactions {
		if transaction.AccountID == accountID {
			owned = append(owned, transaction)
		}
	}
	return owned, nil
}

// Update rewrites the stored row for the transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	rows, err := r.store.LoadAll(ctx, adapter.KindTransactions)
	if err != nil {
		return err
	}
	replaced := false
	for i, row := range rows {
		if matchID(row, transaction.ID) {
			rows[i] = model.TransactionToRow(transaction)
			replaced = true
			break
		}
	}
	if !replaced {
		return domainerror.ErrTransactionNotFound
	}
	return r.store.OverwriteAll(ctx, adapter.KindTransactions, rows)
}

// Delete removes the transaction by ID. Deleting an absent ID is a no-op.
func (r *transactionRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.store.LoadAll(ctx, adapter.KindTransactions)
	if err != nil {
		return err
	}
	kept := make([]adapter.Row, 0, len(rows))
	for _, row := range rows {
		if !matchID(row, id) {
			kept = append(kept, row)
		}
	}
	return r.store.OverwriteAll(ctx, adapter.KindTransactions, kept)
}

func (r *transactionRepository) loadAll(ctx context.Context) ([]*entity.Transaction, error) {
	rows, err := r.store.LoadAll(ctx, adapter.KindTransactions)
	if err != nil {
		return nil, err
	}
	transactions := make([]*entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction, err := model.TransactionFromRow(row)
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeStorageFailure,
				"transactions collection is corrupt",
				err,
			)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
