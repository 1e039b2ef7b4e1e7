// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing an account's
// transactions.
type ListTransactionsInput struct {
	AccountID int64
}

// ListTransactionsOutput represents the output of the listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists all transactions of an account in store
// order, unfiltered by type or date. Callers sort or filter further.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	guard           *adapter.LedgerGuard
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, guard *adapter.LedgerGuard) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var transactions []*entity.Transaction
	err := uc.guard.Read(func() error {
		found, err := uc.transactionRepo.FindByAccount(ctx, input.AccountID)
		if err != nil {
			return err
		}
		transactions = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
	}, nil
}
