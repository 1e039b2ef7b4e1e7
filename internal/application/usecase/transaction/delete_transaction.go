// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID int64
}

// DeleteTransactionUseCase handles transaction deletion logic. Deleting an
// absent ID is a no-op, not an error.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	guard           *adapter.LedgerGuard
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, guard *adapter.LedgerGuard) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	err := uc.guard.Write(func() error {
		return uc.transactionRepo.Delete(ctx, input.TransactionID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
