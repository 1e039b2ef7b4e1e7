// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged; presence is the pointer, never a sentinel
// value, so a category id cannot be silently dropped by being zero.
type UpdateTransactionInput struct {
	TransactionID int64
	CategoryID    *int64
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Description   *string
	Timestamp     *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	guard           *adapter.LedgerGuard
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, guard *adapter.LedgerGuard) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.CategoryID != nil && *input.CategoryID <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidCategoryID,
			"category id must be positive",
			domainerror.ErrInvalidCategoryID,
		)
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'entry' or 'exit'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.Amount != nil && input.Amount.Sign() <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	var transaction *entity.Transaction
	err := uc.guard.Write(func() error {
		found, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
		if err != nil {
			return err
		}

		if input.CategoryID != nil {
			found.CategoryID = *input.CategoryID
		}
		if input.Type != nil {
			found.Type = *input.Type
		}
		if input.Amount != nil {
			found.Amount = *input.Amount
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Timestamp != nil {
			found.Timestamp = *input.Timestamp
		}

		if err := uc.transactionRepo.Update(ctx, found); err != nil {
			return err
		}
		transaction = found
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
