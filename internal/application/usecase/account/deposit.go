// Package account contains account-related use cases: provisioning,
// balance projection, deposits and expenses.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
)

// DefaultDepositDescription is used when a deposit carries no description.
const DefaultDepositDescription = "Deposit"

// DepositInput represents the input for a deposit.
type DepositInput struct {
	AccountID   int64
	CategoryID  int64
	Amount      decimal.Decimal
	Description string // optional, defaults to DefaultDepositDescription
}

// DepositOutput represents the output of a deposit.
type DepositOutput struct {
	Transaction *entity.Transaction
}

// DepositUseCase records money received on an account. Transactions are
// only ever created through this use case and RecordExpenseUseCase, never
// assembled by callers.
type DepositUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	guard           *adapter.LedgerGuard
}

// NewDepositUseCase creates a new DepositUseCase instance.
func NewDepositUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	guard *adapter.LedgerGuard,
) *DepositUseCase {
	return &DepositUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
		guard:           guard,
	}
}

// Execute performs the deposit, creating and persisting an entry transaction.
func (uc *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"deposit amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	description := input.Description
	if description == "" {
		description = DefaultDepositDescription
	}

	var transaction *entity.Transaction
	err := uc.guard.Write(func() error {
		account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			return err
		}

		transaction = entity.NewTransaction(
			account.ID,
			input.CategoryID,
			entity.TransactionTypeEntry,
			input.Amount,
			description,
			uc.clock.Now(),
		)
		return uc.transactionRepo.Create(ctx, transaction)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	return &DepositOutput{
		Transaction: transaction,
	}, nil
}
