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

// DefaultExpenseDescription is used when an expense carries no description.
const DefaultExpenseDescription = "Expense"

// RecordExpenseInput represents the input for an expense.
type RecordExpenseInput struct {
	AccountID   int64
	CategoryID  int64
	Amount      decimal.Decimal
	Description string // optional, defaults to DefaultExpenseDescription
}

// RecordExpenseOutput represents the output of an expense.
type RecordExpenseOutput struct {
	Transaction *entity.Transaction
}

// RecordExpenseUseCase records money spent from an account. The balance
// check and the write happen under the same exclusive lock, so an account
// can never be driven negative by concurrent expenses.
type RecordExpenseUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	guard           *adapter.LedgerGuard
}

// NewRecordExpenseUseCase creates a new RecordExpenseUseCase instance.
func NewRecordExpenseUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	guard *adapter.LedgerGuard,
) *RecordExpenseUseCase {
	return &RecordExpenseUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
		guard:           guard,
	}
}

// Execute performs the expense, creating and persisting an exit transaction.
// An amount exceeding the balance computed immediately before the write is
// rejected with an insufficient funds error and nothing is persisted.
func (uc *RecordExpenseUseCase) Execute(ctx context.Context, input RecordExpenseInput) (*RecordExpenseOutput, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	description := input.Description
	if description == "" {
		description = DefaultExpenseDescription
	}

	var transaction *entity.Transaction
	err := uc.guard.Write(func() error {
		account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			return err
		}

		transactions, err := uc.transactionRepo.FindByAccount(ctx, account.ID)
		if err != nil {
			return err
		}
		if input.Amount.GreaterThan(balanceOf(transactions)) {
			return domainerror.ErrInsufficientFunds
		}

		transaction = entity.NewTransaction(
			account.ID,
			input.CategoryID,
			entity.TransactionTypeExit,
			input.Amount,
			description,
			uc.clock.Now(),
		)
		return uc.transactionRepo.Create(ctx, transaction)
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrAccountNotFound):
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		case errors.Is(err, domainerror.ErrInsufficientFunds):
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInsufficientFunds,
				"expense exceeds the account balance",
				domainerror.ErrInsufficientFunds,
			)
		}
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	return &RecordExpenseOutput{
		Transaction: transaction,
	}, nil
}
