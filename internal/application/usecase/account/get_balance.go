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

// GetBalanceInput represents the input for a balance query.
type GetBalanceInput struct {
	AccountID int64
}

// GetBalanceOutput represents the output of a balance query.
type GetBalanceOutput struct {
	Balance decimal.Decimal
}

// GetBalanceUseCase computes an account's derived balance.
//
// The balance is never stored: every query folds the account's transaction
// log, sum of entries minus sum of exits. This is a full scan of the
// transactions collection per call, which is the scaling bottleneck of the
// system, acceptable at file-sized data.
type GetBalanceUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	guard           *adapter.LedgerGuard
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	guard *adapter.LedgerGuard,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute computes the balance. An account without transactions has
// balance zero.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	var balance decimal.Decimal
	err := uc.guard.Read(func() error {
		if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
			return err
		}
		transactions, err := uc.transactionRepo.FindByAccount(ctx, input.AccountID)
		if err != nil {
			return err
		}
		balance = balanceOf(transactions)
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	return &GetBalanceOutput{
		Balance: balance,
	}, nil
}

// balanceOf folds a transaction log into a balance.
func balanceOf(transactions []*entity.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, transaction := range transactions {
		switch transaction.Type {
		case entity.TransactionTypeEntry:
			balance = balance.Add(transaction.Amount)
		case entity.TransactionTypeExit:
			balance = balance.Sub(transaction.Amount)
		}
	}
	return balance
}
