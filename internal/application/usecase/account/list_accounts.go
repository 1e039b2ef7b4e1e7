// Package account contains account-related use cases: provisioning,
// balance projection, deposits and expenses.
package account

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// ListAccountsInput represents the input for listing a user's accounts.
type ListAccountsInput struct {
	UserID int64
}

// ListAccountsOutput represents the output of listing a user's accounts.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase lists all accounts owned by a user, in store order.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
	guard       *adapter.LedgerGuard
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository, guard *adapter.LedgerGuard) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		guard:       guard,
	}
}

// Execute performs the listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	var accounts []*entity.Account
	err := uc.guard.Read(func() error {
		found, err := uc.accountRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return err
		}
		accounts = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsOutput{
		Accounts: accounts,
	}, nil
}
