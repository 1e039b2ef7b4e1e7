// Package account contains account-related use cases: provisioning,
// balance projection, deposits and expenses.
package account

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// GetOrCreateAccountInput represents the input for account provisioning.
type GetOrCreateAccountInput struct {
	UserID int64
}

// GetOrCreateAccountOutput represents the output of account provisioning.
type GetOrCreateAccountOutput struct {
	Account *entity.Account
	Created bool
}

// GetOrCreateAccountUseCase returns the user's first account, provisioning a
// checking account when the user has none yet.
type GetOrCreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	clock       adapter.Clock
	guard       *adapter.LedgerGuard
}

// NewGetOrCreateAccountUseCase creates a new GetOrCreateAccountUseCase instance.
func NewGetOrCreateAccountUseCase(
	accountRepo adapter.AccountRepository,
	clock adapter.Clock,
	guard *adapter.LedgerGuard,
) *GetOrCreateAccountUseCase {
	return &GetOrCreateAccountUseCase{
		accountRepo: accountRepo,
		clock:       clock,
		guard:       guard,
	}
}

// Execute returns the first account in store order, or the newly provisioned
// one.
func (uc *GetOrCreateAccountUseCase) Execute(ctx context.Context, input GetOrCreateAccountInput) (*GetOrCreateAccountOutput, error) {
	var account *entity.Account
	var created bool
	err := uc.guard.Write(func() error {
		accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return err
		}
		if len(accounts) > 0 {
			account = accounts[0]
			return nil
		}

		account = entity.NewAccount(input.UserID, entity.AccountKindChecking, uc.clock.Now())
		created = true
		return uc.accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision account: %w", err)
	}

	return &GetOrCreateAccountOutput{
		Account: account,
		Created: created,
	}, nil
}
