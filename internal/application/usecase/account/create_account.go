// Package account contains account-related use cases: provisioning,
// balance projection, deposits and expenses.
package account

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// CreateAccountInput represents the input for explicit account creation.
type CreateAccountInput struct {
	UserID int64
	Kind   string // optional, defaults to checking
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase creates an additional account for a user.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	clock       adapter.Clock
	guard       *adapter.LedgerGuard
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(
	accountRepo adapter.AccountRepository,
	clock adapter.Clock,
	guard *adapter.LedgerGuard,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		clock:       clock,
		guard:       guard,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	kind := input.Kind
	if kind == "" {
		kind = entity.AccountKindChecking
	}

	account := entity.NewAccount(input.UserID, kind, uc.clock.Now())
	err := uc.guard.Write(func() error {
		return uc.accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
