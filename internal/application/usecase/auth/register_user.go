// Package auth contains user registration and authentication use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	clock           adapter.Clock
	guard           *adapter.LedgerGuard
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	clock adapter.Clock,
	guard *adapter.LedgerGuard,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		clock:           clock,
		guard:           guard,
	}
}

// Execute performs the user registration.
//
// Duplicate emails are not rejected; email lookups return the first match in
// store order.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Name, input.Email, passwordHash, uc.clock.Now())

	err = uc.guard.Write(func() error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{
		User: user,
	}, nil
}
