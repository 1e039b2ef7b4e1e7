// Package auth contains user registration and authentication use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
)

// LoginUserInput represents the input for user authentication.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user authentication.
type LoginUserOutput struct {
	User          *entity.User
	Authenticated bool
}

// LoginUserUseCase handles user authentication logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	guard           *adapter.LedgerGuard
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	guard *adapter.LedgerGuard,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		guard:           guard,
	}
}

// Execute looks the user up by email (exact, case-sensitive) and checks the
// credential. A wrong password is not an error: Authenticated is false and
// the caller decides how to react.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	var user *entity.User
	err := uc.guard.Read(func() error {
		found, err := uc.userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeUserNotFound,
				"no user registered with this email",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &LoginUserOutput{
		User:          user,
		Authenticated: uc.passwordService.VerifyPassword(user.PasswordHash, input.Password),
	}, nil
}
