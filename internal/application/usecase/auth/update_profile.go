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

// UpdateProfileInput represents the input for a profile update. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	UserID   int64
	Name     *string
	Email    *string
	Password *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	guard           *adapter.LedgerGuard
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	guard *adapter.LedgerGuard,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		guard:           guard,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	var user *entity.User
	err := uc.guard.Write(func() error {
		found, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Email != nil {
			found.Email = *input.Email
		}
		if input.Password != nil {
			passwordHash, err := uc.passwordService.HashPassword(*input.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			found.PasswordHash = passwordHash
		}

		if err := uc.userRepo.Update(ctx, found); err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{
		User: user,
	}, nil
}
