// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// DefaultBcryptCost is the cost factor used when the configuration does not
// set one.
const DefaultBcryptCost = 12

// passwordService implements the adapter.PasswordService interface with
// salted bcrypt hashes. Stored secrets are never compared in plain text.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new password service instance. A cost outside
// bcrypt's valid range falls back to DefaultBcryptCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword reports whether the plain text password matches the hash.
func (s *passwordService) VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
