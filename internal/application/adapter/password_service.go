// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
// The behavioral contract is "credential matches stored secret": callers only
// ever observe the boolean, never the hash scheme.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether the plain text password matches the
	// stored hash.
	VerifyPassword(hashedPassword, password string) bool
}
