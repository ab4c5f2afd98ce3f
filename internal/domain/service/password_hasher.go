// Package service defines interfaces for stateless domain logic that
// doesn't belong to a single entity.
package service

// PasswordHasher hashes and verifies account passwords. Implementations
// choose the algorithm; the domain only sees opaque digest strings.
type PasswordHasher interface {
	// Hash produces a salted digest of a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored digest.
	Check(password, digest string) bool
}
