package service

// PasswordHasher hashes and verifies the operator password.
type PasswordHasher interface {
	// Hash returns a salted hash suitable for operator.passwordHash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. An empty hash never matches.
	Check(password, hash string) bool
}
