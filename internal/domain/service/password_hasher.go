package service

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a one-way hash of the plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored
	// hash. A mismatch returns an error.
	Compare(hash string, password string) error

	// CheckStrength validates the plaintext password against the
	// configured policy before hashing.
	CheckStrength(password string) error
}
