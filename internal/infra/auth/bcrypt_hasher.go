package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"vita/config"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/service"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	minLength := defaultMinPasswordLength
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			minLength = cfg.Auth.MinPasswordLength
		}
	}
	return &bcryptHasher{cost: cost, minLength: minLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Compare checks a plaintext password against a bcrypt hash.
func (h *bcryptHasher) Compare(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domainerrors.ErrInvalidCredentials
	}
	return nil
}

// CheckStrength validates a plaintext password against the configured policy.
func (h *bcryptHasher) CheckStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at least " + strconv.Itoa(h.minLength) + " characters long")
	}
	if !hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if !hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if !hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	return nil
}

func hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
