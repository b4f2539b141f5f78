package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vita/config"
	domainerrors "vita/internal/domain/errors"
)

func hasherConfig(cost, minLength int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        cost,
			MinPasswordLength: minLength,
		},
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig(bcrypt.MinCost, 8))

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.NoError(t, hasher.Compare(hash, password))
}

func TestBcryptHasher_CompareMismatch(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig(bcrypt.MinCost, 8))

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	err = hasher.Compare(hash, "WrongPassword123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = hasher.Compare(hash, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = hasher.Compare("invalid_hash", "StrongPass123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestBcryptHasher_CheckStrength(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig(bcrypt.MinCost, 8))

	valid := []string{
		"StrongPass123",
		"MySecurePass1",
		"Valid2024phrase",
	}
	for _, password := range valid {
		assert.NoError(t, hasher.CheckStrength(password), "expected valid password: %s", password)
	}

	cases := []struct {
		password string
		detail   string
	}{
		{"Sh0rt", "at least 8 characters"},
		{"alllowercase1", "uppercase letter"},
		{"ALLUPPERCASE1", "lowercase letter"},
		{"NoNumbersHere", "number"},
		{"", "at least 8 characters"},
	}
	for _, tc := range cases {
		err := hasher.CheckStrength(tc.password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength, "password: %q", tc.password)

		// The generic message stays uniform; the failed requirement is
		// carried in the error details.
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr, "password: %q", tc.password)
		assert.Contains(t, appErr.Details(), tc.detail)
	}
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasher(hasherConfig(customCost, 8))

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_DefaultsWithoutAuthConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Falls back to the default minimum length policy.
	err := hasher.CheckStrength("Sh0rt")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.NoError(t, hasher.CheckStrength("LongEnough1x"))
}
