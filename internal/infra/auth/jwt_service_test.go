package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vita/config"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/service"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Token.AccessTTL = 30 * time.Minute
	cfg.Token.RefreshTTL = 7 * 24 * time.Hour
	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	identity := entity.Identity{ID: 42, Email: "user@example.com"}

	accessToken, err := jwtService.Issue(identity, service.TokenKindAccess)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.Issue(identity, service.TokenKindRefresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	// Verify access token round-trips the identity
	got, err := jwtService.Verify(accessToken, service.TokenKindAccess)
	assert.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, identity.Email, got.Email)

	// Verify refresh token round-trips the identity
	got, err = jwtService.Verify(refreshToken, service.TokenKindRefresh)
	assert.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
}

func TestJWTService_KindConfusionRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	identity := entity.Identity{ID: 7, Email: "user@example.com"}

	accessToken, err := jwtService.Issue(identity, service.TokenKindAccess)
	assert.NoError(t, err)
	refreshToken, err := jwtService.Issue(identity, service.TokenKindRefresh)
	assert.NoError(t, err)

	// An access token must never pass refresh verification, and vice versa.
	got, err := jwtService.Verify(accessToken, service.TokenKindRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, got)

	got, err = jwtService.Verify(refreshToken, service.TokenKindAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, got)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"not a jwt", "clearly-not-a-jwt-token-format"},
		{"empty", ""},
		{"tampered", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiI0MiJ9.tampered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jwtService.Verify(tc.token, service.TokenKindAccess)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			assert.Nil(t, got)
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Token.AccessTTL = -time.Minute

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.Issue(entity.Identity{ID: 1}, service.TokenKindAccess)
	assert.NoError(t, err)

	got, err := jwtService.Verify(token, service.TokenKindAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, got)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	other := testConfig()
	other.SecretKey.Access = "a_completely_different_access_secret_value"
	otherService, err := NewJWTService(other)
	assert.NoError(t, err)

	token, err := jwtService.Issue(entity.Identity{ID: 9}, service.TokenKindAccess)
	assert.NoError(t, err)

	got, err := otherService.Verify(token, service.TokenKindAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, got)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-refresh-token")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "some-refresh-token", hash)
	assert.Len(t, hash, 64)

	// Deterministic for lookup, distinct per input.
	assert.Equal(t, hash, jwtService.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-token"))
}

func TestJWTService_Durations(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	assert.Equal(t, 30*time.Minute, jwtService.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtService.RefreshTokenDuration())
}
