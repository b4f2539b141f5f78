// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vita/config"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
	}, nil
}

// Issue creates a signed token of the given kind for the identity.
func (s *jwtService) Issue(identity entity.Identity, kind service.TokenKind) (string, error) {
	secret, ttl, err := s.kindParams(kind)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(identity.ID, 10),
		"email": identity.Email,
		"type":  string(kind),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token of the given kind and extracts the identity.
// Every failure mode collapses into ErrInvalidToken so callers cannot
// distinguish a tampered token from an expired one.
func (s *jwtService) Verify(tokenString string, kind service.TokenKind) (*entity.Identity, error) {
	secret, _, err := s.kindParams(kind)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	// Reject a token signed for the other kind even when secrets happen
	// to match, such as in misconfigured environments.
	if typ, _ := claims["type"].(string); typ != string(kind) {
		return nil, domainerrors.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &entity.Identity{ID: id, Email: email}, nil
}

// HashToken returns the hex-encoded SHA-256 digest under which refresh
// tokens are stored, so a database leak never exposes usable tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) kindParams(kind service.TokenKind) (string, time.Duration, error) {
	switch kind {
	case service.TokenKindAccess:
		return s.accessSecret, s.accessTTL, nil
	case service.TokenKindRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return "", 0, errors.New("unknown token kind")
	}
}
