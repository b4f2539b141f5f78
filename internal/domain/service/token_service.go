package service

import (
	"time"

	"vita/internal/domain/entity"
)

// TokenKind selects which secret and lifetime a token is issued and
// verified under. Access and refresh secrets are distinct and never
// interchangeable.
type TokenKind string

const (
	// TokenKindAccess is the short-lived bearer token sent in the
	// Authorization header.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived token delivered via the
	// http-only refresh cookie.
	TokenKindRefresh TokenKind = "refresh"
)

// TokenService issues and verifies signed, time-limited tokens.
// Implementations are stateless; all state lives in the token itself.
type TokenService interface {
	// Issue produces a signed token embedding the identity plus standard
	// expiry claims, under the kind-appropriate secret and TTL.
	Issue(identity entity.Identity, kind TokenKind) (string, error)

	// Verify validates signature and expiry under the kind-appropriate
	// secret and returns the embedded identity. Any failure (malformed,
	// tampered, expired, wrong kind) surfaces as the same invalid-token
	// error; callers must not leak which check failed.
	Verify(token string, kind TokenKind) (*entity.Identity, error)

	// HashToken returns the hash under which a refresh token is persisted.
	HashToken(token string) string

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
