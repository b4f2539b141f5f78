// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Identity is the minimal principal embedded in and extracted from a
// verified token. It is reconstructed per request and never persisted
// independently of the user record it represents.
type Identity struct {
	ID    uint64
	Email string
}

// IdentitySource records which resolution strategy produced a request's
// identity.
type IdentitySource string

const (
	// IdentitySourceToken means a verified bearer access token.
	IdentitySourceToken IdentitySource = "token"
	// IdentitySourceCookie means a verified refresh cookie (refresh flow only).
	IdentitySourceCookie IdentitySource = "cookie"
	// IdentitySourceGuest means the configured guest-mode fallback user.
	IdentitySourceGuest IdentitySource = "guest"
)

// RequestAuthContext is the transient per-request authentication state.
// The identity middleware fills it optimistically; the auth gate sets
// StoreVerified after confirming the user still exists. It is created at
// request entry and discarded at request exit.
type RequestAuthContext struct {
	UserID        uint64
	Email         string
	Source        IdentitySource
	StoreVerified bool
}

// Resolved reports whether any identity was attached to the request.
func (c *RequestAuthContext) Resolved() bool {
	return c != nil && c.UserID != 0
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires,
// without requiring credentials.
type RefreshToken struct {
	ID        uint64    // The unique ID for this refresh token record.
	UserID    uint64    // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw value is never stored.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created.
}
