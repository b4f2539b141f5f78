// Package middleware contains the HTTP authentication middleware chain.
package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"vita/config"
	deliverycontext "vita/internal/delivery/context"
	"vita/internal/domain/entity"
	"vita/internal/domain/service"
)

// identityStrategy attempts to resolve a request identity from one source.
// A nil result means unresolved; resolution moves on to the next strategy.
// Strategies never fail the request.
type identityStrategy func(c echo.Context) *entity.RequestAuthContext

// IdentityMiddleware resolves an optimistic, unverified identity for every
// request by walking an explicit ordered strategy list. It never rejects a
// request; rejection is the auth gate's job. The refresh cookie is handled
// by its own route and is deliberately absent from this chain.
type IdentityMiddleware struct {
	strategies []identityStrategy
	logger     *slog.Logger
}

// NewIdentityMiddleware builds the resolver with its strategy order fixed:
// bearer token first, then the guest fallback when enabled.
func NewIdentityMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *IdentityMiddleware {
	strategies := []identityStrategy{
		bearerTokenStrategy(tokenSvc),
	}
	if cfg.Guest.Enabled {
		strategies = append(strategies, guestFallbackStrategy(cfg.Guest.UserID))
	}

	return &IdentityMiddleware{
		strategies: strategies,
		logger:     logger,
	}
}

// Resolve runs the strategy chain and stores the first resolved identity in
// the request context. An unresolved request proceeds without identity.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		for _, strategy := range m.strategies {
			if auth := strategy(c); auth != nil {
				deliverycontext.SetAuthContext(c, auth)

				break
			}
		}

		return next(c)
	}
}

// bearerTokenStrategy resolves an identity from a Bearer access token.
// Missing, malformed or invalid tokens leave the request unresolved; the
// reason is indistinguishable to the client.
func bearerTokenStrategy(tokenSvc service.TokenService) identityStrategy {
	return func(c echo.Context) *entity.RequestAuthContext {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return nil
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return nil
		}

		identity, err := tokenSvc.Verify(tokenString, service.TokenKindAccess)
		if err != nil {
			return nil
		}

		return &entity.RequestAuthContext{
			UserID: identity.ID,
			Email:  identity.Email,
			Source: entity.IdentitySourceToken,
		}
	}
}

// guestFallbackStrategy resolves every remaining request to the configured
// guest account. It always succeeds, so it must stay last in the chain.
func guestFallbackStrategy(guestUserID uint64) identityStrategy {
	return func(_ echo.Context) *entity.RequestAuthContext {
		return &entity.RequestAuthContext{
			UserID: guestUserID,
			Source: entity.IdentitySourceGuest,
		}
	}
}
