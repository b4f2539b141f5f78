package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "vita/internal/delivery/context"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
)

// AuthGateMiddleware fails closed on protected route groups. A request is
// admitted only when the optimistically resolved identity is confirmed to
// exist in the user store. An unreachable store is a 500, never a 401; the
// two conditions must stay distinguishable.
type AuthGateMiddleware struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthGateMiddleware is the constructor for AuthGateMiddleware.
func NewAuthGateMiddleware(userRepo repository.UserRepository, logger *slog.Logger) *AuthGateMiddleware {
	return &AuthGateMiddleware{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Require admits the request only with a store-confirmed identity.
func (m *AuthGateMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := deliverycontext.GetAuthContext(c)
		if auth == nil || !auth.Resolved() {
			return domainerrors.ErrUnauthorized
		}

		ctx := c.Request().Context()

		identity, err := m.userRepo.FindCredentialsByID(ctx, auth.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// A valid token for a deleted account is still unauthorized.
				return domainerrors.ErrUnauthorized
			}

			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Auth gate store lookup failed",
				slog.Uint64("userID", auth.UserID),
				slog.Any("error", err))

			return domainerrors.NewDatabaseExecuteError(err, "auth gate lookup failed")
		}

		// Merge the store-confirmed identity back into the auth context.
		auth.UserID = identity.ID
		auth.Email = identity.Email
		auth.StoreVerified = true
		deliverycontext.SetAuthContext(c, auth)

		return next(c)
	}
}
