package context

import (
	"context"

	"github.com/labstack/echo/v4"

	"vita/internal/domain/entity"
)

// KeyAuth is the key for storing the resolved request auth context.
const KeyAuth ContextKey = "auth_context"

// GetAuthContext extracts the request auth context from echo.Context.
// Returns nil when no identity was resolved for the request.
func GetAuthContext(c echo.Context) *entity.RequestAuthContext {
	val := c.Get(string(KeyAuth))
	if auth, ok := val.(*entity.RequestAuthContext); ok {
		return auth
	}

	return nil
}

// SetAuthContext stores the request auth context in echo.Context and
// mirrors it into the request's context.Context for downstream layers.
func SetAuthContext(c echo.Context, auth *entity.RequestAuthContext) {
	c.Set(string(KeyAuth), auth)
	req := c.Request()
	c.SetRequest(req.WithContext(WithAuthContext(req.Context(), auth)))
}

// GetAuthContextFromContext extracts the request auth context from a
// standard context.Context. Returns nil when absent.
func GetAuthContextFromContext(ctx context.Context) *entity.RequestAuthContext {
	if auth, ok := ctx.Value(KeyAuth).(*entity.RequestAuthContext); ok {
		return auth
	}

	return nil
}

// WithAuthContext returns a new context carrying the auth context.
func WithAuthContext(ctx context.Context, auth *entity.RequestAuthContext) context.Context {
	return context.WithValue(ctx, KeyAuth, auth)
}
