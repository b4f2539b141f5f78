// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	TrackingHandler *handler.TrackingHandler
	AIHandler       *handler.AIHandler

	IdentityMiddleware *middleware.IdentityMiddleware
	AuthGateMiddleware *middleware.AuthGateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	trackingHandler *handler.TrackingHandler
	aiHandler       *handler.AIHandler

	identity *middleware.IdentityMiddleware
	authGate *middleware.AuthGateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		trackingHandler: params.TrackingHandler,
		aiHandler:       params.AIHandler,
		identity:        params.IdentityMiddleware,
		authGate:        params.AuthGateMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Identity resolution runs here too so refresh and logout
	// see any bearer identity, but no gate: these routes manage sessions
	// rather than require them.
	authGroup := e.Group("/auth")
	authGroup.Use(r.identity.Resolve)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// API routes behind the identity chain and the store-backed auth gate.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.identity.Resolve)
	apiGroup.Use(r.authGate.Require)
	{
		apiGroup.GET("/users/me", r.userHandler.GetMe)
		apiGroup.PUT("/users/me", r.userHandler.UpdateMe)

		apiGroup.GET("/meals", r.trackingHandler.ListMeals)
		apiGroup.POST("/meals", r.trackingHandler.LogMeal)

		apiGroup.GET("/workouts", r.trackingHandler.ListWorkouts)
		apiGroup.POST("/workouts", r.trackingHandler.LogWorkout)

		apiGroup.GET("/feedback", r.trackingHandler.ListFeedback)
		apiGroup.POST("/feedback", r.trackingHandler.SubmitFeedback)

		apiGroup.POST("/ai/suggestions", r.aiHandler.Suggest)
	}
}
