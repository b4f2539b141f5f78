// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vita/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user and a freshly minted token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RefreshOutput returns the result of a refresh-token exchange.
type RefreshOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a user account and opens a first session.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair,
	// rotating the stored session record.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout ends the session owning the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetUser retrieves a user by ID with their profile attached.
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)
}
