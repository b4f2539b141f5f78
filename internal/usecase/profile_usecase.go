// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vita/internal/domain/entity"
)

// UpsertProfileInput defines the data for creating or replacing a health profile.
type UpsertProfileInput struct {
	Age                int
	HeightCm           float64
	WeightKg           float64
	Goal               string
	ActivityLevel      string
	DietaryPreferences string
}

// ProfileUsecase defines the interface for health profile operations.
type ProfileUsecase interface {
	// GetProfile returns the health profile for the user, or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID uint64) (*entity.HealthProfile, error)

	// UpsertProfile creates or replaces the user's health profile.
	UpsertProfile(ctx context.Context, userID uint64, input UpsertProfileInput) (*entity.HealthProfile, error)
}
