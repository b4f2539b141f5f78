package repository

import (
	"context"
	"errors"

	"vita/internal/domain/entity"
)

// ErrProfileNotFound is returned when a user has no health profile row.
var ErrProfileNotFound = errors.New("health profile not found")

// HealthProfileRepository manages health profile persistence.
type HealthProfileRepository interface {
	// FindByUserID retrieves the health profile owned by the given user.
	// Returns ErrProfileNotFound when the user has not completed onboarding.
	FindByUserID(ctx context.Context, userID uint64) (*entity.HealthProfile, error)

	// Upsert creates the profile row if absent, otherwise replaces it.
	Upsert(ctx context.Context, profile *entity.HealthProfile) error
}
