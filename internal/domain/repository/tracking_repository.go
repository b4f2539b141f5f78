package repository

import (
	"context"

	"vita/internal/domain/entity"
)

// MealLogRepository manages meal log persistence.
type MealLogRepository interface {
	// Create persists a new meal log entry.
	Create(ctx context.Context, meal *entity.MealLog) error

	// ListRecentByUserID returns up to limit meal logs for the user,
	// newest first by consumed time.
	ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.MealLog, error)
}

// WorkoutLogRepository manages workout log persistence.
type WorkoutLogRepository interface {
	// Create persists a new workout log entry.
	Create(ctx context.Context, workout *entity.WorkoutLog) error

	// ListRecentByUserID returns up to limit workout logs for the user,
	// newest first by performed time.
	ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.WorkoutLog, error)
}

// SuggestionRepository manages generated suggestion persistence.
type SuggestionRepository interface {
	// Create persists a new suggestion record.
	Create(ctx context.Context, suggestion *entity.Suggestion) error
}

// FeedbackRepository manages suggestion feedback persistence.
type FeedbackRepository interface {
	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// ListRecentByUserID returns up to limit feedback entries for the user,
	// newest first by creation time.
	ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.Feedback, error)
}
