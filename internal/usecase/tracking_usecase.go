// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vita/internal/domain/entity"
)

// LogMealInput defines the data for recording a meal.
type LogMealInput struct {
	Name       string
	Calories   int
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	ConsumedAt time.Time
}

// LogWorkoutInput defines the data for recording a workout.
type LogWorkoutInput struct {
	Activity       string
	DurationMin    int
	CaloriesBurned int
	PerformedAt    time.Time
}

// SubmitFeedbackInput defines the data for rating a suggestion.
type SubmitFeedbackInput struct {
	Kind    entity.SuggestionKind
	Rating  int
	Comment string
}

// TrackingUsecase defines the interface for meal, workout and feedback tracking.
type TrackingUsecase interface {
	// LogMeal records a meal for the user.
	LogMeal(ctx context.Context, userID uint64, input LogMealInput) (*entity.MealLog, error)

	// ListMeals returns the user's most recent meals, newest first.
	ListMeals(ctx context.Context, userID uint64, limit int) ([]*entity.MealLog, error)

	// LogWorkout records a workout for the user.
	LogWorkout(ctx context.Context, userID uint64, input LogWorkoutInput) (*entity.WorkoutLog, error)

	// ListWorkouts returns the user's most recent workouts, newest first.
	ListWorkouts(ctx context.Context, userID uint64, limit int) ([]*entity.WorkoutLog, error)

	// SubmitFeedback records the user's rating of a suggestion.
	SubmitFeedback(ctx context.Context, userID uint64, input SubmitFeedbackInput) (*entity.Feedback, error)

	// ListFeedback returns the user's most recent feedback entries, newest first.
	ListFeedback(ctx context.Context, userID uint64, limit int) ([]*entity.Feedback, error)
}
