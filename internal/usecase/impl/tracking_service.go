package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "vita/internal/delivery/context"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/usecase"
)

// defaultListLimit bounds history listings when the caller gives no limit.
const defaultListLimit = 20

// maxListLimit caps how much history a single request may page through.
const maxListLimit = 100

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	mealRepo     repository.MealLogRepository
	workoutRepo  repository.WorkoutLogRepository
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	MealRepo     repository.MealLogRepository
	WorkoutRepo  repository.WorkoutLogRepository
	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	return &trackingService{
		mealRepo:     params.MealRepo,
		workoutRepo:  params.WorkoutRepo,
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}

// LogMeal records a meal for the user.
func (srv *trackingService) LogMeal(ctx context.Context, userID uint64, input usecase.LogMealInput) (*entity.MealLog, error) {
	consumedAt := input.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}

	meal := &entity.MealLog{
		UserID:     userID,
		Name:       input.Name,
		Calories:   input.Calories,
		ProteinG:   input.ProteinG,
		CarbsG:     input.CarbsG,
		FatG:       input.FatG,
		ConsumedAt: consumedAt,
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		srv.log(ctx).Error("Failed to create meal log", slog.Uint64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create meal log")
	}

	return meal, nil
}

// ListMeals returns the user's most recent meals, newest first.
func (srv *trackingService) ListMeals(ctx context.Context, userID uint64, limit int) ([]*entity.MealLog, error) {
	meals, err := srv.mealRepo.ListRecentByUserID(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal logs")
	}

	return meals, nil
}

// LogWorkout records a workout for the user.
func (srv *trackingService) LogWorkout(ctx context.Context, userID uint64, input usecase.LogWorkoutInput) (*entity.WorkoutLog, error) {
	performedAt := input.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now()
	}

	workout := &entity.WorkoutLog{
		UserID:         userID,
		Activity:       input.Activity,
		DurationMin:    input.DurationMin,
		CaloriesBurned: input.CaloriesBurned,
		PerformedAt:    performedAt,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		srv.log(ctx).Error("Failed to create workout log", slog.Uint64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create workout log")
	}

	return workout, nil
}

// ListWorkouts returns the user's most recent workouts, newest first.
func (srv *trackingService) ListWorkouts(ctx context.Context, userID uint64, limit int) ([]*entity.WorkoutLog, error) {
	workouts, err := srv.workoutRepo.ListRecentByUserID(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workout logs")
	}

	return workouts, nil
}

// SubmitFeedback records the user's rating of a suggestion.
func (srv *trackingService) SubmitFeedback(ctx context.Context, userID uint64, input usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	if input.Kind != entity.SuggestionKindMeal && input.Kind != entity.SuggestionKindWorkout {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be meal or workout")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	feedback := &entity.Feedback{
		UserID:  userID,
		Kind:    input.Kind,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		srv.log(ctx).Error("Failed to create feedback", slog.Uint64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create feedback")
	}

	return feedback, nil
}

// ListFeedback returns the user's most recent feedback entries, newest first.
func (srv *trackingService) ListFeedback(ctx context.Context, userID uint64, limit int) ([]*entity.Feedback, error) {
	entries, err := srv.feedbackRepo.ListRecentByUserID(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return entries, nil
}
