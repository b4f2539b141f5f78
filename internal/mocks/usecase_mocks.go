package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vita/internal/domain/entity"
	"vita/internal/usecase"
)

// UserUsecase is a mock implementation of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	args := m.Called(ctx, refreshToken)
	if output, ok := args.Get(0).(*usecase.RefreshOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *UserUsecase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// ProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type ProfileUsecase struct {
	mock.Mock
}

func (m *ProfileUsecase) GetProfile(ctx context.Context, userID uint64) (*entity.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.HealthProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProfileUsecase) UpsertProfile(ctx context.Context, userID uint64, input usecase.UpsertProfileInput) (*entity.HealthProfile, error) {
	args := m.Called(ctx, userID, input)
	if profile, ok := args.Get(0).(*entity.HealthProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

// TrackingUsecase is a mock implementation of usecase.TrackingUsecase.
type TrackingUsecase struct {
	mock.Mock
}

func (m *TrackingUsecase) LogMeal(ctx context.Context, userID uint64, input usecase.LogMealInput) (*entity.MealLog, error) {
	args := m.Called(ctx, userID, input)
	if meal, ok := args.Get(0).(*entity.MealLog); ok {
		return meal, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TrackingUsecase) ListMeals(ctx context.Context, userID uint64, limit int) ([]*entity.MealLog, error) {
	args := m.Called(ctx, userID, limit)
	if meals, ok := args.Get(0).([]*entity.MealLog); ok {
		return meals, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TrackingUsecase) LogWorkout(ctx context.Context, userID uint64, input usecase.LogWorkoutInput) (*entity.WorkoutLog, error) {
	args := m.Called(ctx, userID, input)
	if workout, ok := args.Get(0).(*entity.WorkoutLog); ok {
		return workout, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TrackingUsecase) ListWorkouts(ctx context.Context, userID uint64, limit int) ([]*entity.WorkoutLog, error) {
	args := m.Called(ctx, userID, limit)
	if workouts, ok := args.Get(0).([]*entity.WorkoutLog); ok {
		return workouts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TrackingUsecase) SubmitFeedback(ctx context.Context, userID uint64, input usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	args := m.Called(ctx, userID, input)
	if feedback, ok := args.Get(0).(*entity.Feedback); ok {
		return feedback, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TrackingUsecase) ListFeedback(ctx context.Context, userID uint64, limit int) ([]*entity.Feedback, error) {
	args := m.Called(ctx, userID, limit)
	if items, ok := args.Get(0).([]*entity.Feedback); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

// AIUsecase is a mock implementation of usecase.AIUsecase.
type AIUsecase struct {
	mock.Mock
}

func (m *AIUsecase) AssembleContext(ctx context.Context, userID uint64) (*entity.AIContextSnapshot, error) {
	args := m.Called(ctx, userID)
	if snapshot, ok := args.Get(0).(*entity.AIContextSnapshot); ok {
		return snapshot, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AIUsecase) Suggest(ctx context.Context, userID uint64, input usecase.SuggestInput) (*usecase.SuggestOutput, error) {
	args := m.Called(ctx, userID, input)
	if output, ok := args.Get(0).(*usecase.SuggestOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}
