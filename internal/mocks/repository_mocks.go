// Package mocks provides hand-maintained testify mocks for the domain
// repository and service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindCredentialsByID(ctx context.Context, id uint64) (*entity.Identity, error) {
	args := m.Called(ctx, id)
	if identity, ok := args.Get(0).(*entity.Identity); ok {
		return identity, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// HealthProfileRepository is a mock implementation of repository.HealthProfileRepository.
type HealthProfileRepository struct {
	mock.Mock
}

func (m *HealthProfileRepository) FindByUserID(ctx context.Context, userID uint64) (*entity.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.HealthProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *HealthProfileRepository) Upsert(ctx context.Context, profile *entity.HealthProfile) error {
	return m.Called(ctx, profile).Error(0)
}

// MealLogRepository is a mock implementation of repository.MealLogRepository.
type MealLogRepository struct {
	mock.Mock
}

func (m *MealLogRepository) Create(ctx context.Context, meal *entity.MealLog) error {
	return m.Called(ctx, meal).Error(0)
}

func (m *MealLogRepository) ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.MealLog, error) {
	args := m.Called(ctx, userID, limit)
	if meals, ok := args.Get(0).([]*entity.MealLog); ok {
		return meals, args.Error(1)
	}

	return nil, args.Error(1)
}

// WorkoutLogRepository is a mock implementation of repository.WorkoutLogRepository.
type WorkoutLogRepository struct {
	mock.Mock
}

func (m *WorkoutLogRepository) Create(ctx context.Context, workout *entity.WorkoutLog) error {
	return m.Called(ctx, workout).Error(0)
}

func (m *WorkoutLogRepository) ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.WorkoutLog, error) {
	args := m.Called(ctx, userID, limit)
	if workouts, ok := args.Get(0).([]*entity.WorkoutLog); ok {
		return workouts, args.Error(1)
	}

	return nil, args.Error(1)
}

// FeedbackRepository is a mock implementation of repository.FeedbackRepository.
type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *FeedbackRepository) ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.Feedback, error) {
	args := m.Called(ctx, userID, limit)
	if entries, ok := args.Get(0).([]*entity.Feedback); ok {
		return entries, args.Error(1)
	}

	return nil, args.Error(1)
}

// SuggestionRepository is a mock implementation of repository.SuggestionRepository.
type SuggestionRepository struct {
	mock.Mock
}

func (m *SuggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	return m.Called(ctx, suggestion).Error(0)
}

// RefreshTokenRepository is a mock implementation of repository.RefreshTokenRepository.
type RefreshTokenRepository struct {
	mock.Mock
}

func (m *RefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *RefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token, ok := args.Get(0).(*entity.RefreshToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *RefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *RefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *RefreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock

	UserRepoMock         *UserRepository
	ProfileRepoMock      *HealthProfileRepository
	RefreshTokenRepoMock *RefreshTokenRepository
}

func (m *RepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.UserRepoMock
}

func (m *RepositoryFactory) NewHealthProfileRepository() repository.HealthProfileRepository {
	return m.ProfileRepoMock
}

func (m *RepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return m.RefreshTokenRepoMock
}

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the callback against the embedded factory so repository
// expectations registered on the factory's mocks are exercised.
type TransactionManager struct {
	mock.Mock

	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}
