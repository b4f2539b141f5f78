package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"
)

// workoutLogRepository implements the domain.WorkoutLogRepository interface using GORM.
type workoutLogRepository struct {
	db *gorm.DB
}

// NewWorkoutLogRepository is the constructor for workoutLogRepository.
func NewWorkoutLogRepository(db *gorm.DB) repository.WorkoutLogRepository {
	return &workoutLogRepository{db: db}
}

// Create persists a new workout log entry.
func (repo *workoutLogRepository) Create(ctx context.Context, workout *entity.WorkoutLog) error {
	workoutM := fromWorkoutLogDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create workout log")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt

	return nil
}

// ListRecentByUserID returns up to limit workout logs for the user, newest first.
func (repo *workoutLogRepository) ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.WorkoutLog, error) {
	var rows []model.WorkoutLogModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("performed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent workout logs")
	}

	workouts := make([]*entity.WorkoutLog, 0, len(rows))
	for i := range rows {
		workouts = append(workouts, toWorkoutLogDomain(&rows[i]))
	}

	return workouts, nil
}

// toWorkoutLogDomain maps a persistence model to a pure domain entity.
func toWorkoutLogDomain(m *model.WorkoutLogModel) *entity.WorkoutLog {
	return &entity.WorkoutLog{
		ID:             m.ID,
		UserID:         m.UserID,
		Activity:       m.Activity,
		DurationMin:    m.DurationMin,
		CaloriesBurned: m.CaloriesBurned,
		PerformedAt:    m.PerformedAt,
		CreatedAt:      m.CreatedAt,
	}
}

// fromWorkoutLogDomain maps a domain entity to its persistence model.
func fromWorkoutLogDomain(w *entity.WorkoutLog) *model.WorkoutLogModel {
	return &model.WorkoutLogModel{
		ID:             w.ID,
		UserID:         w.UserID,
		Activity:       w.Activity,
		DurationMin:    w.DurationMin,
		CaloriesBurned: w.CaloriesBurned,
		PerformedAt:    w.PerformedAt,
		CreatedAt:      w.CreatedAt,
	}
}
