package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"
)

// mealLogRepository implements the domain.MealLogRepository interface using GORM.
type mealLogRepository struct {
	db *gorm.DB
}

// NewMealLogRepository is the constructor for mealLogRepository.
func NewMealLogRepository(db *gorm.DB) repository.MealLogRepository {
	return &mealLogRepository{db: db}
}

// Create persists a new meal log entry.
func (repo *mealLogRepository) Create(ctx context.Context, meal *entity.MealLog) error {
	mealM := fromMealLogDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create meal log")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt

	return nil
}

// ListRecentByUserID returns up to limit meal logs for the user, newest first.
func (repo *mealLogRepository) ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.MealLog, error) {
	var rows []model.MealLogModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent meal logs")
	}

	meals := make([]*entity.MealLog, 0, len(rows))
	for i := range rows {
		meals = append(meals, toMealLogDomain(&rows[i]))
	}

	return meals, nil
}

// toMealLogDomain maps a persistence model to a pure domain entity.
func toMealLogDomain(m *model.MealLogModel) *entity.MealLog {
	return &entity.MealLog{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Calories:   m.Calories,
		ProteinG:   m.ProteinG,
		CarbsG:     m.CarbsG,
		FatG:       m.FatG,
		ConsumedAt: m.ConsumedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// fromMealLogDomain maps a domain entity to its persistence model.
func fromMealLogDomain(meal *entity.MealLog) *model.MealLogModel {
	return &model.MealLogModel{
		ID:         meal.ID,
		UserID:     meal.UserID,
		Name:       meal.Name,
		Calories:   meal.Calories,
		ProteinG:   meal.ProteinG,
		CarbsG:     meal.CarbsG,
		FatG:       meal.FatG,
		ConsumedAt: meal.ConsumedAt,
		CreatedAt:  meal.CreatedAt,
	}
}
