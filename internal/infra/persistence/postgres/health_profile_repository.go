package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"
)

// healthProfileRepository implements the domain.HealthProfileRepository interface using GORM.
type healthProfileRepository struct {
	db *gorm.DB
}

// NewHealthProfileRepository is the constructor for healthProfileRepository.
func NewHealthProfileRepository(db *gorm.DB) repository.HealthProfileRepository {
	return &healthProfileRepository{db: db}
}

// FindByUserID retrieves the health profile owned by the given user.
func (repo *healthProfileRepository) FindByUserID(ctx context.Context, userID uint64) (*entity.HealthProfile, error) {
	var profileM model.HealthProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find health profile by user id")
	}

	return toHealthProfileDomain(&profileM), nil
}

// Upsert creates the profile row if absent, otherwise replaces it.
func (repo *healthProfileRepository) Upsert(ctx context.Context, profile *entity.HealthProfile) error {
	profileM := fromHealthProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to upsert health profile")
	}

	return nil
}

// toHealthProfileDomain maps a persistence model to a pure domain entity.
func toHealthProfileDomain(m *model.HealthProfileModel) *entity.HealthProfile {
	return &entity.HealthProfile{
		UserID:             m.UserID,
		Age:                m.Age,
		HeightCm:           m.HeightCm,
		WeightKg:           m.WeightKg,
		Goal:               m.Goal,
		ActivityLevel:      m.ActivityLevel,
		DietaryPreferences: m.DietaryPreferences,
		UpdatedAt:          m.UpdatedAt,
	}
}

// fromHealthProfileDomain maps a domain entity to its persistence model.
func fromHealthProfileDomain(p *entity.HealthProfile) *model.HealthProfileModel {
	return &model.HealthProfileModel{
		UserID:             p.UserID,
		Age:                p.Age,
		HeightCm:           p.HeightCm,
		WeightKg:           p.WeightKg,
		Goal:               p.Goal,
		ActivityLevel:      p.ActivityLevel,
		DietaryPreferences: p.DietaryPreferences,
		UpdatedAt:          p.UpdatedAt,
	}
}
