package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"
)

// feedbackRepository implements the domain.FeedbackRepository interface using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// ListRecentByUserID returns up to limit feedback entries for the user, newest first.
func (repo *feedbackRepository) ListRecentByUserID(ctx context.Context, userID uint64, limit int) ([]*entity.Feedback, error) {
	var rows []model.FeedbackModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent feedback")
	}

	entries := make([]*entity.Feedback, 0, len(rows))
	for i := range rows {
		entries = append(entries, toFeedbackDomain(&rows[i]))
	}

	return entries, nil
}

// toFeedbackDomain maps a persistence model to a pure domain entity.
func toFeedbackDomain(m *model.FeedbackModel) *entity.Feedback {
	return &entity.Feedback{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.SuggestionKind(m.Kind),
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

// fromFeedbackDomain maps a domain entity to its persistence model.
func fromFeedbackDomain(f *entity.Feedback) *model.FeedbackModel {
	return &model.FeedbackModel{
		ID:        f.ID,
		UserID:    f.UserID,
		Kind:      string(f.Kind),
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}
