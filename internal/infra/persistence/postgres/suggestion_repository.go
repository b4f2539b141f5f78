package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vita/internal/domain/entity"
	"vita/internal/domain/repository"
	"vita/internal/infra/persistence/model"
)

// suggestionRepository implements the domain.SuggestionRepository interface using GORM.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository is the constructor for suggestionRepository.
func NewSuggestionRepository(db *gorm.DB) repository.SuggestionRepository {
	return &suggestionRepository{db: db}
}

// Create persists a new suggestion record.
func (repo *suggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	suggestionM := fromSuggestionDomain(suggestion)

	if err := repo.db.WithContext(ctx).Create(suggestionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create suggestion")
	}

	suggestion.ID = suggestionM.ID
	suggestion.CreatedAt = suggestionM.CreatedAt

	return nil
}

// fromSuggestionDomain maps a domain entity to its persistence model.
func fromSuggestionDomain(s *entity.Suggestion) *model.SuggestionModel {
	return &model.SuggestionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Kind:      string(s.Kind),
		Content:   s.Content,
		Model:     s.Model,
		CreatedAt: s.CreatedAt,
	}
}
