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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.HealthProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.HealthProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the health profile for the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uint64) (*entity.HealthProfile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find health profile")
	}

	return profile, nil
}

// UpsertProfile creates or replaces the user's health profile.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uint64, input usecase.UpsertProfileInput) (*entity.HealthProfile, error) {
	profile := &entity.HealthProfile{
		UserID:             userID,
		Age:                input.Age,
		HeightCm:           input.HeightCm,
		WeightKg:           input.WeightKg,
		Goal:               input.Goal,
		ActivityLevel:      input.ActivityLevel,
		DietaryPreferences: input.DietaryPreferences,
		UpdatedAt:          time.Now(),
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to upsert health profile", slog.Uint64("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to upsert health profile")
	}

	srv.log(ctx).Debug("Health profile updated", slog.Uint64("userID", userID))

	return profile, nil
}
