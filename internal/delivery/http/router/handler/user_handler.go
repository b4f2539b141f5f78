package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "vita/internal/delivery/context"
	"vita/internal/delivery/http/response"
	"vita/internal/delivery/http/session"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/usecase"
)

// UserHandler holds dependencies for user profile handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:    userUC,
		profileUC: profileUC,
		logger:    logger,
	}
}

type profileView struct {
	Age                int     `json:"age"`
	HeightCm           float64 `json:"height_cm"`
	WeightKg           float64 `json:"weight_kg"`
	Goal               string  `json:"goal"`
	ActivityLevel      string  `json:"activity_level"`
	DietaryPreferences string  `json:"dietary_preferences,omitempty"`
}

type meView struct {
	User    session.SanitizedUser `json:"user"`
	Profile *profileView          `json:"profile,omitempty"`
}

type upsertProfileRequest struct {
	Age                int     `json:"age" validate:"required,gt=0,lt=150"`
	HeightCm           float64 `json:"height_cm" validate:"required,gt=0"`
	WeightKg           float64 `json:"weight_kg" validate:"required,gt=0"`
	Goal               string  `json:"goal" validate:"required,max=100"`
	ActivityLevel      string  `json:"activity_level" validate:"required,max=50"`
	DietaryPreferences string  `json:"dietary_preferences"`
}

// requireAuth returns the store-confirmed auth context or ErrUnauthorized.
// Handlers behind the auth gate should never hit the error branch; it
// guards against route misconfiguration.
func requireAuth(c echo.Context) (*entity.RequestAuthContext, error) {
	auth := deliverycontext.GetAuthContext(c)
	if auth == nil || !auth.Resolved() {
		return nil, domainerrors.ErrUnauthorized
	}

	return auth, nil
}

// GetMe returns the authenticated user with their health profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), auth.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := meView{User: session.Sanitize(user)}
	if user.Profile != nil {
		view.Profile = toProfileView(user.Profile)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateMe creates or replaces the authenticated user's health profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	var input upsertProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUC.UpsertProfile(c.Request().Context(), auth.UserID, usecase.UpsertProfileInput{
		Age:                input.Age,
		HeightCm:           input.HeightCm,
		WeightKg:           input.WeightKg,
		Goal:               input.Goal,
		ActivityLevel:      input.ActivityLevel,
		DietaryPreferences: input.DietaryPreferences,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Profile updated successfully")
}

func toProfileView(p *entity.HealthProfile) *profileView {
	return &profileView{
		Age:                p.Age,
		HeightCm:           p.HeightCm,
		WeightKg:           p.WeightKg,
		Goal:               p.Goal,
		ActivityLevel:      p.ActivityLevel,
		DietaryPreferences: p.DietaryPreferences,
	}
}
