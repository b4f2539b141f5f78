package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "vita/internal/delivery/context"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/mocks"
	"vita/internal/usecase"
)

func authedContext(c echo.Context, userID uint64) {
	deliverycontext.SetAuthContext(c, &entity.RequestAuthContext{
		UserID:        userID,
		Email:         "user@example.com",
		Source:        entity.IdentitySourceToken,
		StoreVerified: true,
	})
}

func TestUserHandler_GetMe(t *testing.T) {
	userUC := new(mocks.UserUsecase)
	userUC.On("GetUser", mock.Anything, uint64(7)).Return(&entity.User{
		ID:    7,
		Email: "user@example.com",
		Name:  "Test User",
		Profile: &entity.HealthProfile{
			UserID:        7,
			Age:           30,
			HeightCm:      180,
			WeightKg:      78.5,
			Goal:          "lose weight",
			ActivityLevel: "active",
			UpdatedAt:     time.Now(),
		},
	}, nil)

	h := NewUserHandler(userUC, new(mocks.ProfileUsecase), testLogger())

	c, rec := jsonContext(http.MethodGet, "/api/users/me", "")
	authedContext(c, 7)

	require.NoError(t, h.GetMe(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data meView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, uint64(7), envelope.Data.User.ID)
	require.NotNil(t, envelope.Data.Profile)
	assert.Equal(t, 30, envelope.Data.Profile.Age)
	assert.Equal(t, "lose weight", envelope.Data.Profile.Goal)
	userUC.AssertExpectations(t)
}

func TestUserHandler_GetMeWithoutIdentity(t *testing.T) {
	userUC := new(mocks.UserUsecase)

	h := NewUserHandler(userUC, new(mocks.ProfileUsecase), testLogger())

	c, _ := jsonContext(http.MethodGet, "/api/users/me", "")

	err := h.GetMe(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	userUC.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	profileUC := new(mocks.ProfileUsecase)
	profileUC.On("UpsertProfile", mock.Anything, uint64(7), usecase.UpsertProfileInput{
		Age:           30,
		HeightCm:      180,
		WeightKg:      78.5,
		Goal:          "lose weight",
		ActivityLevel: "active",
	}).Return(&entity.HealthProfile{
		UserID:        7,
		Age:           30,
		HeightCm:      180,
		WeightKg:      78.5,
		Goal:          "lose weight",
		ActivityLevel: "active",
	}, nil)

	h := NewUserHandler(new(mocks.UserUsecase), profileUC, testLogger())

	c, rec := jsonContext(http.MethodPut, "/api/users/me",
		`{"age":30,"height_cm":180,"weight_kg":78.5,"goal":"lose weight","activity_level":"active"}`)
	authedContext(c, 7)

	require.NoError(t, h.UpdateMe(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	profileUC.AssertExpectations(t)
}

func TestUserHandler_UpdateMeValidation(t *testing.T) {
	profileUC := new(mocks.ProfileUsecase)

	h := NewUserHandler(new(mocks.UserUsecase), profileUC, testLogger())

	c, _ := jsonContext(http.MethodPut, "/api/users/me",
		`{"age":-1,"height_cm":180,"weight_kg":78.5,"goal":"lose weight","activity_level":"active"}`)
	authedContext(c, 7)

	err := h.UpdateMe(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	profileUC.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything, mock.Anything)
}
