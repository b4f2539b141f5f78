package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/mocks"
	"vita/internal/usecase"
)

func TestTrackingHandler_LogMeal(t *testing.T) {
	uc := new(mocks.TrackingUsecase)
	uc.On("LogMeal", mock.Anything, uint64(7), mock.MatchedBy(func(input usecase.LogMealInput) bool {
		return input.Name == "grilled chicken salad" && input.Calories == 450
	})).Return(&entity.MealLog{
		ID:         3,
		UserID:     7,
		Name:       "grilled chicken salad",
		Calories:   450,
		ConsumedAt: time.Now(),
	}, nil)

	h := NewTrackingHandler(uc, testLogger())

	c, rec := jsonContext(http.MethodPost, "/api/meals",
		`{"name":"grilled chicken salad","calories":450,"protein_g":40,"carbs_g":20,"fat_g":15}`)
	authedContext(c, 7)

	require.NoError(t, h.LogMeal(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data mealView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, uint64(3), envelope.Data.ID)
	assert.Equal(t, "grilled chicken salad", envelope.Data.Name)
	uc.AssertExpectations(t)
}

func TestTrackingHandler_ListMealsLimitParam(t *testing.T) {
	uc := new(mocks.TrackingUsecase)
	uc.On("ListMeals", mock.Anything, uint64(7), 10).Return([]*entity.MealLog{}, nil)

	h := NewTrackingHandler(uc, testLogger())

	c, rec := jsonContext(http.MethodGet, "/api/meals?limit=10", "")
	authedContext(c, 7)

	require.NoError(t, h.ListMeals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestTrackingHandler_ListMealsIgnoresBadLimit(t *testing.T) {
	uc := new(mocks.TrackingUsecase)
	uc.On("ListMeals", mock.Anything, uint64(7), 0).Return([]*entity.MealLog{}, nil)

	h := NewTrackingHandler(uc, testLogger())

	c, rec := jsonContext(http.MethodGet, "/api/meals?limit=banana", "")
	authedContext(c, 7)

	require.NoError(t, h.ListMeals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestTrackingHandler_LogWorkout(t *testing.T) {
	uc := new(mocks.TrackingUsecase)
	uc.On("LogWorkout", mock.Anything, uint64(7), mock.MatchedBy(func(input usecase.LogWorkoutInput) bool {
		return input.Activity == "running" && input.DurationMin == 30
	})).Return(&entity.WorkoutLog{
		ID:          5,
		UserID:      7,
		Activity:    "running",
		DurationMin: 30,
		PerformedAt: time.Now(),
	}, nil)

	h := NewTrackingHandler(uc, testLogger())

	c, rec := jsonContext(http.MethodPost, "/api/workouts",
		`{"activity":"running","duration_min":30,"calories_burned":280}`)
	authedContext(c, 7)

	require.NoError(t, h.LogWorkout(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestTrackingHandler_SubmitFeedback(t *testing.T) {
	uc := new(mocks.TrackingUsecase)
	uc.On("SubmitFeedback", mock.Anything, uint64(7), usecase.SubmitFeedbackInput{
		Kind:    entity.SuggestionKindMeal,
		Rating:  5,
		Comment: "loved it",
	}).Return(&entity.Feedback{
		ID:     2,
		UserID: 7,
		Kind:   entity.SuggestionKindMeal,
		Rating: 5,
	}, nil)

	h := NewTrackingHandler(uc, testLogger())

	c, rec := jsonContext(http.MethodPost, "/api/feedback",
		`{"kind":"meal","rating":5,"comment":"loved it"}`)
	authedContext(c, 7)

	require.NoError(t, h.SubmitFeedback(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestTrackingHandler_SubmitFeedbackInvalidKind(t *testing.T) {
	uc := new(mocks.TrackingUsecase)
	uc.On("SubmitFeedback", mock.Anything, uint64(7), mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("kind must be meal or workout"))

	h := NewTrackingHandler(uc, testLogger())

	c, _ := jsonContext(http.MethodPost, "/api/feedback",
		`{"kind":"nap","rating":5}`)
	authedContext(c, 7)

	err := h.SubmitFeedback(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
