package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"vita/internal/delivery/http/response"
	"vita/internal/domain/entity"
	"vita/internal/usecase"
)

// TrackingHandler holds dependencies for meal, workout and feedback handlers.
type TrackingHandler struct {
	uc     usecase.TrackingUsecase
	logger *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler, injected by Fx.
func NewTrackingHandler(uc usecase.TrackingUsecase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		uc:     uc,
		logger: logger,
	}
}

type logMealRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	Calories   int       `json:"calories" validate:"gte=0"`
	ProteinG   float64   `json:"protein_g" validate:"gte=0"`
	CarbsG     float64   `json:"carbs_g" validate:"gte=0"`
	FatG       float64   `json:"fat_g" validate:"gte=0"`
	ConsumedAt time.Time `json:"consumed_at"`
}

type mealView struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Calories   int       `json:"calories"`
	ProteinG   float64   `json:"protein_g"`
	CarbsG     float64   `json:"carbs_g"`
	FatG       float64   `json:"fat_g"`
	ConsumedAt time.Time `json:"consumed_at"`
}

type logWorkoutRequest struct {
	Activity       string    `json:"activity" validate:"required,max=200"`
	DurationMin    int       `json:"duration_min" validate:"required,gt=0"`
	CaloriesBurned int       `json:"calories_burned" validate:"gte=0"`
	PerformedAt    time.Time `json:"performed_at"`
}

type workoutView struct {
	ID             uint64    `json:"id"`
	Activity       string    `json:"activity"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned int       `json:"calories_burned"`
	PerformedAt    time.Time `json:"performed_at"`
}

type submitFeedbackRequest struct {
	Kind    string `json:"kind" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment" validate:"max=1000"`
}

type feedbackView struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// limitParam parses the optional ?limit= query parameter. Zero means the
// usecase default; bounds are enforced downstream.
func limitParam(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}

// LogMeal records a meal for the authenticated user.
func (h *TrackingHandler) LogMeal(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	var input logMealRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.LogMeal(c.Request().Context(), auth.UserID, usecase.LogMealInput{
		Name:       input.Name,
		Calories:   input.Calories,
		ProteinG:   input.ProteinG,
		CarbsG:     input.CarbsG,
		FatG:       input.FatG,
		ConsumedAt: input.ConsumedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMealView(meal), "Meal logged successfully")
}

// ListMeals returns the authenticated user's recent meals, newest first.
func (h *TrackingHandler) ListMeals(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	meals, err := h.uc.ListMeals(c.Request().Context(), auth.UserID, limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*mealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, toMealView(meal))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// LogWorkout records a workout for the authenticated user.
func (h *TrackingHandler) LogWorkout(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	var input logWorkoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.LogWorkout(c.Request().Context(), auth.UserID, usecase.LogWorkoutInput{
		Activity:       input.Activity,
		DurationMin:    input.DurationMin,
		CaloriesBurned: input.CaloriesBurned,
		PerformedAt:    input.PerformedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkoutView(workout), "Workout logged successfully")
}

// ListWorkouts returns the authenticated user's recent workouts, newest first.
func (h *TrackingHandler) ListWorkouts(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	workouts, err := h.uc.ListWorkouts(c.Request().Context(), auth.UserID, limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*workoutView, 0, len(workouts))
	for _, workout := range workouts {
		views = append(views, toWorkoutView(workout))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// SubmitFeedback records the user's rating of an AI suggestion.
func (h *TrackingHandler) SubmitFeedback(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	var input submitFeedbackRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.SubmitFeedback(c.Request().Context(), auth.UserID, usecase.SubmitFeedbackInput{
		Kind:    entity.SuggestionKind(input.Kind),
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toFeedbackView(feedback), "Feedback recorded successfully")
}

// ListFeedback returns the authenticated user's recent feedback, newest first.
func (h *TrackingHandler) ListFeedback(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListFeedback(c.Request().Context(), auth.UserID, limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*feedbackView, 0, len(items))
	for _, item := range items {
		views = append(views, toFeedbackView(item))
	}

	return response.Success(c, http.StatusOK, views, "")
}

func toMealView(m *entity.MealLog) *mealView {
	return &mealView{
		ID:         m.ID,
		Name:       m.Name,
		Calories:   m.Calories,
		ProteinG:   m.ProteinG,
		CarbsG:     m.CarbsG,
		FatG:       m.FatG,
		ConsumedAt: m.ConsumedAt,
	}
}

func toWorkoutView(w *entity.WorkoutLog) *workoutView {
	return &workoutView{
		ID:             w.ID,
		Activity:       w.Activity,
		DurationMin:    w.DurationMin,
		CaloriesBurned: w.CaloriesBurned,
		PerformedAt:    w.PerformedAt,
	}
}

func toFeedbackView(f *entity.Feedback) *feedbackView {
	return &feedbackView{
		ID:        f.ID,
		Kind:      string(f.Kind),
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}
