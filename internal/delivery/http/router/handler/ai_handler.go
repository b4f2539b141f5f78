package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"vita/internal/delivery/http/response"
	"vita/internal/domain/entity"
	"vita/internal/usecase"
)

// AIHandler holds dependencies for AI coaching handlers.
type AIHandler struct {
	uc     usecase.AIUsecase
	logger *slog.Logger
}

// NewAIHandler is the constructor for AIHandler, injected by Fx.
func NewAIHandler(uc usecase.AIUsecase, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		uc:     uc,
		logger: logger,
	}
}

type suggestRequest struct {
	Kind string `json:"kind" validate:"required"`
}

type suggestionView struct {
	Kind       string `json:"kind"`
	Suggestion string `json:"suggestion"`
	Model      string `json:"model,omitempty"`
}

// Suggest generates a personalized meal or workout suggestion grounded in
// the user's profile and recent history.
func (h *AIHandler) Suggest(c echo.Context) error {
	auth, err := requireAuth(c)
	if err != nil {
		return err
	}

	var input suggestRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid suggestion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Suggest(c.Request().Context(), auth.UserID, usecase.SuggestInput{
		Kind: entity.SuggestionKind(input.Kind),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := suggestionView{
		Kind:       string(out.Kind),
		Suggestion: out.Suggestion,
		Model:      out.Model,
	}

	return response.Success(c, http.StatusOK, view, "")
}
