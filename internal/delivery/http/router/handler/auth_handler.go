package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"vita/internal/delivery/http/response"
	"vita/internal/delivery/http/session"
	"vita/internal/usecase"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	issuer *session.Issuer
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, issuer *session.Issuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		issuer: issuer,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload := h.issuer.Issue(c, output.User, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusCreated, payload, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload := h.issuer.Issue(c, output.User, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, payload, "Login successful")
}

// Refresh exchanges the refresh token for a new token pair. The token is
// read from the http-only cookie, with a body field fallback for clients
// that cannot send cookies.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := session.ReadRefreshToken(c)
	if refreshToken == "" {
		var input refreshRequest
		if err := c.Bind(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}
	if refreshToken == "" {
		return response.Unauthorized(c, "REFRESH_TOKEN_MISSING", "unauthorized")
	}

	output, err := h.uc.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := h.issuer.Issue(c, output.User, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, payload, "Token refreshed successfully")
}

// Logout ends the current session and clears the refresh cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := session.ReadRefreshToken(c)
	if refreshToken == "" {
		var input refreshRequest
		if err := c.Bind(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}

	if err := h.uc.Logout(c.Request().Context(), refreshToken); err != nil {
		return errors.WithStack(err)
	}

	h.issuer.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
