package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vita/config"
	"vita/internal/delivery/http/session"
	"vita/internal/delivery/http/validator"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/mocks"
	"vita/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthHandler(t *testing.T) (*AuthHandler, *mocks.UserUsecase) {
	t.Helper()

	uc := new(mocks.UserUsecase)

	tokenSvc := new(mocks.TokenService)
	tokenSvc.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)

	cfg := &config.Config{}
	issuer := session.NewIssuer(tokenSvc, cfg)

	return NewAuthHandler(uc, issuer, testLogger()), uc
}

// jsonContext builds an echo context carrying a JSON body, wired with the
// request validator the server installs.
func jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type sessionEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    session.Payload `json:"data"`
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionEnvelope {
	t.Helper()

	var envelope sessionEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.RefreshCookieName {
			return cookie
		}
	}
	t.Fatalf("refresh cookie not set")

	return nil
}

func authOutput() *usecase.AuthOutput {
	return &usecase.AuthOutput{
		User:         &entity.User{ID: 7, Email: "user@example.com", Name: "Test User"},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.On("Register", mock.Anything, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "Password1",
	}).Return(authOutput(), nil)

	c, rec := jsonContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"user@example.com","password":"Password1"}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeSession(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, uint64(7), envelope.Data.User.ID)
	assert.Equal(t, "access-token", envelope.Data.AccessToken)
	assert.Equal(t, "refresh-token", envelope.Data.RefreshToken)

	cookie := refreshCookie(t, rec)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	uc.AssertExpectations(t)
}

func TestAuthHandler_RegisterInvalidEmail(t *testing.T) {
	h, uc := newAuthHandler(t)

	c, _ := jsonContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"not-an-email","password":"Password1"}`)

	err := h.Register(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password1",
	}).Return(authOutput(), nil)

	c, rec := jsonContext(http.MethodPost, "/auth/login",
		`{"email":"user@example.com","password":"Password1"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeSession(t, rec)
	assert.Equal(t, "access-token", envelope.Data.AccessToken)
	assert.True(t, refreshCookie(t, rec).HttpOnly)
	uc.AssertExpectations(t)
}

func TestAuthHandler_LoginFailurePropagates(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := jsonContext(http.MethodPost, "/auth/login",
		`{"email":"user@example.com","password":"wrong"}`)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_RefreshFromCookie(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.On("Refresh", mock.Anything, "cookie-token").Return(&usecase.RefreshOutput{
		User:         &entity.User{ID: 7, Email: "user@example.com", Name: "Test User"},
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)

	c, rec := jsonContext(http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: session.RefreshCookieName, Value: "cookie-token"})

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeSession(t, rec)
	assert.Equal(t, "new-access", envelope.Data.AccessToken)
	assert.Equal(t, "new-refresh", refreshCookie(t, rec).Value)
	uc.AssertExpectations(t)
}

func TestAuthHandler_RefreshFromBody(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.On("Refresh", mock.Anything, "body-token").Return(&usecase.RefreshOutput{
		User:         &entity.User{ID: 7, Email: "user@example.com", Name: "Test User"},
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)

	c, rec := jsonContext(http.MethodPost, "/auth/refresh", `{"refreshToken":"body-token"}`)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestAuthHandler_RefreshMissingToken(t *testing.T) {
	h, uc := newAuthHandler(t)

	c, rec := jsonContext(http.MethodPost, "/auth/refresh", "")

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.On("Logout", mock.Anything, "cookie-token").Return(nil)

	c, rec := jsonContext(http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: session.RefreshCookieName, Value: "cookie-token"})

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := refreshCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	uc.AssertExpectations(t)
}
