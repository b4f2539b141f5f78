// Package session issues authenticated sessions over HTTP: it owns the
// refresh cookie and the login/registration response shape.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vita/config"
	"vita/internal/domain/entity"
	"vita/internal/domain/service"
)

// RefreshCookieName is the cookie carrying the long-lived refresh token.
const RefreshCookieName = "refreshToken"

// SanitizedUser is the external projection of a user account. Field names
// follow the API's snake_case contract; internal-only fields (password
// hash, timestamps) are excluded.
type SanitizedUser struct {
	ID    uint64 `json:"user_id"`
	Email string `json:"user_email"`
	Name  string `json:"user_name"`
}

// Payload is the response body for successful login/registration/refresh.
// The refresh token is issued both as the http-only cookie and in the body.
type Payload struct {
	User         SanitizedUser `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// Issuer mints the session response: refresh cookie first, then the body.
type Issuer struct {
	refreshTTL   time.Duration
	secureCookie bool
}

// NewIssuer is the constructor for Issuer.
func NewIssuer(tokenSvc service.TokenService, cfg *config.Config) *Issuer {
	return &Issuer{
		refreshTTL:   tokenSvc.RefreshTokenDuration(),
		secureCookie: cfg.IsProduction(),
	}
}

// Issue sets the refresh cookie on the response and returns the session
// payload for the handler to serialize. The cookie is written before any
// body bytes so it is never lost to a committed response.
func (i *Issuer) Issue(c echo.Context, user *entity.User, accessToken, refreshToken string) Payload {
	c.SetCookie(i.refreshCookie(refreshToken, int(i.refreshTTL.Seconds())))

	return Payload{
		User:         Sanitize(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

// Clear expires the refresh cookie, used on logout.
func (i *Issuer) Clear(c echo.Context) {
	c.SetCookie(i.refreshCookie("", -1))
}

// ReadRefreshToken extracts the refresh token from the request cookie.
// Returns an empty string when the cookie is absent.
func ReadRefreshToken(c echo.Context) string {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// Sanitize maps a user entity onto its external projection.
func Sanitize(user *entity.User) SanitizedUser {
	return SanitizedUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

func (i *Issuer) refreshCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   i.secureCookie,
	}
}
