package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	authClient *auth.Client
}

func NewAuthMiddleware(authClient *auth.Client) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// Authenticate requires a valid bearer ID token and stores the uid in the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, err := m.uidFromRequest(c)
		if err != nil {
			return err
		}

		c.Set("uid", uid)
		return next(c)
	}
}

// OptionalAuthenticate resolves the uid when a bearer token is present but
// lets anonymous requests through with an empty uid. Used by routes whose
// behavior is richer for signed-in callers (volunteer registration, drive
// listing).
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			c.Set("uid", "")
			return next(c)
		}

		uid, err := m.uidFromRequest(c)
		if err != nil {
			return err
		}

		c.Set("uid", uid)
		return next(c)
	}
}

func (m *AuthMiddleware) uidFromRequest(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "You must be signed in")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	return token.UID, nil
}
