package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/config"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

const userIDKey = "session_user_id"

// Middleware resolves the session cookie into the authenticated identity.
type Middleware struct {
	store  Store
	cookie config.SessionConfig
}

// NewMiddleware constructs middleware.
func NewMiddleware(store Store, cookie config.SessionConfig) *Middleware {
	return &Middleware{store: store, cookie: cookie}
}

// Handle loads the session, if any, into request locals. A missing or stale
// cookie leaves the request unauthenticated rather than failing it.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookie.CookieName)
	if token == "" {
		return c.Next()
	}

	userID, err := m.store.Resolve(c.Context(), token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return c.Next()
		}
		return apperrors.NewInternalError(err)
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// Require rejects requests that carry no authenticated session.
func (m *Middleware) Require(c *fiber.Ctx) error {
	if _, ok := UserIDFromContext(c); !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user id, if present.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(userIDKey)
	if val == nil {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}

// SetCookie attaches the session cookie to the response.
func SetCookie(c *fiber.Ctx, cfg config.SessionConfig, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(cfg.TTL()),
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c *fiber.Ctx, cfg config.SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
