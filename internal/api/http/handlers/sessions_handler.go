package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/dto"
	"github.com/shaheencodecrafters/marketplace-service/internal/config"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// SessionsHandler exposes login, logout and social-signup endpoints.
type SessionsHandler struct {
	auth   *service.AuthService
	cookie config.SessionConfig
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(authService *service.AuthService, cookie config.SessionConfig) *SessionsHandler {
	return &SessionsHandler{auth: authService, cookie: cookie}
}

// Login handles POST /login.
func (h *SessionsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}

	user, token, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	session.SetCookie(c, h.cookie, token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    dto.NewUserResponse(user),
	})
}

// Logout handles POST /logout. Safe to call with no active session.
func (h *SessionsHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cookie.CookieName)
	if err := h.auth.Logout(c.Context(), token); err != nil {
		return err
	}

	session.ClearCookie(c, h.cookie)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// SocialSignup handles POST /social-signup with find-or-create semantics.
func (h *SessionsHandler) SocialSignup(c *fiber.Ctx) error {
	var req dto.SocialSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	user, token, created, err := h.auth.SocialSignup(c.Context(), service.SocialSignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Provider: req.Provider,
		IDToken:  req.IDToken,
	})
	if err != nil {
		return err
	}

	session.SetCookie(c, h.cookie, token)

	message := "Login successful"
	if created {
		message = "Signup successful"
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": message,
		"user":    dto.NewUserResponse(user),
	})
}
