package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/dto"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// GetUser handles GET /api/user/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.auth.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// UpdateEmail handles PUT /api/user/email/:id. Only the account owner may
// change the address.
func (h *UsersHandler) UpdateEmail(c *fiber.Ctx) error {
	callerID, _ := session.UserIDFromContext(c)

	var req dto.UpdateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	user, err := h.auth.ChangeEmail(c.Context(), callerID, c.Params("id"), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Email updated successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// UpdatePassword handles PUT /api/user/password/:id. The current password is
// re-verified before any change.
func (h *UsersHandler) UpdatePassword(c *fiber.Ctx) error {
	callerID, _ := session.UserIDFromContext(c)

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if err := h.auth.ChangePassword(c.Context(), callerID, c.Params("id"), req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
