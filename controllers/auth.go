package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TcMarsh31/GrocXpressAdmin/middleware"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

type Auth struct{}

// Me echoes the identity resolved by RequireAuth.
func (h *Auth) Me(c *fiber.Ctx) error {
	claims := middleware.UserFromContext(c)
	if claims == nil {
		return utils.Error(c, utils.NewAPIError("Authentication required", fiber.StatusUnauthorized, "UNAUTHORIZED"), fiber.StatusUnauthorized)
	}
	return utils.Success(c, fiber.Map{
		"id":    claims.Subject,
		"email": claims.Email,
		"role":  claims.UserMetadata.Role,
		"admin": claims.IsAdmin(),
	}, fiber.StatusOK)
}
