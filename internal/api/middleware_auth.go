package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/models"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}
