package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/provider/fruityvice"
)

func (handler *Handler) LookupFruit(c *fiber.Ctx) error {
	if handler.fruit == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "fruit lookup is not configured")
	}

	fruit, err := handler.fruit.Lookup(c.UserContext(), c.Params("name"))
	switch {
	case err == nil:
	case errors.Is(err, fruityvice.ErrFruitNotFound):
		return apiError(c, fiber.StatusNotFound, "fruit not found")
	default:
		return apiError(c, fiber.StatusBadGateway, "fruit service unavailable")
	}

	return c.JSON(fruit)
}
