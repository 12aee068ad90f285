package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	insights, err := handler.insights.Insights(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}
	return c.JSON(insights)
}

func (handler *Handler) GetShareText(c *fiber.Ctx) error {
	text, err := handler.insights.ShareText(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build share text")
	}
	return c.JSON(fiber.Map{"text": text})
}
