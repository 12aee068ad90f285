package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
)

type chatPayload struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

func (handler *Handler) SendChatMessage(c *fiber.Ctx) error {
	if handler.chat == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "chat is not configured")
	}

	var payload chatPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.SessionID == "" {
		payload.SessionID = handler.chat.NewSession()
	}

	reply, err := handler.chat.SendMessage(c.UserContext(), currentUser(c).ID, payload.SessionID, payload.Content)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEmptyMessage):
		return apiError(c, fiber.StatusBadRequest, "message is empty")
	case errors.Is(err, services.ErrCoachUnavailable):
		return apiError(c, fiber.StatusBadGateway, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to send message")
	}

	return c.JSON(fiber.Map{"session_id": payload.SessionID, "reply": reply})
}

func (handler *Handler) GetChatSession(c *fiber.Ctx) error {
	if handler.chat == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "chat is not configured")
	}
	sessionID := strings.TrimSpace(c.Params("session"))
	messages, err := handler.chat.SessionMessages(sessionID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load messages")
	}
	return c.JSON(fiber.Map{"messages": messages})
}

func (handler *Handler) DeleteChatSession(c *fiber.Ctx) error {
	if handler.chat == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "chat is not configured")
	}
	sessionID := strings.TrimSpace(c.Params("session"))
	if err := handler.chat.ClearSession(sessionID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteChatHistory(c *fiber.Ctx) error {
	if handler.chat == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "chat is not configured")
	}
	if err := handler.chat.ClearUser(currentUser(c).ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete history")
	}
	return c.JSON(fiber.Map{"ok": true})
}
