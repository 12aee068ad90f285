package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
)

type questionnairePayload struct {
	CheckedCategoryIDs []string `json:"checked_category_ids"`
	PersonaID          string   `json:"persona_id"`
	WakeTime           string   `json:"wake_time"`
	BiggestMealTime    string   `json:"biggest_meal_time"`
	SleepTime          string   `json:"sleep_time"`
}

func (handler *Handler) GetQuestionnaire(c *fiber.Ctx) error {
	snapshot, err := handler.questionnaire.Load(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load questionnaire")
	}
	return c.JSON(snapshot)
}

func (handler *Handler) BeginQuestionnaireEdit(c *fiber.Ctx) error {
	if err := handler.questionnaire.BeginEdit(currentUser(c).ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to enter edit mode")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CancelQuestionnaireEdit(c *fiber.Ctx) error {
	handler.questionnaire.CancelEdit(currentUser(c).ID)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SaveQuestionnaire(c *fiber.Ctx) error {
	var payload questionnairePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	answers := services.QuestionnaireAnswers{
		CheckedCategoryIDs: payload.CheckedCategoryIDs,
		PersonaID:          payload.PersonaID,
		WakeTime:           payload.WakeTime,
		BiggestMealTime:    payload.BiggestMealTime,
		SleepTime:          payload.SleepTime,
	}
	switch err := handler.questionnaire.Save(currentUser(c).ID, answers); {
	case err == nil:
	case errors.Is(err, services.ErrTimeOrdering):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrQuestionnaireIncomplete):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrUnknownPersona):
		return apiError(c, fiber.StatusBadRequest, "unknown persona")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save questionnaire")
	}

	return c.JSON(fiber.Map{"ok": true})
}
