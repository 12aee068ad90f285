package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/prefs"
)

// GetProfile serves the logged-in participant's last-known display strings:
// total HEIFA score, persona name and daily times. The preference cache
// answers first; a field the cache has not seen yet is computed from the row
// of record and written back so the next read skips the query.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	totalScore := handler.cachedField(user.ID, prefs.FieldTotalScore, func() (string, bool) {
		score, err := handler.repositories.Scores.FindByUserAndType(user.ID, models.TotalScoreTypeID)
		if err != nil || score == nil {
			return "", false
		}
		return fmt.Sprintf("%.2f", score.Value), true
	})

	persona := handler.cachedField(user.ID, prefs.FieldPersona, func() (string, bool) {
		if user.PersonaID == nil {
			return "", false
		}
		personaRow, err := handler.repositories.Catalogs.FindPersona(*user.PersonaID)
		if err != nil || personaRow == nil {
			return "", false
		}
		return personaRow.Name, true
	})

	// The three time fields share one row; load it at most once per request.
	var timeRow *models.UserTimePreference
	var timeRowLoaded bool
	timeField := func(field string, pick func(*models.UserTimePreference) *string) *string {
		return handler.cachedField(user.ID, field, func() (string, bool) {
			if !timeRowLoaded {
				timeRow, _ = handler.repositories.TimePreferences.FindByUser(user.ID)
				timeRowLoaded = true
			}
			if timeRow == nil {
				return "", false
			}
			value := pick(timeRow)
			if value == nil {
				return "", false
			}
			return *value, true
		})
	}
	mealTime := timeField(prefs.FieldMealTime, func(row *models.UserTimePreference) *string { return row.BiggestMealTime })
	sleepTime := timeField(prefs.FieldSleepTime, func(row *models.UserTimePreference) *string { return row.SleepTime })
	wakeTime := timeField(prefs.FieldWakeTime, func(row *models.UserTimePreference) *string { return row.WakeTime })

	return c.JSON(fiber.Map{
		"user_id":           user.ID,
		"name":              user.Name,
		"total_score":       totalScore,
		"persona":           persona,
		"biggest_meal_time": mealTime,
		"sleep_time":        sleepTime,
		"wake_time":         wakeTime,
	})
}

// cachedField resolves one cached display string, recomputing and backfilling
// on a miss. A field that cannot be computed yet stays absent.
func (handler *Handler) cachedField(userID string, field string, compute func() (string, bool)) *string {
	if value, found, err := handler.preferences.UserField(userID, field); err == nil && found {
		return &value
	}
	value, ok := compute()
	if !ok {
		return nil
	}
	_ = handler.preferences.SetUserField(userID, field, value)
	return &value
}
