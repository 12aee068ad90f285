package services

import (
	"errors"
	"time"
)

var (
	ErrQuestionnaireIncomplete = errors.New("select at least one food category, a persona and all three times")
	ErrTimeOrdering            = errors.New("wake time must come before your biggest meal, and the meal before sleep")
	ErrUnknownPersona          = errors.New("unknown persona")
)

// ParseTimeOfDay parses an "HH:MM" string into minutes since midnight.
func ParseTimeOfDay(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// QuestionnaireAnswers is one submitted questionnaire form.
type QuestionnaireAnswers struct {
	CheckedCategoryIDs []string
	PersonaID          string
	WakeTime           string
	BiggestMealTime    string
	SleepTime          string
}

// Validate enforces the aggregate completion condition. When all three times
// are present but out of order, the ordering error takes precedence over the
// generic incompleteness message.
func (answers QuestionnaireAnswers) Validate() error {
	timesSet := answers.WakeTime != "" && answers.BiggestMealTime != "" && answers.SleepTime != ""
	if timesSet {
		if err := ValidateTimeOrdering(answers.WakeTime, answers.BiggestMealTime, answers.SleepTime); err != nil {
			return err
		}
	}
	if len(answers.CheckedCategoryIDs) == 0 || answers.PersonaID == "" || !timesSet {
		return ErrQuestionnaireIncomplete
	}
	return nil
}

// ValidateTimeOrdering requires wake <= meal <= sleep, all parseable.
func ValidateTimeOrdering(wakeTime string, mealTime string, sleepTime string) error {
	wake, err := ParseTimeOfDay(wakeTime)
	if err != nil {
		return ErrTimeOrdering
	}
	meal, err := ParseTimeOfDay(mealTime)
	if err != nil {
		return ErrTimeOrdering
	}
	sleep, err := ParseTimeOfDay(sleepTime)
	if err != nil {
		return ErrTimeOrdering
	}
	if wake > meal || meal > sleep {
		return ErrTimeOrdering
	}
	return nil
}

// IsQuestionnaireComplete derives the completion flag from stored state:
// at least one category checked, a persona selected, and all three times set
// in chronological order.
func IsQuestionnaireComplete(checkedCategories int, personaID *string, wakeTime *string, mealTime *string, sleepTime *string) bool {
	if checkedCategories == 0 {
		return false
	}
	if personaID == nil || *personaID == "" {
		return false
	}
	if wakeTime == nil || mealTime == nil || sleepTime == nil {
		return false
	}
	return ValidateTimeOrdering(*wakeTime, *mealTime, *sleepTime) == nil
}
