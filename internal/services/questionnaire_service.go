package services

import (
	"sync"

	"github.com/terraincognita07/nutritrack/internal/models"
)

type QuestionnaireUserRepository interface {
	FindByID(userID string) (*models.User, error)
	UpdatePersona(userID string, personaID string) error
}

type QuestionnaireFoodPreferenceRepository interface {
	ListByUser(userID string) ([]models.UserFoodPreference, error)
	ReplaceSelections(userID string, checkedCategoryIDs []string) error
}

type QuestionnaireTimePreferenceRepository interface {
	FindByUser(userID string) (*models.UserTimePreference, error)
	Replace(preference *models.UserTimePreference) error
}

type QuestionnaireCatalogRepository interface {
	FindPersona(personaID string) (*models.Persona, error)
	ListPersonas() ([]models.Persona, error)
}

// QuestionnaireSnapshot is the reactive state one questionnaire screen binds
// to.
type QuestionnaireSnapshot struct {
	FoodPreferences []models.UserFoodPreference
	Personas        []models.Persona
	PersonaID       *string
	WakeTime        *string
	BiggestMealTime *string
	SleepTime       *string
	Completed       bool
	EditMode        bool
}

// QuestionnaireService mediates between questionnaire events and the
// repositories. While a user is in edit mode the completion flag stays frozen
// at its last derived value; it is recomputed again once the edit is saved or
// cancelled.
type QuestionnaireService struct {
	users     QuestionnaireUserRepository
	foodPrefs QuestionnaireFoodPreferenceRepository
	timePrefs QuestionnaireTimePreferenceRepository
	catalogs  QuestionnaireCatalogRepository

	mutex       sync.Mutex
	editingFlag map[string]bool // frozen Completed value per editing user
}

func NewQuestionnaireService(
	users QuestionnaireUserRepository,
	foodPrefs QuestionnaireFoodPreferenceRepository,
	timePrefs QuestionnaireTimePreferenceRepository,
	catalogs QuestionnaireCatalogRepository,
) *QuestionnaireService {
	return &QuestionnaireService{
		users:       users,
		foodPrefs:   foodPrefs,
		timePrefs:   timePrefs,
		catalogs:    catalogs,
		editingFlag: make(map[string]bool),
	}
}

func (service *QuestionnaireService) Load(userID string) (*QuestionnaireSnapshot, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	foodPreferences, err := service.foodPrefs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	timePreference, err := service.timePrefs.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	personas, err := service.catalogs.ListPersonas()
	if err != nil {
		return nil, err
	}

	snapshot := &QuestionnaireSnapshot{
		FoodPreferences: foodPreferences,
		Personas:        personas,
		PersonaID:       user.PersonaID,
	}
	if timePreference != nil {
		snapshot.WakeTime = timePreference.WakeTime
		snapshot.BiggestMealTime = timePreference.BiggestMealTime
		snapshot.SleepTime = timePreference.SleepTime
	}

	derived := IsQuestionnaireComplete(countChecked(foodPreferences), user.PersonaID, snapshot.WakeTime, snapshot.BiggestMealTime, snapshot.SleepTime)

	service.mutex.Lock()
	if frozen, editing := service.editingFlag[userID]; editing {
		snapshot.Completed = frozen
		snapshot.EditMode = true
	} else {
		snapshot.Completed = derived
	}
	service.mutex.Unlock()

	return snapshot, nil
}

// BeginEdit freezes the completion flag at its current derived value until
// Save or CancelEdit.
func (service *QuestionnaireService) BeginEdit(userID string) error {
	snapshot, err := service.Load(userID)
	if err != nil {
		return err
	}
	service.mutex.Lock()
	if _, editing := service.editingFlag[userID]; !editing {
		service.editingFlag[userID] = snapshot.Completed
	}
	service.mutex.Unlock()
	return nil
}

func (service *QuestionnaireService) CancelEdit(userID string) {
	service.mutex.Lock()
	delete(service.editingFlag, userID)
	service.mutex.Unlock()
}

// Save validates the submitted answers and, only when they pass, persists the
// category selections, the persona reference and the replaced time row, then
// leaves edit mode. A validation failure persists nothing.
func (service *QuestionnaireService) Save(userID string, answers QuestionnaireAnswers) error {
	if err := answers.Validate(); err != nil {
		return err
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownUser
	}
	persona, err := service.catalogs.FindPersona(answers.PersonaID)
	if err != nil {
		return err
	}
	if persona == nil {
		return ErrUnknownPersona
	}

	if err := service.foodPrefs.ReplaceSelections(userID, answers.CheckedCategoryIDs); err != nil {
		return err
	}
	if err := service.users.UpdatePersona(userID, answers.PersonaID); err != nil {
		return err
	}
	timePreference := &models.UserTimePreference{
		UserID:          userID,
		WakeTime:        &answers.WakeTime,
		BiggestMealTime: &answers.BiggestMealTime,
		SleepTime:       &answers.SleepTime,
	}
	if err := service.timePrefs.Replace(timePreference); err != nil {
		return err
	}

	service.CancelEdit(userID)
	return nil
}

func countChecked(preferences []models.UserFoodPreference) int {
	checked := 0
	for _, preference := range preferences {
		if preference.Checked {
			checked++
		}
	}
	return checked
}
