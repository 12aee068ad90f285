package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/nutritrack/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownUser       = errors.New("unknown user id")
	ErrNotRegistered     = errors.New("account not registered")
	ErrAlreadyRegistered = errors.New("account already registered")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrEmptyName         = errors.New("name required")
)

type AuthUserRepository interface {
	FindByID(userID string) (*models.User, error)
	ListIDs() ([]string, error)
	RegisterCredential(userID string, name string, passwordHash string) error
}

type AuthPreferenceStore interface {
	SetCurrentUser(userID string) error
	CurrentUserID() (string, bool, error)
	ClearCurrentUser() error
}

// AuthService drives the login state machine. A failed login never mutates
// persisted rows; a successful one only moves the current-user pointer.
type AuthService struct {
	users AuthUserRepository
	prefs AuthPreferenceStore
}

func NewAuthService(users AuthUserRepository, prefs AuthPreferenceStore) *AuthService {
	return &AuthService{users: users, prefs: prefs}
}

// ClaimableUserIDs lists every seeded account, in dataset order, for the
// login and registration pickers.
func (service *AuthService) ClaimableUserIDs() ([]string, error) {
	return service.users.ListIDs()
}

// Register claims a seeded, not-yet-registered account: the user supplies
// their name and chooses a password.
func (service *AuthService) Register(userID string, name string, password string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownUser
	}
	if user.Registered {
		return ErrAlreadyRegistered
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.RegisterCredential(userID, name, string(passwordHash))
}

// Login succeeds only for a registered account whose stored hash matches the
// submitted password; on success the current-user pointer is set.
func (service *AuthService) Login(userID string, password string) (*models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}
	if !user.Registered || user.PasswordHash == nil {
		return nil, ErrNotRegistered
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredential
	}

	if err := service.prefs.SetCurrentUser(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears only the current-user pointer; persisted data stays intact.
func (service *AuthService) Logout() error {
	return service.prefs.ClearCurrentUser()
}

func (service *AuthService) CurrentUser() (*models.User, error) {
	userID, present, err := service.prefs.CurrentUserID()
	if err != nil || !present {
		return nil, err
	}
	return service.users.FindByID(userID)
}

func (service *AuthService) FindByID(userID string) (*models.User, error) {
	return service.users.FindByID(userID)
}
