package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/nutritrack/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubAuthUserRepo struct {
	users              map[string]*models.User
	registeredUserID   string
	registeredName     string
	registeredHash     string
	registerCredential error
}

func (stub *stubAuthUserRepo) FindByID(userID string) (*models.User, error) {
	return stub.users[userID], nil
}

func (stub *stubAuthUserRepo) ListIDs() ([]string, error) {
	ids := make([]string, 0, len(stub.users))
	for id := range stub.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (stub *stubAuthUserRepo) RegisterCredential(userID string, name string, passwordHash string) error {
	if stub.registerCredential != nil {
		return stub.registerCredential
	}
	stub.registeredUserID = userID
	stub.registeredName = name
	stub.registeredHash = passwordHash
	return nil
}

type stubPreferenceStore struct {
	currentUser string
	setCalls    int
	clearCalls  int
}

func (stub *stubPreferenceStore) SetCurrentUser(userID string) error {
	stub.currentUser = userID
	stub.setCalls++
	return nil
}

func (stub *stubPreferenceStore) CurrentUserID() (string, bool, error) {
	return stub.currentUser, stub.currentUser != "", nil
}

func (stub *stubPreferenceStore) ClearCurrentUser() error {
	stub.currentUser = ""
	stub.clearCalls++
	return nil
}

func registeredUser(t *testing.T, id string, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	hashString := string(hash)
	name := "Test User"
	return &models.User{
		ID:           id,
		Name:         &name,
		Registered:   true,
		PasswordHash: &hashString,
	}
}

func TestLoginSucceedsForRegisteredUserWithMatchingPassword(t *testing.T) {
	prefs := &stubPreferenceStore{}
	service := NewAuthService(&stubAuthUserRepo{
		users: map[string]*models.User{"4": registeredUser(t, "4", "Secret1pass")},
	}, prefs)

	user, err := service.Login("4", "Secret1pass")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if user.ID != "4" {
		t.Fatalf("expected user 4, got %q", user.ID)
	}
	if prefs.currentUser != "4" {
		t.Fatalf("expected current-user pointer set to 4, got %q", prefs.currentUser)
	}
}

func TestLoginFailureMatrixLeavesCurrentUserUnset(t *testing.T) {
	unregistered := &models.User{ID: "7", Registered: false}

	cases := []struct {
		name     string
		userID   string
		password string
		wantErr  error
	}{
		{"unknown id", "999", "Secret1pass", ErrUnknownUser},
		{"unregistered account", "7", "Secret1pass", ErrNotRegistered},
		{"wrong password", "4", "WrongPass1", ErrInvalidCredential},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			prefs := &stubPreferenceStore{}
			service := NewAuthService(&stubAuthUserRepo{
				users: map[string]*models.User{
					"4": registeredUser(t, "4", "Secret1pass"),
					"7": unregistered,
				},
			}, prefs)

			if _, err := service.Login(testCase.userID, testCase.password); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("Login() = %v, want %v", err, testCase.wantErr)
			}
			if prefs.setCalls != 0 {
				t.Fatal("expected the current-user pointer to stay unset after a failed login")
			}
		})
	}
}

func TestLogoutClearsOnlyCurrentUserPointer(t *testing.T) {
	repo := &stubAuthUserRepo{users: map[string]*models.User{"4": registeredUser(t, "4", "Secret1pass")}}
	prefs := &stubPreferenceStore{currentUser: "4"}
	service := NewAuthService(repo, prefs)

	if err := service.Logout(); err != nil {
		t.Fatalf("Logout() unexpected error: %v", err)
	}
	if prefs.currentUser != "" {
		t.Fatalf("expected pointer cleared, got %q", prefs.currentUser)
	}
	if repo.registeredUserID != "" {
		t.Fatal("expected no persisted mutation on logout")
	}
}

func TestRegisterClaimsSeededAccount(t *testing.T) {
	repo := &stubAuthUserRepo{users: map[string]*models.User{
		"12": {ID: "12", Registered: false},
	}}
	service := NewAuthService(repo, &stubPreferenceStore{})

	if err := service.Register("12", "  Priya  ", "Secret1pass"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if repo.registeredUserID != "12" || repo.registeredName != "Priya" {
		t.Fatalf("expected trimmed name persisted for user 12, got %q/%q", repo.registeredUserID, repo.registeredName)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.registeredHash), []byte("Secret1pass")) != nil {
		t.Fatal("expected persisted hash to match the chosen password")
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	repo := &stubAuthUserRepo{users: map[string]*models.User{
		"4":  registeredUser(t, "4", "Secret1pass"),
		"12": {ID: "12", Registered: false},
	}}
	service := NewAuthService(repo, &stubPreferenceStore{})

	cases := []struct {
		name     string
		userID   string
		userName string
		password string
		wantErr  error
	}{
		{"already registered", "4", "Maya", "Secret1pass", ErrAlreadyRegistered},
		{"unknown id", "404", "Maya", "Secret1pass", ErrUnknownUser},
		{"blank name", "12", "   ", "Secret1pass", ErrEmptyName},
		{"weak password", "12", "Maya", "short", ErrWeakPassword},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if err := service.Register(testCase.userID, testCase.userName, testCase.password); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("Register() = %v, want %v", err, testCase.wantErr)
			}
		})
	}
	if repo.registeredUserID != "" {
		t.Fatal("expected no credential writes from rejected registrations")
	}
}
