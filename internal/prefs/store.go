package prefs

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const currentUserKey = "current_user_id"

// Store is the key-value preference store: the current logged-in user pointer
// plus per-user cached display strings. It is constructed once in main and
// injected; there is no package-level instance.
type Store struct {
	database *gorm.DB
}

func NewStore(database *gorm.DB) *Store {
	return &Store{database: database}
}

// UserFieldKey builds the storage key for a per-user cached field.
func UserFieldKey(userID string, field string) string {
	return userID + "_" + field
}

func (store *Store) Set(key string, value string) error {
	entry := models.Preference{Key: key, Value: value}
	return store.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Get returns ("", false, nil) for an absent key.
func (store *Store) Get(key string) (string, bool, error) {
	var entry models.Preference
	err := store.database.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (store *Store) Delete(key string) error {
	return store.database.Delete(&models.Preference{}, "key = ?", key).Error
}

func (store *Store) SetCurrentUser(userID string) error {
	return store.Set(currentUserKey, userID)
}

// CurrentUserID returns ("", false, nil) when nobody is logged in.
func (store *Store) CurrentUserID() (string, bool, error) {
	return store.Get(currentUserKey)
}

// ClearCurrentUser removes only the pointer; per-user cached values stay.
func (store *Store) ClearCurrentUser() error {
	return store.Delete(currentUserKey)
}

func (store *Store) SetUserField(userID string, field string, value string) error {
	return store.Set(UserFieldKey(userID, field), value)
}

func (store *Store) UserField(userID string, field string) (string, bool, error) {
	return store.Get(UserFieldKey(userID, field))
}
