package db

import (
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

type Repositories struct {
	Users           *UserRepository
	Catalogs        *CatalogRepository
	Scores          *ScoreRepository
	FoodPreferences *FoodPreferenceRepository
	TimePreferences *TimePreferenceRepository
	ChatMessages    *ChatMessageRepository
}

// NewRepositories wires every repository to the shared database handle and
// change broker. Mutating calls publish on the broker after the row change
// commits.
func NewRepositories(database *gorm.DB, broker *stream.Broker) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(database, broker),
		Catalogs:        NewCatalogRepository(database),
		Scores:          NewScoreRepository(database, broker),
		FoodPreferences: NewFoodPreferenceRepository(database, broker),
		TimePreferences: NewTimePreferenceRepository(database, broker),
		ChatMessages:    NewChatMessageRepository(database, broker),
	}
}
