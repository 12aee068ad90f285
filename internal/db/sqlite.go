package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := migrateSchema(database); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return database, nil
}

// migrateSchema reconciles the store with the model structs. There is no
// versioned migration path: a schema change that AutoMigrate cannot express
// requires recreating the database file.
func migrateSchema(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Persona{},
		&models.ScoreType{},
		&models.FoodCategory{},
		&models.User{},
		&models.UserScore{},
		&models.UserFoodPreference{},
		&models.UserTimePreference{},
		&models.ChatMessage{},
		&models.Preference{},
	)
}
