// Package seed imports the bundled participant dataset into an empty store.
// The import runs exactly once: any existing user row short-circuits it.
package seed

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/terraincognita07/nutritrack/dataset"
	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
)

// RunEmbedded seeds from the CSV compiled into the binary.
func RunEmbedded(database *gorm.DB) error {
	file, err := dataset.Files.Open(dataset.ParticipantsFile)
	if err != nil {
		return fmt.Errorf("open bundled dataset: %w", err)
	}
	defer file.Close()
	return Run(database, file)
}

// Run populates an empty store from the dataset. All phases execute inside a
// single transaction, so a failure in a later phase rolls the earlier ones
// back and a retry on next startup starts from a clean store.
//
// Phase order matters: catalog rows first, then users, then the per-user
// placeholder preference rows, then scores, because each phase references ids
// created by the one before it.
func Run(database *gorm.DB, source io.Reader) error {
	var userCount int64
	if err := database.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("check for existing users: %w", err)
	}
	if userCount > 0 {
		return nil
	}

	table, err := parseParticipantTable(source)
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := insertCatalogs(tx); err != nil {
			return fmt.Errorf("seed catalogs: %w", err)
		}
		users, err := insertUsers(tx, table)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if err := insertPlaceholderPreferences(tx, users); err != nil {
			return fmt.Errorf("seed placeholder preferences: %w", err)
		}
		if err := insertScores(tx, table, users); err != nil {
			return fmt.Errorf("seed scores: %w", err)
		}
		log.Printf("seeded %d users from bundled dataset", len(users))
		return nil
	})
}

func insertCatalogs(tx *gorm.DB) error {
	for _, category := range models.DefaultFoodCategories() {
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
	}
	for _, scoreType := range models.DefaultScoreTypes() {
		if err := tx.Create(&scoreType).Error; err != nil {
			return err
		}
	}
	for _, persona := range models.DefaultPersonas() {
		if err := tx.Create(&persona).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertUsers(tx *gorm.DB, table *participantTable) ([]models.User, error) {
	// Per-row timestamps keep ListIDs in dataset order; a shared timestamp
	// would collapse the ordering to lexicographic ids ("10" before "2").
	base := time.Now()
	users := make([]models.User, 0)
	for index, row := range table.firstRowPerUser() {
		userID, _ := table.cell(row, columnUserID)
		gender, _ := table.cell(row, columnGender)
		phone, _ := table.cell(row, columnPhone)

		user := models.User{
			ID:        userID,
			Phone:     phone,
			Gender:    gender,
			CreatedAt: base.Add(time.Duration(index) * time.Millisecond),
		}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// insertPlaceholderPreferences gives every user one unchecked row per food
// category and one empty time preference row. The questionnaire overwrites
// them later.
func insertPlaceholderPreferences(tx *gorm.DB, users []models.User) error {
	categories := models.DefaultFoodCategories()
	for _, user := range users {
		for _, category := range categories {
			preference := models.UserFoodPreference{
				UserID:     user.ID,
				CategoryID: category.ID,
			}
			if err := tx.Create(&preference).Error; err != nil {
				return err
			}
		}
		timePreference := models.UserTimePreference{UserID: user.ID}
		if err := tx.Create(&timePreference).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertScores(tx *gorm.DB, table *participantTable, users []models.User) error {
	scoreTypes := models.DefaultScoreTypes()
	rowByUser := make(map[string][]string, len(users))
	for _, row := range table.firstRowPerUser() {
		userID, _ := table.cell(row, columnUserID)
		rowByUser[userID] = row
	}

	for _, user := range users {
		row := rowByUser[user.ID]
		for _, scoreType := range scoreTypes {
			score := models.UserScore{
				UserID:      user.ID,
				ScoreTypeID: scoreType.ID,
				Value:       resolveScoreValue(table, row, user, scoreType),
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveScoreValue reads the gender-appropriate column for the score type.
// A missing column or an unparseable cell defaults to zero with a logged
// warning instead of aborting the import.
func resolveScoreValue(table *participantTable, row []string, user models.User, scoreType models.ScoreType) float64 {
	column := scoreType.SourceColumn(user.Gender)
	cell, present := table.cell(row, column)
	if !present {
		log.Printf("seed: user %s: column %q missing, defaulting %s to 0", user.ID, column, scoreType.ID)
		return 0
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		log.Printf("seed: user %s: unparseable %s value %q, defaulting to 0", user.ID, scoreType.ID, cell)
		return 0
	}
	return value
}
