package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

type FoodPreferenceRepository struct {
	database *gorm.DB
	broker   *stream.Broker
}

func NewFoodPreferenceRepository(database *gorm.DB, broker *stream.Broker) *FoodPreferenceRepository {
	return &FoodPreferenceRepository{database: database, broker: broker}
}

func (repo *FoodPreferenceRepository) ListByUser(userID string) ([]models.UserFoodPreference, error) {
	preferences := make([]models.UserFoodPreference, 0)
	if err := repo.database.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("category_id ASC").
		Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

func (repo *FoodPreferenceRepository) Create(preference *models.UserFoodPreference) error {
	if err := repo.database.Create(preference).Error; err != nil {
		return err
	}
	repo.publish(preference.UserID)
	return nil
}

// ReplaceSelections marks the given categories checked and every other
// category of the user unchecked, in one transaction.
func (repo *FoodPreferenceRepository) ReplaceSelections(userID string, checkedCategoryIDs []string) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserFoodPreference{}).
			Where("user_id = ?", userID).
			Update("checked", false).Error; err != nil {
			return err
		}
		if len(checkedCategoryIDs) == 0 {
			return nil
		}
		return tx.Model(&models.UserFoodPreference{}).
			Where("user_id = ? AND category_id IN ?", userID, checkedCategoryIDs).
			Update("checked", true).Error
	})
	if err != nil {
		return err
	}
	repo.publish(userID)
	return nil
}

func (repo *FoodPreferenceRepository) publish(userID string) {
	if repo.broker != nil {
		repo.broker.Publish(stream.Change{Entity: stream.EntityFoodPreference, UserID: userID, Op: stream.OpUpsert})
	}
}

type TimePreferenceRepository struct {
	database *gorm.DB
	broker   *stream.Broker
}

func NewTimePreferenceRepository(database *gorm.DB, broker *stream.Broker) *TimePreferenceRepository {
	return &TimePreferenceRepository{database: database, broker: broker}
}

// FindByUser returns (nil, nil) when the user has no time preference row.
func (repo *TimePreferenceRepository) FindByUser(userID string) (*models.UserTimePreference, error) {
	var preference models.UserTimePreference
	err := repo.database.First(&preference, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preference, nil
}

func (repo *TimePreferenceRepository) Create(preference *models.UserTimePreference) error {
	if err := repo.database.Create(preference).Error; err != nil {
		return err
	}
	repo.publish(preference.UserID)
	return nil
}

// Replace overwrites the user's single time preference row.
func (repo *TimePreferenceRepository) Replace(preference *models.UserTimePreference) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", preference.UserID).
			Delete(&models.UserTimePreference{}).Error; err != nil {
			return err
		}
		return tx.Create(preference).Error
	})
	if err != nil {
		return err
	}
	repo.publish(preference.UserID)
	return nil
}

func (repo *TimePreferenceRepository) publish(userID string) {
	if repo.broker != nil {
		repo.broker.Publish(stream.Change{Entity: stream.EntityTimePreference, UserID: userID, Op: stream.OpUpsert})
	}
}
