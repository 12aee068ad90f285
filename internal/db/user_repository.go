package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
	broker   *stream.Broker
}

func NewUserRepository(database *gorm.DB, broker *stream.Broker) *UserRepository {
	return &UserRepository{database: database, broker: broker}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID returns (nil, nil) for an unknown id; absence is not an error.
func (repo *UserRepository) FindByID(userID string) (*models.User, error) {
	var user models.User
	err := repo.database.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepository) ListIDs() ([]string, error) {
	ids := make([]string, 0)
	if err := repo.database.Model(&models.User{}).
		Order("created_at ASC, id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	if err := repo.database.Create(user).Error; err != nil {
		return err
	}
	repo.publish(user.ID, stream.OpUpsert)
	return nil
}

// RegisterCredential claims a seeded account: name, bcrypt hash and the
// registered flag are set in one update.
func (repo *UserRepository) RegisterCredential(userID string, name string, passwordHash string) error {
	if err := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"name":          name,
		"password_hash": passwordHash,
		"registered":    true,
	}).Error; err != nil {
		return err
	}
	repo.publish(userID, stream.OpUpsert)
	return nil
}

func (repo *UserRepository) UpdatePersona(userID string, personaID string) error {
	if err := repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("persona_id", personaID).Error; err != nil {
		return err
	}
	repo.publish(userID, stream.OpUpsert)
	return nil
}

func (repo *UserRepository) DeleteWithRelatedData(userID string) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserFoodPreference{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserTimePreference{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		return err
	}
	repo.publish(userID, stream.OpDelete)
	return nil
}

func (repo *UserRepository) publish(userID string, op string) {
	if repo.broker != nil {
		repo.broker.Publish(stream.Change{Entity: stream.EntityUser, UserID: userID, Op: op})
	}
}
