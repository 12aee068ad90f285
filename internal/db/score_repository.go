package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

type ScoreRepository struct {
	database *gorm.DB
	broker   *stream.Broker
}

func NewScoreRepository(database *gorm.DB, broker *stream.Broker) *ScoreRepository {
	return &ScoreRepository{database: database, broker: broker}
}

// ListByUser returns the user's scores with their score types preloaded,
// ordered by score type id so insight lists render identically across
// re-reads.
func (repo *ScoreRepository) ListByUser(userID string) ([]models.UserScore, error) {
	scores := make([]models.UserScore, 0)
	if err := repo.database.
		Preload("ScoreType").
		Where("user_id = ?", userID).
		Order("score_type_id ASC").
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (repo *ScoreRepository) FindByUserAndType(userID string, scoreTypeID string) (*models.UserScore, error) {
	var score models.UserScore
	err := repo.database.
		Where("user_id = ? AND score_type_id = ?", userID, scoreTypeID).
		First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (repo *ScoreRepository) Upsert(score *models.UserScore) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.UserScore{}).
			Where("user_id = ? AND score_type_id = ?", score.UserID, score.ScoreTypeID).
			Update("value", score.Value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return tx.Create(score).Error
		}
		return nil
	})
	if err != nil {
		return err
	}
	repo.publish(score.UserID)
	return nil
}

func (repo *ScoreRepository) publish(userID string) {
	if repo.broker != nil {
		repo.broker.Publish(stream.Change{Entity: stream.EntityScore, UserID: userID, Op: stream.OpUpsert})
	}
}
