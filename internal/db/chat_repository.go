package db

import (
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

type ChatMessageRepository struct {
	database *gorm.DB
	broker   *stream.Broker
}

func NewChatMessageRepository(database *gorm.DB, broker *stream.Broker) *ChatMessageRepository {
	return &ChatMessageRepository{database: database, broker: broker}
}

// AppendExchange stores a user message and its AI reply in one transaction;
// either both rows land or neither does.
func (repo *ChatMessageRepository) AppendExchange(userMessage *models.ChatMessage, reply *models.ChatMessage) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMessage).Error; err != nil {
			return err
		}
		return tx.Create(reply).Error
	})
	if err != nil {
		return err
	}
	repo.publish(userMessage.UserID, stream.OpUpsert)
	return nil
}

func (repo *ChatMessageRepository) ListBySession(sessionID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := repo.database.
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ChatMessageRepository) ListByUser(userID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ChatMessageRepository) DeleteSession(sessionID string) error {
	if err := repo.database.Where("session_id = ?", sessionID).
		Delete(&models.ChatMessage{}).Error; err != nil {
		return err
	}
	repo.publish(nil, stream.OpDelete)
	return nil
}

func (repo *ChatMessageRepository) DeleteForUser(userID string) error {
	if err := repo.database.Where("user_id = ?", userID).
		Delete(&models.ChatMessage{}).Error; err != nil {
		return err
	}
	repo.publish(&userID, stream.OpDelete)
	return nil
}

func (repo *ChatMessageRepository) publish(userID *string, op string) {
	if repo.broker == nil {
		return
	}
	change := stream.Change{Entity: stream.EntityChatMessage, Op: op}
	if userID != nil {
		change.UserID = *userID
	}
	repo.broker.Publish(change)
}
