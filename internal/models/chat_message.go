package models

import "time"

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"not null"`
	FromUser  bool      `gorm:"not null"`
	UserID    *string   `gorm:"index"`
	SessionID string    `gorm:"index;not null"`
	Timestamp time.Time `gorm:"not null"`
}
