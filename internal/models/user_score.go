package models

// UserScore holds one pre-computed HEIFA value per (user, score type) pair.
// Scores cascade away with their user; score types are reference rows and
// cannot be removed while scores point at them.
type UserScore struct {
	UserID      string    `gorm:"primaryKey"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	ScoreTypeID string    `gorm:"primaryKey"`
	ScoreType   ScoreType `gorm:"constraint:OnDelete:RESTRICT"`
	Value       float64   `gorm:"not null"`
}
