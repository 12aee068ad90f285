package models

import "time"

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// User mirrors one participant row of the bundled dataset. Name and
// PasswordHash stay nil until the participant claims the account through
// registration.
type User struct {
	ID           string `gorm:"primaryKey"`
	Name         *string
	Phone        string   `gorm:"not null"`
	Gender       string   `gorm:"not null"`
	PersonaID    *string  `gorm:"index"`
	Persona      *Persona `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	PasswordHash *string
	Registered   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}
