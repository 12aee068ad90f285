package models

// Preference is one entry of the key-value preference store: the current-user
// pointer plus per-user cached display strings, keyed by user id and field
// name concatenation.
type Preference struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}
