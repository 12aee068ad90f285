package models

// UserFoodPreference records whether a user ticked one food category in the
// questionnaire. Seeding creates every (user, category) pair unchecked; the
// questionnaire save overwrites the selected ones.
type UserFoodPreference struct {
	UserID     string       `gorm:"primaryKey"`
	User       User         `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID string       `gorm:"primaryKey"`
	Category   FoodCategory `gorm:"constraint:OnDelete:CASCADE"`
	Checked    bool         `gorm:"not null;default:false"`
}

// UserTimePreference keeps the three questionnaire times as "HH:MM" strings,
// nil until the user fills them in. At most one row per user; saving replaces
// the previous row wholesale. A valid row satisfies wake <= meal <= sleep.
type UserTimePreference struct {
	UserID          string `gorm:"primaryKey"`
	User            User   `gorm:"constraint:OnDelete:CASCADE"`
	BiggestMealTime *string
	SleepTime       *string
	WakeTime        *string
}
