package models

type Persona struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
}

// DefaultPersonas returns the fixed dietary-attitude catalog inserted during
// seeding. Personas are referenced by string id everywhere else; the catalog
// order is the display order.
func DefaultPersonas() []Persona {
	return []Persona{
		{ID: "health_devotee", Name: "Health Devotee", Description: "I'm passionate about healthy eating and health plays a big part in my life. I use social media to follow active lifestyle personalities or get new recipes and I may even buy superfoods or follow a particular type of diet. I like to think I am super healthy."},
		{ID: "mindful_eater", Name: "Mindful Eater", Description: "I'm health-conscious and being healthy and eating healthy is important to me. Although health means different things to different people, I make conscious lifestyle decisions about eating based on what I believe healthy means."},
		{ID: "wellness_striver", Name: "Wellness Striver", Description: "I aspire to be healthy (but struggle sometimes). Healthy eating is hard work! I've tried to improve my diet, but always find things that make it difficult to stick with the changes. I want to be healthier and I'm determined to make it happen."},
		{ID: "balance_seeker", Name: "Balance Seeker", Description: "I try and live a balanced lifestyle, and I think that all foods are okay in moderation. I shouldn't have to feel guilty about eating a piece of cake now and again. I get all sorts of inspiration from social media like finding out about new restaurants, fun recipes and sometimes healthy eating tips."},
		{ID: "health_procrastinator", Name: "Health Procrastinator", Description: "I'm contemplating healthy eating but it's not a priority for me right now. I know the basics about what it means to be healthy, but it doesn't seem relevant to me right now. I have taken a few steps to be healthier but I am not motivated to make it a high priority."},
		{ID: "food_carefree", Name: "Food Carefree", Description: "I'm not bothered about healthy eating. I don't really see the point and I don't think about it. I don't really notice healthy eating tips or recipes and I don't care what I eat."},
	}
}
