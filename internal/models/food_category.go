package models

type FoodCategory struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func DefaultFoodCategories() []FoodCategory {
	return []FoodCategory{
		{ID: "fruits", Name: "Fruits"},
		{ID: "vegetables", Name: "Vegetables"},
		{ID: "grains", Name: "Grains"},
		{ID: "red_meat", Name: "Red Meat"},
		{ID: "seafood", Name: "Seafood"},
		{ID: "poultry", Name: "Poultry"},
		{ID: "fish", Name: "Fish"},
		{ID: "eggs", Name: "Eggs"},
		{ID: "nuts_seeds", Name: "Nuts and Seeds"},
	}
}
