package models

// ScoreType describes one HEIFA sub-score: its maximum (drives progress-bar
// scaling) and the gender-specific source columns it is read from during
// seeding.
type ScoreType struct {
	ID           string  `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	MaxValue     float64 `gorm:"not null"`
	MaleColumn   string  `gorm:"not null"`
	FemaleColumn string  `gorm:"not null"`
}

const TotalScoreTypeID = "total"

// SourceColumn resolves the dataset column that carries this score for a
// participant of the given gender.
func (scoreType ScoreType) SourceColumn(gender string) string {
	if gender == GenderFemale {
		return scoreType.FemaleColumn
	}
	return scoreType.MaleColumn
}

func DefaultScoreTypes() []ScoreType {
	return []ScoreType{
		{ID: TotalScoreTypeID, Name: "Total HEIFA Score", MaxValue: 100, MaleColumn: "HEIFAtotalscoreMale", FemaleColumn: "HEIFAtotalscoreFemale"},
		{ID: "discretionary", Name: "Discretionary Foods", MaxValue: 10, MaleColumn: "DiscretionaryHEIFAscoreMale", FemaleColumn: "DiscretionaryHEIFAscoreFemale"},
		{ID: "vegetables", Name: "Vegetables", MaxValue: 10, MaleColumn: "VegetablesHEIFAscoreMale", FemaleColumn: "VegetablesHEIFAscoreFemale"},
		{ID: "fruits", Name: "Fruits", MaxValue: 10, MaleColumn: "FruitHEIFAscoreMale", FemaleColumn: "FruitHEIFAscoreFemale"},
		{ID: "grains", Name: "Grains and Cereals", MaxValue: 5, MaleColumn: "GrainsandcerealsHEIFAscoreMale", FemaleColumn: "GrainsandcerealsHEIFAscoreFemale"},
		{ID: "wholegrains", Name: "Whole Grains", MaxValue: 5, MaleColumn: "WholegrainsHEIFAscoreMale", FemaleColumn: "WholegrainsHEIFAscoreFemale"},
		{ID: "meat", Name: "Meat and Alternatives", MaxValue: 10, MaleColumn: "MeatandalternativesHEIFAscoreMale", FemaleColumn: "MeatandalternativesHEIFAscoreFemale"},
		{ID: "dairy", Name: "Dairy and Alternatives", MaxValue: 10, MaleColumn: "DairyandalternativesHEIFAscoreMale", FemaleColumn: "DairyandalternativesHEIFAscoreFemale"},
		{ID: "sodium", Name: "Sodium", MaxValue: 10, MaleColumn: "SodiumHEIFAscoreMale", FemaleColumn: "SodiumHEIFAscoreFemale"},
		{ID: "alcohol", Name: "Alcohol", MaxValue: 5, MaleColumn: "AlcoholHEIFAscoreMale", FemaleColumn: "AlcoholHEIFAscoreFemale"},
		{ID: "water", Name: "Water", MaxValue: 5, MaleColumn: "WaterHEIFAscoreMale", FemaleColumn: "WaterHEIFAscoreFemale"},
		{ID: "sugar", Name: "Added Sugar", MaxValue: 10, MaleColumn: "SugarHEIFAscoreMale", FemaleColumn: "SugarHEIFAscoreFemale"},
		{ID: "saturated_fat", Name: "Saturated Fat", MaxValue: 5, MaleColumn: "SaturatedFatHEIFAscoreMale", FemaleColumn: "SaturatedFatHEIFAscoreFemale"},
		{ID: "unsaturated_fat", Name: "Unsaturated Fat", MaxValue: 5, MaleColumn: "UnsaturatedFatHEIFAscoreMale", FemaleColumn: "UnsaturatedFatHEIFAscoreFemale"},
	}
}
