package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository serves the static reference rows: personas, score types
// and food categories. These are written once by seeding and read-only
// afterwards, so no change events are published for them.
type CatalogRepository struct {
	database *gorm.DB
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database}
}

func (repo *CatalogRepository) ListPersonas() ([]models.Persona, error) {
	personas := make([]models.Persona, 0)
	if err := repo.database.Order("rowid ASC").Find(&personas).Error; err != nil {
		return nil, err
	}
	return personas, nil
}

func (repo *CatalogRepository) FindPersona(personaID string) (*models.Persona, error) {
	var persona models.Persona
	err := repo.database.First(&persona, "id = ?", personaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &persona, nil
}

func (repo *CatalogRepository) ListScoreTypes() ([]models.ScoreType, error) {
	scoreTypes := make([]models.ScoreType, 0)
	if err := repo.database.Order("rowid ASC").Find(&scoreTypes).Error; err != nil {
		return nil, err
	}
	return scoreTypes, nil
}

func (repo *CatalogRepository) FindScoreType(scoreTypeID string) (*models.ScoreType, error) {
	var scoreType models.ScoreType
	err := repo.database.First(&scoreType, "id = ?", scoreTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scoreType, nil
}

func (repo *CatalogRepository) FindScoreTypeByName(name string) (*models.ScoreType, error) {
	var scoreType models.ScoreType
	err := repo.database.First(&scoreType, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scoreType, nil
}

func (repo *CatalogRepository) ListFoodCategories() ([]models.FoodCategory, error) {
	categories := make([]models.FoodCategory, 0)
	if err := repo.database.Order("rowid ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
