package repositories

import (
	"jobswipe_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository interface {
	FindAllOrdered() ([]models.Skill, error)
	SeedDefaults(names []string) error
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) FindAllOrdered() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("name").Find(&skills).Error
	return skills, err
}

// SeedDefaults добавляет недостающие навыки каталога, существующие не трогает.
func (r *SkillRepositoryImpl) SeedDefaults(names []string) error {
	if len(names) == 0 {
		return nil
	}

	skills := make([]models.Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, models.Skill{Name: name})
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&skills).Error
}
