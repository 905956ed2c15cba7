package database

import (
	"jobswipe_backend/internal/logger"
	"jobswipe_backend/internal/models"
	"jobswipe_backend/internal/repositories"

	"gorm.io/gorm"
)

// Каталог навыков, засеваемый при первом старте
var defaultSkillCatalog = []string{
	"Cook",
	"Delivery Driver",
	"Driver Car",
	"Sales Manager",
	"Sales Person",
	"Security Guard",
}

// Migrate прогоняет AutoMigrate по всем моделям и засевает каталог навыков.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 для BaseModel.ID
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.WorkerProfile{},
		&models.JobPosting{},
		&models.Skill{},
		&models.Swipe{},
		&models.Notification{},
	); err != nil {
		return err
	}

	skillRepo := repositories.NewSkillRepository(db)
	if err := skillRepo.SeedDefaults(defaultSkillCatalog); err != nil {
		return err
	}

	logger.Info("Database migrated", "seeded_skills", len(defaultSkillCatalog))
	return nil
}
