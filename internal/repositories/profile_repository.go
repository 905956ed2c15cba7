package repositories

import (
	"errors"

	"jobswipe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWorkerProfileNotFound = errors.New("worker profile not found")
	ErrJobPostingNotFound    = errors.New("job posting not found")
)

type ProfileRepository interface {
	// Onboarding. Создание элемента и обновление флагов ролей владельца
	// выполняются в одной транзакции.
	CreateWorkerProfile(profile *models.WorkerProfile) error
	CreateJobPosting(posting *models.JobPosting) error

	// Адресное чтение
	FindWorkerProfileByID(ownerID, profileID string) (*models.WorkerProfile, error)
	FindJobPostingByID(ownerID, postingID string) (*models.JobPosting, error)

	// Чтение по владельцу
	FindWorkerProfilesByUserID(userID string) ([]models.WorkerProfile, error)
	FindJobPostingsByUserID(userID string) ([]models.JobPosting, error)

	// Полное перечисление для свайп-колоды. Скан всей коллекции —
	// известное ограничение, фильтрация на стороне приложения.
	FindAllWorkerProfiles() ([]models.WorkerProfile, error)
	FindAllJobPostings() ([]models.JobPosting, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateWorkerProfile(profile *models.WorkerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		// Авторитетный флаг роли и отображаемое имя владельца.
		return tx.Model(&models.User{}).
			Where("id = ?", profile.UserID).
			Updates(map[string]interface{}{
				"has_worker_profile": true,
				"display_name":       profile.FullName,
			}).Error
	})
}

func (r *ProfileRepositoryImpl) CreateJobPosting(posting *models.JobPosting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(posting).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", posting.UserID).
			Updates(map[string]interface{}{
				"has_employer_profile": true,
				"display_name":         posting.CompanyName,
			}).Error
	})
}

func (r *ProfileRepositoryImpl) FindWorkerProfileByID(ownerID, profileID string) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.First(&profile, "id = ? AND user_id = ?", profileID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindJobPostingByID(ownerID, postingID string) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := r.db.First(&posting, "id = ? AND user_id = ?", postingID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *ProfileRepositoryImpl) FindWorkerProfilesByUserID(userID string) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) FindJobPostingsByUserID(userID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&postings).Error
	return postings, err
}

func (r *ProfileRepositoryImpl) FindAllWorkerProfiles() ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := r.db.Order("created_at").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) FindAllJobPostings() ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.Order("created_at").Find(&postings).Error
	return postings, err
}
