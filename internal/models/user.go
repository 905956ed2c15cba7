package models

import "time"

type User struct {
	BaseModel
	PhoneNumber string `gorm:"uniqueIndex;not null"`
	// Отображаемое имя: fullName работника или companyName работодателя,
	// то, что было задано последним при онбординге.
	DisplayName string

	// Авторитетные флаги ролей. Обновляются в одной транзакции с созданием
	// профиля или вакансии.
	HasWorkerProfile   bool `gorm:"default:false"`
	HasEmployerProfile bool `gorm:"default:false"`

	// Необязательный контакт для писем о совпадениях
	Email string

	ImageURL string

	// Relations
	WorkerProfiles []WorkerProfile `gorm:"foreignKey:UserID"`
	JobPostings    []JobPosting    `gorm:"foreignKey:UserID"`
	Notifications  []Notification  `gorm:"foreignKey:UserID"`
	RefreshTokens  []RefreshToken  `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
