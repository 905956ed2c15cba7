package models

// WorkerProfile — анкета работника. Создается один раз при онбординге,
// путь редактирования не реализован.
type WorkerProfile struct {
	BaseModel
	UserID       string       `gorm:"not null;index"`
	FullName     string       `gorm:"not null"`
	Skill        string       `gorm:"not null"`
	Availability Availability `gorm:"type:varchar(20);not null"`
	ImageURL     string
}

// JobPosting — вакансия работодателя. Тот же жизненный цикл, что и у анкеты.
type JobPosting struct {
	BaseModel
	UserID         string `gorm:"not null;index"`
	CompanyName    string `gorm:"not null"`
	Skill          string `gorm:"not null"`
	JobDescription string
	ImageURL       string
}

// Skill — элемент общего каталога навыков. Используется как фильтр и
// подпись, внешним ключом не является.
type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}
