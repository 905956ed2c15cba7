package dto

// Card — карточка для свайп-колоды
type Card struct {
	ID       string   `json:"id"`
	OwnerID  string   `json:"owner_id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"` // worker | job
	Title    string   `json:"title"`
	Skills   []string `json:"skills"`
	ImageURL string   `json:"image_url,omitempty"`
}

// CardsQuery — параметры запроса свайп-колоды
type CardsQuery struct {
	Role string `form:"role" json:"role" validate:"required,is-active-role"`
}

// ListItem — элемент списков favorites / accepts / matches
type ListItem struct {
	ItemID   string `json:"item_id"`
	OwnerID  string `json:"owner_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
	IsMatch  bool   `json:"is_match"`
}

// UserRoles — авторитетные флаги ролей пользователя
type UserRoles struct {
	IsWorker   bool `json:"is_worker"`
	IsEmployer bool `json:"is_employer"`
}

// WorkerProfileView — профиль работника, таймстемпы в RFC3339
type WorkerProfileView struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Skill        string `json:"skill"`
	Availability string `json:"availability"`
	ImageURL     string `json:"image_url,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// JobPostingView — вакансия, таймстемпы в RFC3339
type JobPostingView struct {
	ID             string `json:"id"`
	CompanyName    string `json:"company_name"`
	Skill          string `json:"skill"`
	JobDescription string `json:"job_description"`
	ImageURL       string `json:"image_url,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// UserProfileResponse — агрегированный профиль пользователя
type UserProfileResponse struct {
	ID                 string              `json:"id"`
	PhoneNumber        string              `json:"phone_number"`
	DisplayName        string              `json:"display_name"`
	ImageURL           string              `json:"image_url,omitempty"`
	HasWorkerProfile   bool                `json:"has_worker_profile"`
	HasEmployerProfile bool                `json:"has_employer_profile"`
	CreatedAt          string              `json:"created_at"`
	WorkerProfiles     []WorkerProfileView `json:"worker_profiles"`
	JobPostings        []JobPostingView    `json:"job_postings"`
}

// UpdateMyProfileInput — редактируемые поля пользователя.
// Email необязателен и используется только для писем о совпадениях.
type UpdateMyProfileInput struct {
	DisplayName string `json:"display_name" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	ImageURL    string `json:"image_url"`
}

// SkillView — элемент каталога навыков
type SkillView struct {
	Name string `json:"name"`
}

// CreateWorkerProfileInput представляет тело запроса онбординга работника
type CreateWorkerProfileInput struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	Skill        string `json:"skill" validate:"required"`
	Availability string `json:"availability" validate:"required,is-availability"`
	ImageURL     string `json:"image_url"`
}

// CreateJobPostingInput представляет тело запроса онбординга работодателя
type CreateJobPostingInput struct {
	CompanyName    string `json:"company_name" validate:"required,min=2,max=100"`
	Skill          string `json:"skill" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	ImageURL       string `json:"image_url"`
}
