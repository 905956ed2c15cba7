package services

import (
	"time"

	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/logger"
	"jobswipe_backend/internal/models"
	"jobswipe_backend/internal/repositories"
	"jobswipe_backend/pkg/apperrors"
)

// Каталог по умолчанию, если таблица навыков пуста или недоступна
var defaultSkills = []string{
	"Cook",
	"Delivery Driver",
	"Driver Car",
	"Sales Manager",
	"Sales Person",
	"Security Guard",
}

type ProfileService interface {
	// Чтения-агрегаты. Ошибки хранилища логируются и превращаются в
	// пустые/нейтральные значения, наверх не уходят.
	GetUserRoles(userID string) *dto.UserRoles
	GetSwipeableCards(userID string, role models.Role) []dto.Card
	GetFavorites(userID string) []dto.ListItem
	GetAccepts(userID string) []dto.ListItem
	GetMatches(userID string) []dto.ListItem
	GetUserProfile(userID string) *dto.UserProfileResponse
	GetSkills() []dto.SkillView

	// Онбординг
	CreateWorkerProfile(userID string, input *dto.CreateWorkerProfileInput) (*dto.WorkerProfileView, error)
	CreateJobPosting(userID string, input *dto.CreateJobPostingInput) (*dto.JobPostingView, error)

	// Редактирование полей самого пользователя
	UpdateMyProfile(userID string, input *dto.UpdateMyProfileInput) (*dto.UserProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	swipeRepo   repositories.SwipeRepository
	skillRepo   repositories.SkillRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	swipeRepo repositories.SwipeRepository,
	skillRepo repositories.SkillRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
		skillRepo:   skillRepo,
	}
}

// GetUserRoles читает авторитетные флаги ролей из записи пользователя.
// Отсутствующий пользователь или ошибка хранилища — обе роли false.
func (s *ProfileServiceImpl) GetUserRoles(userID string) *dto.UserRoles {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.WithError(err).Error("failed to load user roles", "user", userID)
		}
		return &dto.UserRoles{}
	}

	return &dto.UserRoles{
		IsWorker:   user.HasWorkerProfile,
		IsEmployer: user.HasEmployerProfile,
	}
}

// GetSwipeableCards возвращает колоду для активной роли: работник смотрит
// вакансии, работодатель — анкеты. Свои элементы и все, на что уже был
// свайп в любую сторону, исключаются. Без ранжирования и пагинации —
// полный скан, фильтрация в приложении.
func (s *ProfileServiceImpl) GetSwipeableCards(userID string, role models.Role) []dto.Card {
	swiped := s.swipedItemIDs(userID)

	cards := []dto.Card{}
	switch role {
	case models.RoleWorker:
		postings, err := s.profileRepo.FindAllJobPostings()
		if err != nil {
			logger.WithError(err).Error("failed to list job postings", "user", userID)
			return cards
		}
		for _, p := range postings {
			if p.UserID == userID || swiped[p.ID] {
				continue
			}
			cards = append(cards, dto.Card{
				ID:       p.ID,
				OwnerID:  p.UserID,
				Name:     p.CompanyName,
				Type:     string(models.ItemTypeJob),
				Title:    p.Skill,
				Skills:   []string{p.Skill},
				ImageURL: p.ImageURL,
			})
		}

	case models.RoleEmployer:
		profiles, err := s.profileRepo.FindAllWorkerProfiles()
		if err != nil {
			logger.WithError(err).Error("failed to list worker profiles", "user", userID)
			return cards
		}
		for _, p := range profiles {
			if p.UserID == userID || swiped[p.ID] {
				continue
			}
			cards = append(cards, dto.Card{
				ID:       p.ID,
				OwnerID:  p.UserID,
				Name:     p.FullName,
				Type:     string(models.ItemTypeWorker),
				Title:    p.Skill,
				Skills:   []string{p.Skill},
				ImageURL: p.ImageURL,
			})
		}
	}

	return cards
}

// GetFavorites — все right-свайпы пользователя, с элементами,
// восстановленными по владельцу: сперва анкета, затем вакансия.
// Нерезолвящиеся элементы выпадают из списка.
func (s *ProfileServiceImpl) GetFavorites(userID string) []dto.ListItem {
	swipes, err := s.swipeRepo.FindRightBySwiper(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load favorites", "user", userID)
		return []dto.ListItem{}
	}
	return s.resolveSwipedItems(swipes)
}

// GetAccepts — пользователи, свайпнувшие right на элементы владельца.
// Дубликаты по свайперу схлопываются, остается первое вхождение.
func (s *ProfileServiceImpl) GetAccepts(userID string) []dto.ListItem {
	swipes, err := s.swipeRepo.FindRightByItemOwner(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load accepts", "user", userID)
		return []dto.ListItem{}
	}

	items := []dto.ListItem{}
	seen := make(map[string]bool)
	for _, sw := range swipes {
		if seen[sw.SwiperUserID] {
			continue
		}
		seen[sw.SwiperUserID] = true

		swiper, err := s.userRepo.FindByID(sw.SwiperUserID)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrUserNotFound) {
				logger.WithError(err).Error("failed to load swiper", "swiper", sw.SwiperUserID)
			}
			continue
		}

		itemType := models.ItemTypeJob
		if swiper.HasWorkerProfile {
			itemType = models.ItemTypeWorker
		}

		items = append(items, dto.ListItem{
			ItemID:   sw.SwipedItemID,
			OwnerID:  swiper.ID,
			Name:     swiper.DisplayName,
			Type:     string(itemType),
			ImageURL: swiper.ImageURL,
			IsMatch:  sw.IsMatch(),
		})
	}

	return items
}

// GetMatches — свайпы пользователя со статусом matched
func (s *ProfileServiceImpl) GetMatches(userID string) []dto.ListItem {
	swipes, err := s.swipeRepo.FindMatchedBySwiper(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load matches", "user", userID)
		return []dto.ListItem{}
	}
	return s.resolveSwipedItems(swipes)
}

// GetUserProfile — пользователь со всеми анкетами и вакансиями,
// таймстемпы в RFC3339. nil, если пользователь не найден.
func (s *ProfileServiceImpl) GetUserProfile(userID string) *dto.UserProfileResponse {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.WithError(err).Error("failed to load user profile", "user", userID)
		}
		return nil
	}

	resp := &dto.UserProfileResponse{
		ID:                 user.ID,
		PhoneNumber:        user.PhoneNumber,
		DisplayName:        user.DisplayName,
		ImageURL:           user.ImageURL,
		HasWorkerProfile:   user.HasWorkerProfile,
		HasEmployerProfile: user.HasEmployerProfile,
		CreatedAt:          user.CreatedAt.Format(time.RFC3339),
		WorkerProfiles:     []dto.WorkerProfileView{},
		JobPostings:        []dto.JobPostingView{},
	}

	profiles, err := s.profileRepo.FindWorkerProfilesByUserID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load worker profiles", "user", userID)
	}
	for _, p := range profiles {
		resp.WorkerProfiles = append(resp.WorkerProfiles, workerProfileView(&p))
	}

	postings, err := s.profileRepo.FindJobPostingsByUserID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load job postings", "user", userID)
	}
	for _, p := range postings {
		resp.JobPostings = append(resp.JobPostings, jobPostingView(&p))
	}

	return resp
}

// GetSkills — каталог навыков по алфавиту; при пустом каталоге или
// ошибке хранилища возвращается фиксированный список по умолчанию.
func (s *ProfileServiceImpl) GetSkills() []dto.SkillView {
	skills, err := s.skillRepo.FindAllOrdered()
	if err != nil {
		logger.WithError(err).Error("failed to load skill catalog")
		skills = nil
	}

	if len(skills) == 0 {
		views := make([]dto.SkillView, 0, len(defaultSkills))
		for _, name := range defaultSkills {
			views = append(views, dto.SkillView{Name: name})
		}
		return views
	}

	views := make([]dto.SkillView, 0, len(skills))
	for _, sk := range skills {
		views = append(views, dto.SkillView{Name: sk.Name})
	}
	return views
}

func (s *ProfileServiceImpl) CreateWorkerProfile(userID string, input *dto.CreateWorkerProfileInput) (*dto.WorkerProfileView, error) {
	profile := &models.WorkerProfile{
		UserID:       userID,
		FullName:     input.FullName,
		Skill:        input.Skill,
		Availability: models.Availability(input.Availability),
		ImageURL:     input.ImageURL,
	}

	if err := s.profileRepo.CreateWorkerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := workerProfileView(profile)
	return &view, nil
}

func (s *ProfileServiceImpl) CreateJobPosting(userID string, input *dto.CreateJobPostingInput) (*dto.JobPostingView, error) {
	posting := &models.JobPosting{
		UserID:         userID,
		CompanyName:    input.CompanyName,
		Skill:          input.Skill,
		JobDescription: input.JobDescription,
		ImageURL:       input.ImageURL,
	}

	if err := s.profileRepo.CreateJobPosting(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := jobPostingView(posting)
	return &view, nil
}

func (s *ProfileServiceImpl) UpdateMyProfile(userID string, input *dto.UpdateMyProfileInput) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.ImageURL != "" {
		user.ImageURL = input.ImageURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetUserProfile(userID), nil
}

// swipedItemIDs собирает id всех элементов, на которые пользователь уже
// свайпал в любую сторону.
func (s *ProfileServiceImpl) swipedItemIDs(userID string) map[string]bool {
	swiped := make(map[string]bool)
	swipes, err := s.swipeRepo.FindBySwiper(userID)
	if err != nil {
		logger.WithError(err).Error("failed to load swipe history", "user", userID)
		return swiped
	}
	for _, sw := range swipes {
		swiped[sw.SwipedItemID] = true
	}
	return swiped
}

// resolveSwipedItems восстанавливает элементы свайпов: сначала проба
// анкеты работника, затем вакансии. Ничего не нашлось — элемент
// пропускается.
func (s *ProfileServiceImpl) resolveSwipedItems(swipes []models.Swipe) []dto.ListItem {
	items := []dto.ListItem{}
	for _, sw := range swipes {
		if profile, err := s.profileRepo.FindWorkerProfileByID(sw.SwipedItemOwnerID, sw.SwipedItemID); err == nil {
			items = append(items, dto.ListItem{
				ItemID:   profile.ID,
				OwnerID:  profile.UserID,
				Name:     profile.FullName,
				Type:     string(models.ItemTypeWorker),
				Title:    profile.Skill,
				ImageURL: profile.ImageURL,
				IsMatch:  sw.IsMatch(),
			})
			continue
		}

		posting, err := s.profileRepo.FindJobPostingByID(sw.SwipedItemOwnerID, sw.SwipedItemID)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrJobPostingNotFound) {
				logger.WithError(err).Error("failed to resolve swiped item", "item", sw.SwipedItemID)
			}
			continue
		}

		items = append(items, dto.ListItem{
			ItemID:   posting.ID,
			OwnerID:  posting.UserID,
			Name:     posting.CompanyName,
			Type:     string(models.ItemTypeJob),
			Title:    posting.Skill,
			ImageURL: posting.ImageURL,
			IsMatch:  sw.IsMatch(),
		})
	}
	return items
}

func workerProfileView(p *models.WorkerProfile) dto.WorkerProfileView {
	return dto.WorkerProfileView{
		ID:           p.ID,
		FullName:     p.FullName,
		Skill:        p.Skill,
		Availability: string(p.Availability),
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

func jobPostingView(p *models.JobPosting) dto.JobPostingView {
	return dto.JobPostingView{
		ID:             p.ID,
		CompanyName:    p.CompanyName,
		Skill:          p.Skill,
		JobDescription: p.JobDescription,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}
