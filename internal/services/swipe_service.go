package services

import (
	"jobswipe_backend/internal/dto"
	"jobswipe_backend/internal/email"
	"jobswipe_backend/internal/logger"
	"jobswipe_backend/internal/models"
	"jobswipe_backend/internal/repositories"
)

type SwipeService interface {
	// RecordSwipe записывает свайп и сообщает, закрыл ли он взаимную пару.
	// Ошибки хранилища не пробрасываются: результат всегда структурный.
	RecordSwipe(swiperID string, input *dto.SwipeInput) *dto.SwipeResult
}

type SwipeServiceImpl struct {
	swipeRepo     repositories.SwipeRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewSwipeService(
	swipeRepo repositories.SwipeRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) SwipeService {
	return &SwipeServiceImpl{
		swipeRepo:     swipeRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *SwipeServiceImpl) RecordSwipe(swiperID string, input *dto.SwipeInput) *dto.SwipeResult {
	if swiperID == "" || input.SwipedItemID == "" || input.SwipedItemOwnerID == "" {
		return &dto.SwipeResult{Success: false, Error: "user and item IDs must be provided"}
	}

	direction := models.SwipeDirection(input.Direction)
	if direction != models.SwipeDirectionLeft && direction != models.SwipeDirectionRight {
		return &dto.SwipeResult{Success: false, Error: "swipe direction must be left or right"}
	}

	if swiperID == input.SwipedItemOwnerID {
		return &dto.SwipeResult{Success: false, Error: "cannot swipe on your own item"}
	}

	swipe := &models.Swipe{
		SwiperUserID:      swiperID,
		SwipedItemID:      input.SwipedItemID,
		SwipedItemOwnerID: input.SwipedItemOwnerID,
		Direction:         direction,
	}

	if direction == models.SwipeDirectionLeft {
		// Отказ терминален, взаимность не проверяется
		swipe.Status = models.SwipeStatusRejected
		if err := s.swipeRepo.Upsert(swipe); err != nil {
			logger.WithError(err).Error("failed to record left swipe",
				"swiper", swiperID, "item", input.SwipedItemID)
			return &dto.SwipeResult{Success: false, Error: "failed to record swipe"}
		}
		return &dto.SwipeResult{Success: true, Match: false}
	}

	matched, err := s.swipeRepo.RecordRightAndDetectMatch(swipe)
	if err != nil {
		logger.WithError(err).Error("failed to record right swipe",
			"swiper", swiperID, "item", input.SwipedItemID)
		return &dto.SwipeResult{Success: false, Error: "failed to record swipe"}
	}

	if matched {
		// После коммита, best-effort: провал доставки не влияет на результат
		s.sendMatchEmail(swiperID, input.SwipedItemOwnerID)
	}

	return &dto.SwipeResult{Success: true, Match: matched}
}

func (s *SwipeServiceImpl) sendMatchEmail(swiperID, ownerID string) {
	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		logger.WithError(err).Warn("match email skipped: owner not found", "owner", ownerID)
		return
	}
	if owner.Email == "" {
		return
	}

	counterpartName := "ваш новый контакт"
	if swiper, err := s.userRepo.FindByID(swiperID); err == nil && swiper.DisplayName != "" {
		counterpartName = swiper.DisplayName
	}

	if err := s.emailProvider.SendMatchNotification(owner.Email, counterpartName); err != nil {
		logger.WithError(err).Warn("failed to send match email", "owner", ownerID)
	}
}
