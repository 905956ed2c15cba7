package services

import (
	"jobswipe_backend/internal/email"
	"jobswipe_backend/internal/otp"
	"jobswipe_backend/internal/repositories"
	"jobswipe_backend/internal/sms"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	SwipeService        SwipeService
	ProfileService      ProfileService
	NotificationService NotificationService
}

// NewServiceContainer связывает репозитории и внешние провайдеры в сервисы.
func NewServiceContainer(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	swipeRepo repositories.SwipeRepository,
	notificationRepo repositories.NotificationRepository,
	skillRepo repositories.SkillRepository,
	otpStore otp.Store,
	smsProvider sms.Provider,
	emailProvider email.Provider,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, otpStore, smsProvider),
		SwipeService:        NewSwipeService(swipeRepo, userRepo, emailProvider),
		ProfileService:      NewProfileService(userRepo, profileRepo, swipeRepo, skillRepo),
		NotificationService: NewNotificationService(notificationRepo),
	}
}
