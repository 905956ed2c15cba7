package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	SwipeHandler        *SwipeHandler
	ProfileHandler      *ProfileHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
