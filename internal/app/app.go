package app

import (
	"fmt"

	"jobswipe_backend/internal/config"
	"jobswipe_backend/internal/database"
	"jobswipe_backend/internal/email"
	"jobswipe_backend/internal/handlers"
	"jobswipe_backend/internal/logger"
	"jobswipe_backend/internal/middleware"
	"jobswipe_backend/internal/otp"
	"jobswipe_backend/internal/repositories"
	"jobswipe_backend/internal/routes"
	"jobswipe_backend/internal/services"
	"jobswipe_backend/internal/sms"
	"jobswipe_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: database.NewGormLogger(),
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	// Протухшие refresh токены чистятся на старте, фонового воркера нет
	if err := repositories.NewUserRepository(gormDB).CleanExpiredRefreshTokens(); err != nil {
		logger.WithError(err).Warn("Failed to clean expired refresh tokens")
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, gormDB)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	// --- Хранилище OTP кодов ---
	var otpStore otp.Store
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		otpStore = otp.NewRedisStore(redisClient)
		logger.Info("OTP store: redis", "addr", cfg.Redis.Addr)
	} else {
		otpStore = otp.NewMemoryStore()
		logger.Warn("OTP store: in-memory. Коды не переживут рестарт процесса.")
	}

	// --- SMS провайдер ---
	var smsProvider sms.Provider
	switch cfg.SMS.Provider {
	case "mock", "":
		logger.Warn("--- SMS-провайдер отключен. Используется MOCK. ---")
		smsProvider = sms.NewMockProvider()
	default:
		// Реального шлюза пока нет, но конфигурация уже различает провайдеров
		logger.Warn("Unknown sms provider, falling back to mock", "provider", cfg.SMS.Provider)
		smsProvider = sms.NewMockProvider()
	}

	// --- Email провайдер ---
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("Email provider: smtp", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("--- Email-сервис отключен. Используется MOCK. ---")
		emailProvider = email.NewMockProvider()
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	swipeRepo := repositories.NewSwipeRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	skillRepo := repositories.NewSkillRepository(gormDB)

	return services.NewServiceContainer(
		userRepo,
		profileRepo,
		swipeRepo,
		notificationRepo,
		skillRepo,
		otpStore,
		smsProvider,
		emailProvider,
	)
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		SwipeHandler:        handlers.NewSwipeHandler(baseHandler, serviceContainer.SwipeService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, serviceContainer.ProfileService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
