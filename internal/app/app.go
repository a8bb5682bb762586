package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub_backend/database"
	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/handlers"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/routes"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	startTokenCleanup(gormDB)

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Split out of Run so tests can
// mount the router on their own listener and database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// Container groups the pieces initializeHandlers needs beyond the
// services themselves.
type Container struct {
	Services *services.ServiceContainer
	Tokens   *auth.TokenManager
	UserRepo repositories.UserRepository
}

func initializeServices(cfg *config.Config) *Container {
	tokens := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.RefreshTTLDays)*24*time.Hour,
	)

	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("Email delivery disabled, using noop provider")
		emailProvider = email.Noop{}
	}

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()

	authService := services.NewAuthService(userRepo, refreshTokenRepo, tokens, emailProvider)

	return &Container{
		Services: &services.ServiceContainer{
			AuthService:  authService,
			EmailService: emailProvider,
		},
		Tokens:   tokens,
		UserRepo: userRepo,
	}
}

func initializeHandlers(c *Container) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(base, c.Services.AuthService, c.Tokens, c.UserRepo),
	}
}

// startTokenCleanup periodically drops expired refresh_tokens rows so
// revocation lookups stay on a small table.
func startTokenCleanup(db *gorm.DB) {
	repo := repositories.NewRefreshTokenRepository()

	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := repo.DeleteExpired(db); err != nil {
				logger.Warn("refresh token cleanup failed", "error", err)
			}
		}
	}()
}
