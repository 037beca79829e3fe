package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"talent-portal-backend/config"
	v1 "talent-portal-backend/internal/delivery/http/v1"
	"talent-portal-backend/internal/repository/postgres"
	"talent-portal-backend/internal/usecase"
	"talent-portal-backend/pkg/auth"
	"talent-portal-backend/pkg/database"
	"talent-portal-backend/pkg/email"
	"talent-portal-backend/pkg/logger"
	"talent-portal-backend/pkg/redis"
	"talent-portal-backend/pkg/validation"
	"talent-portal-backend/pkg/viacep"
)

// @title           Talent Portal API
// @version         1.0
// @description     Recruitment portal backend: candidate profiles, skill catalog and interview scheduling.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talent portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.MigrationsPath, cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional: rate limiting and token revocation degrade
	// gracefully without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be unavailable")
	}

	// 7. Setup supporting services
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour, redis.Client())
	cepClient := viacep.NewClient(cfg.ViaCEPBaseURL, time.Duration(cfg.CEPTimeoutSeconds)*time.Second)

	validate := validator.New()
	validation.RegisterValidators(validate)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, skillRepo, cepClient, emailService, tokens, validate, nil)
	userUC := usecase.NewUserUsecase(userRepo, skillRepo, cepClient, validate)
	managerUC := usecase.NewManagerUsecase(userRepo, emailService, nil)
	skillUC := usecase.NewSkillUsecase(skillRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ManagerUC: managerUC,
		SkillUC:   skillUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
