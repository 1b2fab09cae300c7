package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobboard/internal/auth"
	"jobboard/internal/cache"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/handler"
	"jobboard/internal/mail"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/router"
	"jobboard/internal/service"
	"jobboard/internal/storage"
)

// @title Job Board API
// @version 1.0
// @description Job board API with role-based authorization and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employer{},
		&model.JobSeeker{},
		&model.Job{},
		&model.Resume{},
		&model.Application{},
		&model.Notification{},
		&model.PasswordReset{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
	}

	resumeStore, err := storage.NewClient(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	mailer := mail.NewSMTPMailer(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	employerRepo := repository.NewEmployerRepository(gormDB)
	jobSeekerRepo := repository.NewJobSeekerRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	resumeRepo := repository.NewResumeRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	resetRepo := repository.NewPasswordResetRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, employerRepo, jobSeekerRepo, resetRepo, jwtService, tokenStore, mailer)
	userService := service.NewUserService(userRepo, cacheClient)
	employerService := service.NewEmployerService(employerRepo, userRepo)
	jobSeekerService := service.NewJobSeekerService(jobSeekerRepo, userRepo)
	jobService := service.NewJobService(jobRepo, employerRepo, cacheClient)
	resumeService := service.NewResumeService(resumeRepo, jobSeekerRepo, resumeStore)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, jobSeekerRepo, resumeRepo)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, mailer)
	adminService := service.NewAdminService(userRepo, employerRepo, jobSeekerRepo, jobRepo, resumeRepo, applicationRepo, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	employerHandler := handler.NewEmployerHandler(employerService)
	jobSeekerHandler := handler.NewJobSeekerHandler(jobSeekerService)
	jobHandler := handler.NewJobHandler(jobService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		employerHandler,
		jobSeekerHandler,
		jobHandler,
		resumeHandler,
		applicationHandler,
		notificationHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
