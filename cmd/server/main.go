package main

import (
	"log"
	"net/http"

	_ "jobhaven/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"jobhaven/internal/auth"
	"jobhaven/internal/cache"
	"jobhaven/internal/config"
	"jobhaven/internal/db"
	"jobhaven/internal/handler"
	"jobhaven/internal/model"
	"jobhaven/internal/repository"
	"jobhaven/internal/router"
	"jobhaven/internal/service"
)

// @title JobHaven API
// @version 1.0
// @description Job board backend: cookie-based session auth, recruiter-gated job posting, public job listings.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	jobService := service.NewJobService(jobRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.FrontendURL)
	jobHandler := handler.NewJobHandler(jobService)

	// Register routes
	router.Register(e, cfg, tokenService, authHandler, jobHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
