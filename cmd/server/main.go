package main

import (
	"log"

	"github.com/joho/godotenv"

	"thelist/internal/application/services"
	"thelist/internal/config"
	"thelist/internal/delivery/handler"
	"thelist/internal/infrastructure"
	"thelist/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := postgres.NewUserRepository(db)
	listRepo := postgres.NewTodoListRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	emailService := infrastructure.NewEmailService(cfg.EmailAPIKey, cfg.EmailSenderName, cfg.EmailSender)
	resetTokens := infrastructure.NewResetTokenService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	rateLimiter := infrastructure.NewRateLimiter(services.DefaultRateLimitWindow, services.DefaultRateLimitAttempts)

	userService := services.NewUserService(userRepo, jwtService, emailService, resetTokens, rateLimiter, cfg.SiteName, cfg.SiteURL)
	todoService := services.NewTodoService(listRepo, taskRepo)

	e := handler.NewRouter(userService, todoService, jwtService)

	log.Println("Server running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
