package main

import (
	"log"

	"github.com/joho/godotenv"

	"thelist/internal/config"
	"thelist/internal/domain/entities"
	"thelist/internal/infrastructure/db/postgres"
)

// Creates or refreshes the test accounts used for password reset testing.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := postgres.NewUserRepository(db)

	testUsers := []struct {
		username  string
		email     string
		firstName string
		lastName  string
		password  string
	}{
		{"testuser1", "listnote07@gmail.com", "Test", "UserOne", "testpass123"},
		{"testuser2", "listnote07+2@gmail.com", "Test", "UserTwo", "testpass456"},
	}

	for _, tu := range testUsers {
		user := entities.NewUser(tu.username, tu.email, tu.password, tu.firstName, tu.lastName)
		if err := user.HashPassword(); err != nil {
			log.Fatal("Failed to hash password:", err)
		}

		validatedUser, err := entities.NewValidatedUser(user)
		if err != nil {
			log.Fatal("Invalid test user:", err)
		}

		saved, created, err := userRepo.Upsert(validatedUser)
		if err != nil {
			log.Fatal("Failed to save user:", err)
		}

		action := "Updated"
		if created {
			action = "Created"
		}
		log.Printf("%s user: %s (%s)", action, saved.Username, saved.Email)
	}

	log.Println("Test users ready")
}
