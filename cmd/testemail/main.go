package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"thelist/internal/config"
	"thelist/internal/infrastructure"
)

// Sends a test email to verify the delivery configuration.
func main() {
	email := flag.String("email", "listnote07@gmail.com", "recipient address for the test email")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.EmailAPIKey == "" {
		log.Fatal("EMAIL_API_KEY is required")
	}

	log.Println("Testing email configuration...")
	log.Println("From:", cfg.EmailSender)

	emailService := infrastructure.NewEmailService(cfg.EmailAPIKey, cfg.EmailSenderName, cfg.EmailSender)
	err := emailService.Send(context.Background(), *email,
		"Email Configuration Test",
		"This is a test email to verify email configuration.", "")
	if err != nil {
		log.Fatalf("Email failed: %v", err)
	}

	log.Printf("Email sent successfully to %s", *email)
}
