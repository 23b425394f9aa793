package config

import (
	"time"

	"thelist/internal/infrastructure"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	EmailAPIKey     string
	EmailSender     string
	EmailSenderName string

	SiteName string
	SiteURL  string

	ResetTokenTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:        infrastructure.GetEnvAsString("PORT", "8080"),
		DatabaseURL: infrastructure.GetEnvAsString("DATABASE_URL", ""),
		JWTSecret:   infrastructure.GetEnvAsString("JWT_SECRET", ""),

		RedisAddr:     infrastructure.GetEnvAsString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: infrastructure.GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:       infrastructure.GetEnvAsInt("REDIS_DB", 0),

		EmailAPIKey:     infrastructure.GetEnvAsString("EMAIL_API_KEY", ""),
		EmailSender:     infrastructure.GetEnvAsString("EMAIL_SENDER", ""),
		EmailSenderName: infrastructure.GetEnvAsString("EMAIL_SENDER_NAME", "Notes"),

		SiteName: infrastructure.GetEnvAsString("SITE_NAME", "Notes"),
		SiteURL:  infrastructure.GetEnvAsString("SITE_URL", "http://127.0.0.1:8080"),

		ResetTokenTTL: infrastructure.GetEnvAsDuration("RESET_TOKEN_TTL", time.Hour),
	}
}
