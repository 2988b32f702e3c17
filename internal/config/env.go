package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBDSN     string
	JWTSecret string
	LogFile   string
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", ""),
		DBDSN:     getenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/tripbook?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),
		JWTSecret: getenv("JWT_SECRET", "change-me-in-production"),
		LogFile:   getenv("LOG_FILE", "./logs/app.log"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
