package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultTokenTTLMinutes = 5
	defaultCheckinBaseURL  = "http://localhost:5173"
	defaultHTTPAddr        = ":8080"
)

type Config struct {
	DBDSN          string
	Environment    string
	HTTPAddr       string
	JWTSecret      string
	TokenTTL       time.Duration // срок жизни QR-токена
	CheckinBaseURL string        // база для ссылки в QR-коде
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    os.Getenv("ENV"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       tokenTTLFromEnv(),
		CheckinBaseURL: os.Getenv("CHECKIN_BASE_URL"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.CheckinBaseURL == "" {
		cfg.CheckinBaseURL = defaultCheckinBaseURL
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

// tokenTTLFromEnv читает TTL токена из окружения; кривое или неположительное
// значение тихо заменяется дефолтом
func tokenTTLFromEnv() time.Duration {
	raw := os.Getenv("ATTENDANCE_TOKEN_TTL_MINUTES")
	if raw == "" {
		return defaultTokenTTLMinutes * time.Minute
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Printf("⚠️  Invalid ATTENDANCE_TOKEN_TTL_MINUTES=%q, falling back to %d minutes", raw, defaultTokenTTLMinutes)
		return defaultTokenTTLMinutes * time.Minute
	}

	return time.Duration(minutes) * time.Minute
}
