package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Manuhps/SIC-Grupo8/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	Port      string

	// Startup connection retry policy.
	DBConnectAttempts int
	DBConnectDelay    time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		Port:              os.Getenv("PORT"),
		DBConnectAttempts: envInt("DB_CONNECT_ATTEMPTS", 10),
		DBConnectDelay:    time.Duration(envInt("DB_CONNECT_DELAY", 5)) * time.Second,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// InitDatabase connects to postgres, retrying a bounded number of times
// with a fixed delay, then creates the schema if missing.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		log.Printf("database connection failed (attempt %d/%d): %v", attempt, cfg.DBConnectAttempts, err)
		if attempt < cfg.DBConnectAttempts {
			time.Sleep(cfg.DBConnectDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after %d attempts: %w", cfg.DBConnectAttempts, err)
	}

	if err := db.AutoMigrate(&models.Event{}, &models.Registration{}); err != nil {
		return nil, err
	}

	return db, nil
}
