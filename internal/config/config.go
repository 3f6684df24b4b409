package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/futclub/clubmanager/internal/platform/logging"
)

// Config stores runtime configuration for the club manager.
type Config struct {
	AppEnv     string
	DBPath     string
	SchemaPath string
	SeedPath   string
	AutoInit   bool
	SeedData   bool
	BcryptCost int
	LogLevel   logging.Level
}

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	autoInit, err := strconv.ParseBool(getEnv("DB_AUTO_INIT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_AUTO_INIT: %w", err)
	}

	seedData, err := strconv.ParseBool(getEnv("DB_SEED_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_SEED_DATA: %w", err)
	}

	bcryptCost, err := getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return Config{}, fmt.Errorf("parse BCRYPT_COST: %w", err)
	}
	if bcryptCost < 4 || bcryptCost > 31 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}

	dbPath := strings.TrimSpace(getEnv("DB_PATH", "data/futclub.db"))
	if dbPath == "" {
		return Config{}, fmt.Errorf("DB_PATH is required")
	}

	return Config{
		AppEnv:     appEnv,
		DBPath:     dbPath,
		SchemaPath: strings.TrimSpace(getEnv("DB_SCHEMA_PATH", "db/schema.sql")),
		SeedPath:   strings.TrimSpace(getEnv("DB_SEED_PATH", "db/seed_data.sql")),
		AutoInit:   autoInit,
		SeedData:   seedData,
		BcryptCost: bcryptCost,
		LogLevel:   parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case EnvDev:
		return EnvDev, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q", v)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
