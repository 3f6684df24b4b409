package config

import (
	"testing"

	"github.com/futclub/clubmanager/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_PATH", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != "data/futclub.db" {
		t.Fatalf("unexpected DBPath: %q", cfg.DBPath)
	}
	if cfg.SchemaPath != "db/schema.sql" {
		t.Fatalf("unexpected SchemaPath: %q", cfg.SchemaPath)
	}
	if !cfg.AutoInit {
		t.Fatalf("expected AutoInit=true by default")
	}
	if cfg.SeedData {
		t.Fatalf("expected SeedData=false by default")
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("unexpected BcryptCost: %d", cfg.BcryptCost)
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BCRYPT_COST", "2")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for out-of-range BCRYPT_COST")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}
