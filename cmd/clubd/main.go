package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"

	"github.com/futclub/clubmanager/internal/config"
	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/infrastructure/repository/sqlite"
	"github.com/futclub/clubmanager/internal/platform/logging"
	"github.com/futclub/clubmanager/internal/security"
	"github.com/futclub/clubmanager/internal/usecase"
)

// Accounts created by the seed script with a placeholder credential. The
// seed command replaces the placeholder with a real hash of the dev password.
const (
	seedPassword    = "password123"
	placeholderHash = "!"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close store", "error", err)
		}
	}()

	cmd := strings.ToLower(strings.TrimSpace(os.Args[1]))
	switch cmd {
	case "init":
		err = runInit(ctx, cfg, db, logger)
	case "seed":
		err = runSeed(ctx, cfg, db, logger)
	case "report":
		err = runReport(ctx, cfg, db, logger)
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func runInit(ctx context.Context, cfg config.Config, db *database.DB, logger *logging.Logger) error {
	loader := database.NewSchemaLoader(db, logger)
	if err := loader.ApplyFile(ctx, cfg.SchemaPath); err != nil {
		return err
	}
	logger.InfoContext(ctx, "schema applied", "path", cfg.SchemaPath)
	return nil
}

func runSeed(ctx context.Context, cfg config.Config, db *database.DB, logger *logging.Logger) error {
	if err := runInit(ctx, cfg, db, logger); err != nil {
		return err
	}

	loader := database.NewSchemaLoader(db, logger)
	if err := loader.ApplyFile(ctx, cfg.SeedPath); err != nil {
		return err
	}

	if err := setSeedPasswords(ctx, db, cfg.BcryptCost); err != nil {
		return err
	}

	logger.InfoContext(ctx, "seed data applied", "path", cfg.SeedPath)
	return nil
}

// setSeedPasswords gives the seeded accounts a usable credential. Accounts
// whose password was already set are left alone.
func setSeedPasswords(ctx context.Context, db *database.DB, cost int) error {
	users := sqlite.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cost)

	for _, username := range []string{"admin", "coach.smith", "analyst.jones"} {
		u, found, err := users.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("get seeded user %s: %w", username, err)
		}
		if !found || u.PasswordHash != placeholderHash {
			continue
		}

		hash, err := hasher.Hash(seedPassword)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		u.PasswordHash = hash
		if err := users.Update(ctx, u); err != nil {
			return fmt.Errorf("update seeded user %s: %w", username, err)
		}
	}
	return nil
}

func runReport(ctx context.Context, _ config.Config, db *database.DB, logger *logging.Logger) error {
	service := usecase.NewDashboardService(
		sqlite.NewPlayerRepository(db),
		sqlite.NewMatchRepository(db),
		sqlite.NewSessionRepository(db),
		sqlite.NewPlayerStatsRepository(db),
		logger,
	)

	// The report runs offline with full read access.
	actor := user.User{Role: user.RoleAdministrator, Active: true}
	snap, err := service.GetSnapshot(ctx, actor)
	if err != nil {
		return err
	}

	out, err := sonic.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printUsage() {
	fmt.Println("usage: clubd <command>")
	fmt.Println("commands:")
	fmt.Println("  init    apply the schema script")
	fmt.Println("  seed    apply schema and development fixtures")
	fmt.Println("  report  print the club snapshot as JSON")
}
