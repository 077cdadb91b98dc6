// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/stowage/internal/adapters/db"
	redis_a "github.com/ammerola/stowage/internal/adapters/redis_adapter"
	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/pkg/config"
	"github.com/ammerola/stowage/internal/pkg/logger"
	"github.com/ammerola/stowage/migrations"
)

// seederState records import files already loaded so reruns skip them.
type seederState struct {
	ProcessedFiles []string  `json:"processed_files"`
	ProcessedCount int       `json:"processed_count"`
	LastUpdate     time.Time `json:"last_update"`
}

func loadState(path string) seederState {
	var state seederState
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &state)
	}
	return state
}

func saveState(path string, state seederState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// importFiles lists the CSV and XLSX files in dir, sorted by name.
func importFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.csv", "*.xlsx"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return files, nil
}

func importFile(ctx context.Context, importer *services.ImportService, path string, opts domain.ImportOptions) (*domain.ImportResult, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return importer.ImportXLSX(ctx, path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return importer.ImportCSV(ctx, f, opts)
}

func main() {
	var (
		importsDir   = flag.String("imports", "", "Directory of CSV/XLSX import files")
		stateFile    = flag.String("state", "./.seed_state.json", "State file for tracking imported files")
		seedTypes    = flag.Bool("types", true, "Seed the default container types")
		seedAccounts = flag.Bool("accounts", false, "Seed the fixed test accounts (refused in production)")
		migrateMode  = flag.String("migrate", "up", "Schema migrations: up, down, status or skip")
		forceVersion = flag.Int("force-version", -1, "Force the schema version before migrating (clears a dirty state)")
		migrateTypes = flag.String("migrate-types", "", "Migrate legacy container types: dry-run or apply")
		printTokens  = flag.Bool("tokens", false, "Print bearer tokens for the test accounts")
		padDigits    = flag.Int("pad-digits", 0, "Zero-pad container code numbers on import")
		expandQty    = flag.Bool("expand-quantity", false, "Create one item per unit on import")
		dryRun       = flag.Bool("dry-run", false, "Preview import files without modifying the database")
		force        = flag.Bool("force", false, "Reimport files already recorded in the state file")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json")
	slog.SetDefault(slogger)

	if *migrateTypes != "" && *migrateTypes != "dry-run" && *migrateTypes != "apply" {
		fmt.Fprintf(os.Stderr, "invalid -migrate-types %q: want dry-run or apply\n", *migrateTypes)
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx, slogger)
	if err != nil {
		slogger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var files []string
	if *importsDir != "" {
		if files, err = importFiles(*importsDir); err != nil {
			slogger.Error("Failed to find import files", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *dryRun {
		fmt.Printf("[DRY RUN] %d import files found\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", filepath.Base(f))
		}
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	done, err := runSchemaMigrations(ctx, cfg, *migrateMode, *forceVersion, slogger)
	if err != nil {
		slogger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if done {
		return
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     4,
		MinConnections:     1,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
	}, slogger)
	if err != nil {
		slogger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)
	cacheManager := redis_a.NewCacheManager(cache, cfg.Redis.SearchTTL, cfg.Scan.CacheTTL, slogger)

	repos := services.Repositories{
		Locations:      db.NewLocationRepository(database, slogger),
		Racks:          db.NewRackRepository(database, slogger),
		Slots:          db.NewSlotRepository(database, slogger),
		Containers:     db.NewContainerRepository(database, slogger),
		ContainerTypes: db.NewContainerTypeRepository(database, slogger),
		Items:          db.NewItemRepository(database, slogger),
		Movements:      db.NewMovementRepository(database, slogger),
		Users:          db.NewUserRepository(database, slogger),
	}
	admin := services.NewAdminService(repos, cache, cacheManager, services.AdminOptions{
		Production: cfg.IsProduction(),
		BcryptCost: cfg.Security.BcryptCost,
	}, slogger)
	importer := services.NewImportService(database, repos, cacheManager, slogger)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("STOWAGE SEED SUMMARY")
	fmt.Println(strings.Repeat("=", 60))

	if *seedTypes {
		res, err := admin.SeedContainerTypes(ctx)
		if err != nil {
			slogger.Error("Failed to seed container types", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Container types: %d created, %d existing\n", res.Created, res.Existing)
	}

	if *seedAccounts {
		res, err := admin.SeedTestAccounts(ctx)
		if err != nil {
			slogger.Error("Failed to seed test accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Test accounts: %d created, %d reset\n", res.Created, res.Existing)
	}

	opts := domain.ImportOptions{ExpandQuantity: *expandQty, PadDigits: *padDigits}
	state := seederState{}
	if !*force {
		state = loadState(*stateFile)
	}

	var imported, itemsCreated int
	var failed []string
	for i, path := range files {
		name := filepath.Base(path)
		fmt.Printf("PROGRESS: Importing %d/%d: %s\n", i+1, len(files), name)

		if slices.Contains(state.ProcessedFiles, name) {
			slogger.Info("Skipping already imported file", slog.String("file", name))
			continue
		}

		res, err := importFile(ctx, importer, path, opts)
		if err != nil {
			slogger.Error("Failed to import file", slog.String("file", name), slog.String("error", err.Error()))
			failed = append(failed, name)
			continue
		}
		fmt.Printf("SUCCESS: %s - %d rows, %d failed, %d items\n", name, res.Processed, res.Failed, res.ItemsCreated)
		for _, rowErr := range res.Errors {
			fmt.Printf("  row %d: %s\n", rowErr.Row, rowErr.Message)
		}

		imported++
		itemsCreated += res.ItemsCreated
		state.ProcessedFiles = append(state.ProcessedFiles, name)
		state.ProcessedCount = len(state.ProcessedFiles)
		state.LastUpdate = time.Now()
		if err := saveState(*stateFile, state); err != nil {
			slogger.Warn("Failed to save state", slog.String("error", err.Error()))
		}
	}
	if len(files) > 0 {
		fmt.Printf("Import files: %d imported, %d items created\n", imported, itemsCreated)
		for _, name := range failed {
			fmt.Printf("  failed: %s\n", name)
		}
	}

	if *migrateTypes != "" {
		report, err := admin.MigrateContainerTypes(ctx, *migrateTypes == "dry-run")
		if err != nil {
			slogger.Error("Failed to migrate container types", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Type migration (%s): %d total, %d matched, %d unmatched, %d applied, %d failed\n",
			*migrateTypes, report.Total, report.Matched, report.Unmatched, report.Applied, report.Failed)
	}

	if *printTokens {
		if err := printAccountTokens(ctx, cfg, repos); err != nil {
			slogger.Error("Failed to issue tokens", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slogger.Info("Seed operation completed",
		slog.Int("files_imported", imported),
		slog.Int("items_created", itemsCreated),
		slog.Int("failed_files", len(failed)))
}

// runSchemaMigrations applies mode to the schema. It reports true when mode
// ends the run (down and status).
func runSchemaMigrations(ctx context.Context, cfg *config.Config, mode string, forceVersion int, logger *slog.Logger) (bool, error) {
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		Embedded:    migrations.FS,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	if forceVersion >= 0 || mode == "down" || mode == "status" {
		migrator, err := db.NewMigrator(migrationConfig, logger)
		if err != nil {
			return false, err
		}
		defer migrator.Close()

		if forceVersion >= 0 {
			if err := migrator.Force(ctx, forceVersion); err != nil {
				return false, err
			}
		}

		switch mode {
		case "down":
			return true, migrator.Down(ctx)
		case "status":
			status, err := migrator.Status(ctx)
			if err != nil {
				return false, err
			}
			fmt.Printf("Schema version %d (dirty: %t)\n", status.CurrentVersion, status.IsDirty)
			for _, p := range status.Pending {
				fmt.Printf("  pending: %d\n", p.Version)
			}
			return true, nil
		}
	}

	switch mode {
	case "skip":
		return false, nil
	case "up":
		if err := db.ValidateMigrations(migrations.FS); err != nil {
			return false, err
		}
		return false, db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
	default:
		return false, fmt.Errorf("unknown migrate mode %q", mode)
	}
}

func printAccountTokens(ctx context.Context, cfg *config.Config, repos services.Repositories) error {
	if cfg.IsProduction() {
		return fmt.Errorf("%w: tokens are not printed in production", domain.ErrForbidden)
	}

	tokens := auth.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.JWTIssuer, cfg.Security.JWTExpiration)
	fmt.Println("\nBearer tokens:")
	for _, account := range domain.TestAccounts() {
		user, err := repos.Users.FindByEmail(ctx, account.Email)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("  %s: not seeded (run with -accounts)\n", account.Email)
			continue
		}
		if err != nil {
			return err
		}
		token, expires, err := tokens.Issue(user)
		if err != nil {
			return err
		}
		fmt.Printf("  %s (%s, expires %s):\n    %s\n", account.Email, user.Role, expires.Format(time.RFC3339), token)
	}
	return nil
}
