// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/stowage/internal/adapters/db"
	redis_a "github.com/ammerola/stowage/internal/adapters/redis_adapter"
	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/internal/pkg/config"
	"github.com/ammerola/stowage/internal/pkg/logger"
	"github.com/ammerola/stowage/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")
	ctx := context.Background()

	cfg, err := config.Load(ctx, slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	database, err := initDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
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
	jobs := redis_a.NewJobTracker(cache, redis_a.DefaultJobTTL, slogger)

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

	importService := services.NewImportService(database, repos, cacheManager, slogger)
	adminService := services.NewAdminService(repos, cache, cacheManager, services.AdminOptions{
		Production: cfg.IsProduction(),
		BcryptCost: cfg.Security.BcryptCost,
	}, slogger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: healthCheck,
		Logger:          newAsynqLogger(slogger),
	})

	mux := asynq.NewServeMux()

	importProcessor := workers.NewImportProcessor(importService, jobs, slogger)
	mux.HandleFunc(workers.TypeImportCSV, importProcessor.ProcessCSV)
	mux.HandleFunc(workers.TypeImportXLSX, importProcessor.ProcessXLSX)

	migrateProcessor := workers.NewMigrateProcessor(adminService, jobs, slogger)
	mux.HandleFunc(workers.TypeMigrateTypes, migrateProcessor.ProcessMigrate)

	cleanupProcessor := workers.NewCleanupProcessor(repos.Users, workers.CleanupOptions{
		TempDir:           cfg.FileProcessing.TempDir,
		TempFileMaxAge:    cfg.FileProcessing.TempFileMaxAge,
		PendingUserMaxAge: cfg.FileProcessing.PendingUserMaxAge,
	}, slogger)
	mux.HandleFunc(workers.TypeCleanupTempFiles, cleanupProcessor.CleanupTempFiles)
	mux.HandleFunc(workers.TypeCleanupPending, cleanupProcessor.CleanupPendingUsers)

	scheduler, err := newScheduler(redisOpt, cfg.FileProcessing.CleanupInterval, slogger)
	if err != nil {
		slogger.Error("failed to register periodic tasks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()
	if err := scheduler.Start(); err != nil {
		slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// newScheduler enqueues both cleanup tasks on the low queue every interval
func newScheduler(redisOpt asynq.RedisClientOpt, interval time.Duration, logger *slog.Logger) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger:   newAsynqLogger(logger),
		Location: time.UTC,
	})

	spec := fmt.Sprintf("@every %s", interval)
	for _, taskType := range []string{workers.TypeCleanupTempFiles, workers.TypeCleanupPending} {
		if _, err := scheduler.Register(spec, asynq.NewTask(taskType, nil), asynq.Queue("low"), asynq.MaxRetry(1)); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", taskType, err)
		}
	}
	return scheduler, nil
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	dbConfig := &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}

	return db.NewDatabase(ctx, dbConfig, logger)
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
