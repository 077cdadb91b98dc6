// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/stowage/internal/adapters/db"
	"github.com/ammerola/stowage/internal/adapters/events"
	redis_a "github.com/ammerola/stowage/internal/adapters/redis_adapter"
	"github.com/ammerola/stowage/internal/adapters/storage"
	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/core/services"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/internal/handlers/middleware"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/pkg/config"
	"github.com/ammerola/stowage/internal/pkg/logger"
	"github.com/ammerola/stowage/migrations"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

// photoRoute serves photos kept on local disk
const photoRoute = "/files/"

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting stowage inventory tracker",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	slogger.Info("loading configuration")
	cfg, err := config.Load(ctx, slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.Bool("auth_required", cfg.Security.AuthRequired),
	)

	// Migrations run before any repository touches the schema
	if !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup(slogger)

	server := setupHTTPServer(ctx, cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		slogger.Info("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	cache          ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	publisher      ports.MovementPublisher
	tokens         *auth.TokenManager
	photoDir       string
	router         *handlers.Router
}

func (d *dependencies) cleanup(logger *slog.Logger) {
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			logger.Warn("failed to close event publisher", slog.String("error", err.Error()))
		}
	}
	if d.asynqClient != nil {
		if err := d.asynqClient.Close(); err != nil {
			logger.Warn("failed to close Asynq client", slog.String("error", err.Error()))
		}
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(redisOptions(cfg))
	if err := redisClient.Ping(ctx).Err(); err != nil {
		deps.cleanup(logger)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	cacheManager := redis_a.NewCacheManager(deps.cache, cfg.Redis.SearchTTL, cfg.Scan.CacheTTL, logger)
	jobs := redis_a.NewJobTracker(deps.cache, redis_a.DefaultJobTTL, logger)

	logger.Info("initializing Asynq client")
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	photos, err := photoStorage(ctx, cfg, logger)
	if err != nil {
		deps.cleanup(logger)
		return nil, err
	}
	deps.photoDir = cfg.FileProcessing.PhotoDir

	if cfg.RabbitMQ.Enabled {
		deps.publisher = events.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
	} else {
		deps.publisher = events.NoopPublisher{}
	}

	deps.tokens = auth.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.JWTIssuer, cfg.Security.JWTExpiration)

	repos := newRepositories(database, logger)

	placement := services.NewPlacementService(database, repos, cacheManager, logger)
	containerService := services.NewContainerService(database, repos, placement, cacheManager, cacheManager, logger)
	itemService := services.NewItemService(database, repos, photos, deps.publisher, cacheManager, cfg.AWS.PhotoPrefix, logger)
	adminService := services.NewAdminService(repos, deps.cache, cacheManager, services.AdminOptions{
		Production: cfg.IsProduction(),
		BcryptCost: cfg.Security.BcryptCost,
	}, logger)

	importMaxSize := int64(cfg.FileProcessing.ImportMaxSizeMB) * 1024 * 1024
	photoMaxSize := int64(cfg.FileProcessing.PhotoMaxSizeMB) * 1024 * 1024
	uploadDir := filepath.Join(cfg.FileProcessing.TempDir, "stowage-imports")

	deps.router = &handlers.Router{
		Locations:      handlers.NewLocationHandler(services.NewLocationService(repos, cacheManager, logger), logger),
		Racks:          handlers.NewRackHandler(services.NewRackService(database, repos, logger), logger),
		ContainerTypes: handlers.NewContainerTypeHandler(services.NewContainerTypeService(repos, logger), logger),
		Containers:     handlers.NewContainerHandler(containerService, placement, logger),
		Items:          handlers.NewItemHandler(itemService, placement, photoMaxSize, logger),
		Search:         handlers.NewSearchHandler(services.NewSearchService(repos, cacheManager, logger), containerService, cfg.Scan.RedirectBase, logger),
		Import:         handlers.NewImportHandler(jobs, deps.asynqClient, importMaxSize, uploadDir, logger),
		Export:         handlers.NewExportHandler(containerService, itemService, logger),
		Admin:          handlers.NewAdminHandler(adminService, jobs, deps.asynqClient, logger),
		Dashboard:      handlers.NewDashboardHandler(database, deps.cache, logger),
	}
	if cfg.Server.EnableHealthCheck {
		deps.router.Health = handlers.NewHealthHandler(database, deps.cache, deps.asynqInspector, Version, cfg.App.Environment, logger)
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func newRepositories(database *db.Database, logger *slog.Logger) services.Repositories {
	return services.Repositories{
		Locations:      db.NewLocationRepository(database, logger),
		Racks:          db.NewRackRepository(database, logger),
		Slots:          db.NewSlotRepository(database, logger),
		Containers:     db.NewContainerRepository(database, logger),
		ContainerTypes: db.NewContainerTypeRepository(database, logger),
		Items:          db.NewItemRepository(database, logger),
		Movements:      db.NewMovementRepository(database, logger),
		Users:          db.NewUserRepository(database, logger),
	}
}

func photoStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.PhotoStorage, error) {
	if dir := cfg.FileProcessing.PhotoDir; dir != "" {
		logger.Info("storing photos on local disk", slog.String("dir", dir))
		return storage.NewLocalStorage(dir, photoRoute, logger), nil
	}

	s3, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}
	return s3, nil
}

func databaseConfig(cfg *config.Config) *db.Config {
	return &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}
}

func redisOptions(cfg *config.Config) *redis.Options {
	return &redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	}
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	adminOnly := middleware.RequireRole(domain.RoleAdmin, cfg.Security.AuthRequired)
	deps.router.Register(mux, adminOnly)

	if deps.photoDir != "" {
		mux.Handle("GET "+photoRoute, http.StripPrefix(photoRoute, http.FileServer(http.Dir(deps.photoDir))))
	}

	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", pprof.Index)
		mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	}

	// Outermost first
	mws := []middleware.Middleware{
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	if cfg.Security.RateLimitRequests > 0 {
		mws = append(mws, middleware.RateLimit(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	mws = append(mws,
		middleware.Compression,
		middleware.Authenticate(deps.tokens, cfg.Security.AuthRequired, logger),
	)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, mws...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		Embedded:    migrations.FS,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
