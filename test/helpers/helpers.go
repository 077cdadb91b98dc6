// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/ammerola/stowage/internal/adapters/db"
	"github.com/ammerola/stowage/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/migrations"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t testing.TB) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_stowage",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_stowage",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		Embedded:   migrations.FS,
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t testing.TB) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "stowage-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_stowage",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:      "localhost",
			Port:      "6379",
			DB:        0,
			TTL:       time.Hour,
			SearchTTL: time.Minute,
			PoolSize:  10,
		},
		RabbitMQ: config.RabbitMQConfig{
			Exchange: "stowage.test",
		},
		FileProcessing: config.FileProcessingConfig{
			ImportMaxSizeMB:   5,
			PhotoMaxSizeMB:    2,
			ProcessingTimeout: time.Minute,
			TempDir:           os.TempDir(),
			CleanupInterval:   time.Hour,
			TempFileMaxAge:    24 * time.Hour,
			PendingUserMaxAge: 30 * 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-test-secret-test-secret",
			JWTIssuer:         "stowage",
			JWTExpiration:     time.Hour,
			BcryptCost:        4,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Scan: config.ScanConfig{
			RedirectBase: "http://stowage.test",
			CacheTTL:     time.Minute,
		},
	}
}

// CreateTestLocation creates a test location
func CreateTestLocation(overrides ...func(*domain.Location)) *domain.Location {
	now := time.Now()
	loc := &domain.Location{
		ID:        uuid.New(),
		Name:      "Garage",
		Notes:     "North wall",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, override := range overrides {
		override(loc)
	}
	return loc
}

// CreateTestRack creates a 2x3 test rack in locationID
func CreateTestRack(locationID uuid.UUID, overrides ...func(*domain.Rack)) *domain.Rack {
	now := time.Now()
	rack := &domain.Rack{
		ID:         uuid.New(),
		Name:       "Shelf A",
		Rows:       2,
		Cols:       3,
		LocationID: locationID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, override := range overrides {
		override(rack)
	}
	return rack
}

// CreateTestContainer creates an unplaced test container
func CreateTestContainer(overrides ...func(*domain.Container)) *domain.Container {
	now := time.Now()
	c := &domain.Container{
		ID:          uuid.New(),
		Code:        "BIN-01",
		Label:       "Bin #01",
		Description: "Winter clothes",
		Status:      domain.ContainerActive,
		Placement:   domain.Unplaced(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, override := range overrides {
		override(c)
	}
	return c
}

// CreateTestContainerType creates a rectangular test container type
func CreateTestContainerType(overrides ...func(*domain.ContainerType)) *domain.ContainerType {
	now := time.Now()
	dec := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	ct := &domain.ContainerType{
		ID:         uuid.New(),
		Name:       "Bin",
		CodePrefix: "BIN",
		Shape:      domain.ShapeRectangular,
		Length:     dec(20),
		Width:      dec(10),
		Height:     dec(10),
		Capacity:   dec(2000),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, override := range overrides {
		override(ct)
	}
	return ct
}

// CreateTestItem creates an in-storage test item
func CreateTestItem(overrides ...func(*domain.Item)) *domain.Item {
	now := time.Now()
	item := &domain.Item{
		ID:        uuid.New(),
		Name:      "Wool sweater",
		Status:    domain.StatusInStorage,
		Category:  domain.CategoryClothing,
		Condition: domain.ConditionGood,
		Quantity:  1,
		Tags:      []string{"winter"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, override := range overrides {
		override(item)
	}
	return item
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"movements",
		"item_photos",
		"items",
		"containers",
		"slots",
		"racks",
		"locations",
		"container_types",
		"users",
		"pending_users",
	}

	_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", ")))
	require.NoError(t, err, "Failed to truncate tables")
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}
