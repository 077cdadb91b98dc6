// internal/core/ports/cache.go
package ports

import (
	"context"
	"errors"
	"time"

	"github.com/ammerola/stowage/internal/core/domain"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	// Basic operations
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	// Advanced operations
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	// Conditional operations
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Ping(ctx context.Context) error
}

// CacheInvalidator drops cached reads that a mutation made stale. Failures
// are logged by the implementation and never returned.
type CacheInvalidator interface {
	// InvalidateInventory drops every cached search result and the scan
	// lookups for the given container codes.
	InvalidateInventory(ctx context.Context, codes ...string)
}

// JobTracker records background job status for polling clients.
type JobTracker interface {
	Create(ctx context.Context, kind domain.JobKind) (*domain.Job, error)
	MarkRunning(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, result any) error
	Fail(ctx context.Context, id string, cause error) error
	// Get returns nil, nil for unknown or expired jobs.
	Get(ctx context.Context, id string) (*domain.Job, error)
}

// ReadCache memoizes hot reads. Cache failures are logged by the
// implementation and the call falls through to fetch.
type ReadCache interface {
	CachedSearch(ctx context.Context, query string, fetch func() (*domain.SearchResults, error)) (*domain.SearchResults, error)
	// CachedScan caches found containers only; a nil result from fetch is
	// returned as is.
	CachedScan(ctx context.Context, code string, fetch func() (*domain.Container, error)) (*domain.Container, error)
}
