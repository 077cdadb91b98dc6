// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

// CacheKeyPrefix defines prefixes for different cache types
type CacheKeyPrefix string

const (
	PrefixSearch    CacheKeyPrefix = "search"
	PrefixScan      CacheKeyPrefix = "scan"
	PrefixJob       CacheKeyPrefix = "job"
	PrefixLock      CacheKeyPrefix = "lock"
	PrefixDashboard CacheKeyPrefix = "dashboard"
)

// Cache provides caching functionality with Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *Cache implements the CacheRepository interface.
var _ ports.CacheRepository = (*Cache)(nil)

// NewCache creates a new cache instance
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) ports.CacheRepository {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// Set stores a value in cache with default TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores a value in cache with custom TTL
func (c *Cache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to marshal cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to set cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache set",
		slog.String("key", key),
		slog.Duration("ttl", ttl))

	return nil
}

// Get retrieves a value from cache
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
			return ports.ErrCacheMiss
		}
		c.logger.ErrorContext(ctx, "failed to get cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.ErrorContext(ctx, "failed to unmarshal cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("unmarshal error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
	return nil
}

// Delete removes a key from cache
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete cache",
			slog.Any("keys", keys),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis del error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache deleted", slog.Any("keys", keys))
	return nil
}

// DeletePattern removes all keys matching a pattern
func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to scan keys",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis scan error: %w", err)
	}

	if len(keys) > 0 {
		return c.Delete(ctx, keys...)
	}

	return nil
}

// GetOrSet retrieves from cache or sets if not found
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{},
	fetch func() (interface{}, error), ttl time.Duration) error {

	// Try to get from cache first
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil // Cache hit
	}

	if !errors.Is(err, ports.ErrCacheMiss) {
		return err
	}

	// Cache miss - fetch and store
	value, err := fetch()
	if err != nil {
		return fmt.Errorf("fetch error: %w", err)
	}

	// Store in cache
	if err := c.SetWithTTL(ctx, key, value, ttl); err != nil {
		// Log but don't fail if cache write fails
		c.logger.WarnContext(ctx, "failed to cache value after fetch",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// SetNX sets a key only if it doesn't exist (useful for locks)
func (c *Cache) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("marshal error: %w", err)
	}

	ok, err := c.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to setnx",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false, fmt.Errorf("redis setnx error: %w", err)
	}

	return ok, nil
}

// Ping checks if Redis is accessible
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.logger.ErrorContext(ctx, "redis ping failed", slog.String("error", err.Error()))
		return fmt.Errorf("redis ping error: %w", err)
	}

	return nil
}

// BuildKey creates a cache key with prefix
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	return strings.Join(append([]string{string(prefix)}, parts...), ":")
}

// SearchKey is the cache key for a normalized search query.
func SearchKey(query string) string {
	return BuildKey(PrefixSearch, strings.ToLower(strings.TrimSpace(query)))
}

// ScanKey is the cache key for an exact container code lookup.
func ScanKey(code string) string {
	return BuildKey(PrefixScan, strings.ToUpper(strings.TrimSpace(code)))
}

// CacheManager serves cached inventory reads and invalidates them after
// mutations
type CacheManager struct {
	cache     ports.CacheRepository
	searchTTL time.Duration
	scanTTL   time.Duration
	logger    *slog.Logger
}

var (
	_ ports.CacheInvalidator = (*CacheManager)(nil)
	_ ports.ReadCache        = (*CacheManager)(nil)
)

// NewCacheManager creates a new cache manager
func NewCacheManager(cache ports.CacheRepository, searchTTL, scanTTL time.Duration, logger *slog.Logger) *CacheManager {
	return &CacheManager{
		cache:     cache,
		searchTTL: searchTTL,
		scanTTL:   scanTTL,
		logger:    logger.With(slog.String("component", "cache_manager")),
	}
}

// CachedSearch returns the cached results for query or runs fetch and
// caches its results
func (m *CacheManager) CachedSearch(ctx context.Context, query string, fetch func() (*domain.SearchResults, error)) (*domain.SearchResults, error) {
	key := SearchKey(query)

	var (
		out      domain.SearchResults
		fetchErr error
	)
	err := m.cache.GetOrSet(ctx, key, &out, func() (interface{}, error) {
		results, err := fetch()
		fetchErr = err
		return results, err
	}, m.searchTTL)
	if fetchErr != nil {
		return nil, fetchErr
	}
	if err != nil {
		m.logger.WarnContext(ctx, "search cache unavailable, querying database",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fetch()
	}
	return &out, nil
}

// CachedScan returns the cached container for code or runs fetch. Misses
// are not cached so a newly created container is found at once.
func (m *CacheManager) CachedScan(ctx context.Context, code string, fetch func() (*domain.Container, error)) (*domain.Container, error) {
	key := ScanKey(code)

	var hit domain.Container
	err := m.cache.Get(ctx, key, &hit)
	if err == nil {
		return &hit, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		m.logger.WarnContext(ctx, "scan cache unavailable, querying database",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	container, err := fetch()
	if err != nil || container == nil {
		return container, err
	}
	if err := m.cache.SetWithTTL(ctx, key, container, m.scanTTL); err != nil {
		m.logger.WarnContext(ctx, "failed to cache scan lookup",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return container, nil
}

// InvalidateInventory drops all search results and the scan entries of codes
func (m *CacheManager) InvalidateInventory(ctx context.Context, codes ...string) {
	if err := m.cache.DeletePattern(ctx, BuildKey(PrefixSearch, "*")); err != nil {
		m.logger.WarnContext(ctx, "failed to invalidate search cache",
			slog.String("error", err.Error()))
	}

	if len(codes) == 0 {
		return
	}
	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		if code != "" {
			keys = append(keys, ScanKey(code))
		}
	}
	if err := m.cache.Delete(ctx, keys...); err != nil {
		m.logger.WarnContext(ctx, "failed to invalidate scan cache",
			slog.Any("codes", codes),
			slog.String("error", err.Error()))
	}
}
