// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wardrobe_backend/internal/feature/clothing/domain/entity"
	"wardrobe_backend/internal/feature/clothing/usecase"
)

const (
	// DefaultTTL is used when no positive ttl is given.
	DefaultTTL = 5 * time.Minute
	// DefaultNamespace prefixes every wardrobe cache key.
	DefaultNamespace = "wardrobe"
)

// CachingClothingRepository decorates a ClothingRepository with a Redis cache
// of the full wardrobe listing. Writes invalidate the namespace.
type CachingClothingRepository struct {
	inner     usecase.ClothingRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ClothingRepository = (*CachingClothingRepository)(nil)

// NewCachingClothingRepository wraps inner. A nil rdb disables caching.
func NewCachingClothingRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ClothingRepository, namespace string) *CachingClothingRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &CachingClothingRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the item and drops the cached listing.
func (c *CachingClothingRepository) Create(ctx context.Context, item *entity.ClothingItem) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if err := c.deleteByPattern(ctx, safe(c.namespace)+":*"); err != nil {
		// best effort; the entry expires after ttl
		slog.Warn("failed to invalidate wardrobe cache", "error", err)
	}
	return nil
}

// List returns the cached listing, falling back to the inner repository.
func (c *CachingClothingRepository) List(ctx context.Context) ([]entity.ClothingItem, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ClothingItem
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingClothingRepository) listKey() string {
	return safe(c.namespace) + ":items:all"
}

// deleteByPattern deletes all keys matching pattern using SCAN.
func (c *CachingClothingRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
