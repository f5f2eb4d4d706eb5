package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barangay-portal/internal/shared/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyPrefix  = "analytics:"
	CacheVersionKey = cacheKeyPrefix + "version"
)

// Cache stores computed snapshots in redis under a shared version. Bumping the
// version orphans every stored snapshot at once; TTL reclaims them.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	logger *zap.Logger
}

func NewCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("analytics.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.cache")
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: l}
}

// SnapshotKey is the redis key of a scope at a cache version.
func SnapshotKey(scopeKey string, version int64) string {
	return fmt.Sprintf("%s%s:v%d", cacheKeyPrefix, scopeKey, version)
}

// Invalidate bumps the version so the next read recomputes.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Incr(ctx, CacheVersionKey).Err()
}

func (c *Cache) version(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, CacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// cached returns the stored snapshot for scopeKey or computes it once across
// concurrent callers. Redis failures fall back to computing directly.
func cached[T any](ctx context.Context, c *Cache, scopeKey string, compute func(context.Context) (T, error)) (T, error) {
	if c == nil || c.rdb == nil {
		return compute(ctx)
	}

	version, err := c.version(ctx)
	if err != nil {
		c.logger.Warn("analytics cache version unavailable", zap.Error(err))
		return compute(ctx)
	}
	key := SnapshotKey(scopeKey, version)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var out T
		if json.Unmarshal(raw, &out) == nil {
			metrics.RecordAnalyticsCache(true)
			return out, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
	}
	metrics.RecordAnalyticsCache(false)

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		out, err := compute(ctx)
		if err != nil {
			return out, err
		}
		if data, err := json.Marshal(out); err == nil {
			if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
				c.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
