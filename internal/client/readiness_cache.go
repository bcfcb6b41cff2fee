package client

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const readinessKeyPrefix = "media:ready:"

// ReadinessCache remembers videos already known to be uploaded
type ReadinessCache interface {
	IsReady(ctx context.Context, providerVideoID string) (bool, error)
	MarkReady(ctx context.Context, providerVideoID string) error
}

type redisReadinessCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisReadinessCache creates a ReadinessCache backed by Redis
func NewRedisReadinessCache(rdb *redis.Client, ttl time.Duration) ReadinessCache {
	return &redisReadinessCache{rdb: rdb, ttl: ttl}
}

func (c *redisReadinessCache) IsReady(ctx context.Context, providerVideoID string) (bool, error) {
	_, err := c.rdb.Get(ctx, readinessKeyPrefix+providerVideoID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisReadinessCache) MarkReady(ctx context.Context, providerVideoID string) error {
	return c.rdb.Set(ctx, readinessKeyPrefix+providerVideoID, "1", c.ttl).Err()
}

// CachedMediaChecker consults the cache before the provider.
// Only positive answers are cached.
type CachedMediaChecker struct {
	client MediaClient
	cache  ReadinessCache
	logger *zap.Logger
}

// NewCachedMediaChecker wraps client with cache. A nil cache disables caching.
func NewCachedMediaChecker(client MediaClient, cache ReadinessCache, logger *zap.Logger) *CachedMediaChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedMediaChecker{client: client, cache: cache, logger: logger}
}

// CheckReady implements MediaChecker
func (c *CachedMediaChecker) CheckReady(ctx context.Context, providerVideoIDs []string) (map[string]bool, error) {
	results := make(map[string]bool, len(providerVideoIDs))
	for _, id := range providerVideoIDs {
		if c.cache != nil {
			ready, err := c.cache.IsReady(ctx, id)
			if err != nil {
				c.logger.Warn("Readiness cache lookup failed", zap.String("provider_video_id", id), zap.Error(err))
			} else if ready {
				results[id] = true
				continue
			}
		}

		ready, err := c.client.CheckUploadStatus(ctx, id)
		if err != nil {
			return nil, err
		}
		results[id] = ready

		if ready && c.cache != nil {
			if err := c.cache.MarkReady(ctx, id); err != nil {
				c.logger.Warn("Failed to cache media readiness", zap.String("provider_video_id", id), zap.Error(err))
			}
		}
	}
	return results, nil
}
