package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/retail-backoffice/pkg/logger"
)

// ReportCache caches rendered analytics responses in Redis. Revenue
// reports are read-heavy and tolerate short staleness, so a TTL cache
// in front of the aggregation queries absorbs dashboard refreshes.
// A nil cache is valid and disables caching.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, if present
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil || len(payload) == 0 {
		return nil, false
	}

	logger.Debug(ctx).Str("cache_key", key).Msg("Report cache hit")
	return payload, true
}

// Set stores a payload under key with the configured TTL
func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache report")
	}
}

// Key derives a stable cache key from the request method, path and query
func Key(r *http.Request) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s?%s", r.Method, r.URL.Path, r.URL.RawQuery)))
	return "report:" + hex.EncodeToString(sum[:])
}
