package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"resonate/internal/core/domain"
	"resonate/internal/core/port"
	"resonate/internal/metrics"
)

const keyPrefix = "resonate:publishers:"

// Client is the subset of the go-redis client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// PublisherCache is a read-through cache in front of a publisher
// repository. Cache failures never fail a request: they are logged and the
// repository is consulted instead.
type PublisherCache struct {
	next   port.PublisherRepository
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ port.PublisherRepository = (*PublisherCache)(nil)

// NewPublisherCache wraps next with a cache entry per city that lives for
// ttl.
func NewPublisherCache(next port.PublisherRepository, client Client, ttl time.Duration, logger *slog.Logger) *PublisherCache {
	return &PublisherCache{next: next, client: client, ttl: ttl, logger: logger}
}

// Key returns the cache key of a city's inventory.
func Key(cityID string) string {
	return keyPrefix + cityID
}

// ListPublishers serves the inventory from the cache when present and
// populates it otherwise.
func (c *PublisherCache) ListPublishers(ctx context.Context, cityID string) ([]domain.PublisherProfile, error) {
	key := Key(cityID)

	s, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var pubs []domain.PublisherProfile
		if err = json.Unmarshal([]byte(s), &pubs); err == nil {
			metrics.CacheHitsTotal.Inc()
			return pubs, nil
		}
		c.logger.Warn("discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))
	case !errors.Is(err, goredis.Nil):
		c.logger.Warn("publisher cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	metrics.CacheMissesTotal.Inc()

	pubs, err := c.next.ListPublishers(ctx, cityID)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(pubs)
	if err != nil {
		c.logger.Warn("publisher cache encode failed", slog.String("key", key), slog.Any("error", err))
		return pubs, nil
	}
	if err = c.client.Set(ctx, key, string(b), c.ttl).Err(); err != nil {
		c.logger.Warn("publisher cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return pubs, nil
}

// Invalidate drops the cached inventory of the given cities.
func (c *PublisherCache) Invalidate(ctx context.Context, cityIDs ...string) error {
	if len(cityIDs) == 0 {
		return nil
	}
	keys := make([]string, len(cityIDs))
	for i, id := range cityIDs {
		keys[i] = Key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

// Open creates a go-redis client and verifies the connection.
func Open(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rc := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctxPing).Err(); err != nil {
		_ = rc.Close()
		return nil, eris.Wrap(err, "redis: ping")
	}
	return rc, nil
}
