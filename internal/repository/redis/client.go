package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// DecisionCache keeps engine decisions in Redis so a repeated position is
// answered without searching again.
type DecisionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect opens a Redis connection. url is either a redis:// URL or a plain
// host:port. A server that does not answer PING is not fatal: the warning is
// logged and nil is returned, so callers run without a cache.
func Connect(ctx context.Context, url string, ttl time.Duration, logger zerolog.Logger) *DecisionCache {
	opts, err := parseOptions(url)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid REDIS_URL, decision cache disabled")
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", opts.Addr).Msg("could not connect to redis, decision cache disabled")
		_ = client.Close()
		return nil
	}

	logger.Info().Str("addr", opts.Addr).Dur("ttl", ttl).Msg("redis decision cache connected")
	return NewDecisionCache(client, ttl)
}

func parseOptions(url string) (*redis.Options, error) {
	if strings.Contains(url, "://") {
		return redis.ParseURL(url)
	}
	if url == "" {
		return nil, errors.New("empty address")
	}
	return &redis.Options{Addr: url}, nil
}

// NewDecisionCache wraps an existing client.
func NewDecisionCache(client *redis.Client, ttl time.Duration) *DecisionCache {
	return &DecisionCache{client: client, ttl: ttl}
}

// GetDecision returns the decision stored under key, or nil when there is none.
func (c *DecisionCache) GetDecision(ctx context.Context, key string) (*domain.Decision, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get decision %s: %w", key, err)
	}

	var decision domain.Decision
	if err := json.Unmarshal(raw, &decision); err != nil {
		return nil, fmt.Errorf("decode decision %s: %w", key, err)
	}
	return &decision, nil
}

// SetDecision stores decision under key with the cache TTL.
func (c *DecisionCache) SetDecision(ctx context.Context, key string, decision domain.Decision) error {
	raw, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("encode decision: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set decision %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection
func (c *DecisionCache) Close() error {
	return c.client.Close()
}
