package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tgmsites/site-engine/internal/domain"
	"github.com/tgmsites/site-engine/pkg/logger"
)

const keyPrefix = "domain_bindings:"

// RedisBindingCache caches hostname to binding lookups with a short TTL.
// Domain bindings are updated rarely and by external admin tooling only, so
// serving a slightly stale binding is acceptable.
type RedisBindingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewRedisBindingCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) *RedisBindingCache {
	return &RedisBindingCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisBindingCache) key(hostname string) string {
	return keyPrefix + hostname
}

// Get returns the cached binding for a hostname. A missing key is not an
// error; it reports (nil, false, nil).
func (c *RedisBindingCache) Get(ctx context.Context, hostname string) (*domain.DomainBinding, bool, error) {
	payload, err := c.client.Get(ctx, c.key(hostname)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading binding cache for %s: %w", hostname, err)
	}

	var binding domain.DomainBinding
	if err := json.Unmarshal(payload, &binding); err != nil {
		// A corrupt entry behaves like a miss and gets overwritten on the
		// next Set.
		c.logger.Warnf("corrupt binding cache entry for %s: %v", hostname, err)
		return nil, false, nil
	}
	return &binding, true, nil
}

func (c *RedisBindingCache) Set(ctx context.Context, hostname string, binding *domain.DomainBinding) error {
	payload, err := json.Marshal(binding)
	if err != nil {
		return fmt.Errorf("marshaling binding for %s: %w", hostname, err)
	}
	if err := c.client.Set(ctx, c.key(hostname), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing binding cache for %s: %w", hostname, err)
	}
	return nil
}
