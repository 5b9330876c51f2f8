package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	dom "Bluecroft/internal/domain"
)

const keyValuation = "valuation:"

// ValuationCache caches area-valuation lookups in Redis. The AI search
// call is slow and billed per request; the local market does not change
// within a session, so a TTL cache per address is safe.
type ValuationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewValuationCache(rdb *redis.Client, ttl time.Duration) *ValuationCache {
	return &ValuationCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached valuation for the address, or nil on miss.
func (c *ValuationCache) Get(ctx context.Context, address string) (*dom.AreaValuation, error) {
	b, err := c.rdb.Get(ctx, keyValuation+normalizeAddress(address)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v dom.AreaValuation
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Set stores a valuation under its address.
func (c *ValuationCache) Set(ctx context.Context, address string, v dom.AreaValuation) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyValuation+normalizeAddress(address), b, c.ttl).Err()
}

func normalizeAddress(addr string) string {
	return strings.Join(strings.Fields(strings.ToLower(addr)), " ")
}
