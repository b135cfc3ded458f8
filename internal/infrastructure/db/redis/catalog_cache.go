package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travelhub/booking-system/internal/core/domain"
)

const catalogKey = "catalog:destinations"
const catalogTTL = 5 * time.Minute

// CatalogCache stores the destination list in Redis as a JSON value.
// The list is small and read-mostly; whole-list caching with a short TTL
// keeps invalidation trivial (one key, dropped on any catalog write).
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached destination list, reporting false on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Destination, bool, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(raw, &destinations); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}
	return destinations, true, nil
}

// Set stores the destination list (expires after catalogTTL).
func (c *CatalogCache) Set(ctx context.Context, destinations []domain.Destination) error {
	raw, err := json.Marshal(destinations)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, catalogTTL).Err()
}

// Invalidate drops the cached list.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
