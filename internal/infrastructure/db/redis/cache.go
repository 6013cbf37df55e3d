package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/premierleague/fixtures-api/internal/core/domain"
)

const (
	// allFixturesKey is the single key under which the full list is cached.
	allFixturesKey = "fixtures:all"
	// listTTL bounds how stale the cached list can get; writes do not evict.
	listTTL = 60 * time.Second
)

// FixtureListCache caches the team-resolved fixture list as a JSON blob.
// Concurrent writers to the key simply overwrite each other, which is
// acceptable given the short TTL.
type FixtureListCache struct {
	client *redis.Client
}

func NewFixtureListCache(client *redis.Client) *FixtureListCache {
	return &FixtureListCache{client: client}
}

// GetAll returns the cached list and whether the key was present.
func (c *FixtureListCache) GetAll(ctx context.Context) ([]*domain.Fixture, bool, error) {
	raw, err := c.client.Get(ctx, allFixturesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var fixtures []*domain.Fixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return fixtures, true, nil
}

// SetAll stores the list with the cache TTL (last writer wins).
func (c *FixtureListCache) SetAll(ctx context.Context, fixtures []*domain.Fixture) error {
	raw, err := json.Marshal(fixtures)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, allFixturesKey, raw, listTTL).Err()
}

// Invalidate drops the cached list. The service does not call this on
// mutations today; the hook exists so write-through eviction can be wired at
// the call sites if bounded staleness stops being acceptable.
func (c *FixtureListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, allFixturesKey).Err()
}
