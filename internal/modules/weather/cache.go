// README: Latest-observation cache backed by Redis.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	latestKeyPrefix = "weather:latest:%s"
	// Entries outlive several ingest intervals; a stale entry is refreshed
	// by the next successful ingest or backfilled from Postgres on a miss.
	latestKeyTTL = 2 * time.Hour
)

type Cache struct {
	redis *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{redis: client}
}

func latestKey(city City) string {
	return fmt.Sprintf(latestKeyPrefix, string(city))
}

// SetLatest stores the observation as the newest reading for its city.
// Last write wins; the ingestion job only writes after a successful append.
func (c *Cache) SetLatest(ctx context.Context, o *Observation) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, latestKey(o.City), payload, latestKeyTTL).Err()
}

// Latest returns the cached observation for the city, or (nil, nil) on a
// cache miss. A miss is not ErrNoObservation; only the store can decide that.
func (c *Cache) Latest(ctx context.Context, city City) (*Observation, error) {
	payload, err := c.redis.Get(ctx, latestKey(city)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var o Observation
	if err := json.Unmarshal(payload, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteLatest drops the city's entry so a reader falls through to the
// store. Deleting an absent key is not an error.
func (c *Cache) DeleteLatest(ctx context.Context, city City) error {
	return c.redis.Del(ctx, latestKey(city)).Err()
}

// LatestCache is the cache surface the ingestor and the cached source need;
// satisfied by Cache.
type LatestCache interface {
	Latest(ctx context.Context, city City) (*Observation, error)
	SetLatest(ctx context.Context, o *Observation) error
	DeleteLatest(ctx context.Context, city City) error
}

// LatestReader is the store-side freshness lookup; satisfied by Store.
type LatestReader interface {
	LatestByCity(ctx context.Context, city City) (*Observation, error)
}

// CachedSource serves latest-observation lookups from the cache and falls
// back to the store, backfilling the cache on a miss. Cache failures are
// logged and degrade to store reads rather than failing the query.
type CachedSource struct {
	cache  LatestCache
	store  LatestReader
	logger *slog.Logger
}

func NewCachedSource(cache LatestCache, store LatestReader, logger *slog.Logger) *CachedSource {
	return &CachedSource{cache: cache, store: store, logger: logger}
}

func (s *CachedSource) LatestByCity(ctx context.Context, city City) (*Observation, error) {
	cached, err := s.cache.Latest(ctx, city)
	if err != nil {
		s.logger.Warn("latest observation cache read failed", "city", city, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	o, err := s.store.LatestByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetLatest(ctx, o); err != nil {
		s.logger.Warn("latest observation cache backfill failed", "city", city, "error", err)
	}
	return o, nil
}
