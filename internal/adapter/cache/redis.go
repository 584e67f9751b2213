// Package cache provides a Redis-backed itinerary result cache. Cache
// failures are never surfaced to callers; a broken cache degrades to a slower
// search, not a failed one.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-booking/flight-booking-backend/internal/config"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// RedisCache implements usecase.ItineraryCache on Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedis creates a RedisCache from configuration.
func NewRedis(cfg config.RedisConfig, log *logger.Logger) *RedisCache {
	if log == nil {
		log = logger.Nop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisCache{client: client, ttl: cfg.TTL, log: log}
}

// Ping verifies connectivity at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Get implements usecase.ItineraryCache.Get.
func (c *RedisCache) Get(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Itinerary, bool) {
	raw, err := c.client.Get(ctx, cacheKey(criteria)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("Itinerary cache read failed")
		}
		return nil, false
	}

	var itineraries []domain.Itinerary
	if err := json.Unmarshal(raw, &itineraries); err != nil {
		c.log.Warn().Err(err).Msg("Itinerary cache entry corrupt")
		return nil, false
	}
	return itineraries, true
}

// Set implements usecase.ItineraryCache.Set.
func (c *RedisCache) Set(ctx context.Context, criteria domain.SearchCriteria, itineraries []domain.Itinerary) {
	raw, err := json.Marshal(itineraries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(criteria), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Itinerary cache write failed")
	}
}

// cacheKey hashes the full normalized criteria so any parameter change maps
// to a distinct entry.
func cacheKey(criteria domain.SearchCriteria) string {
	raw, _ := json.Marshal(criteria)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("search:itineraries:%s", hex.EncodeToString(sum[:]))
}

var _ usecase.ItineraryCache = (*RedisCache)(nil)
