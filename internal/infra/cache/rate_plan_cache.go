package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/rate"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store is the slice of the go-redis client the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RatePlanCache is a read-through rate.Catalog. Redis failures degrade to
// the underlying catalog; they never fail rate resolution.
type RatePlanCache struct {
	store  Store
	next   rate.Catalog
	ttl    time.Duration
	logger *slog.Logger
}

func NewRatePlanCache(store Store, next rate.Catalog, ttl time.Duration, logger *slog.Logger) *RatePlanCache {
	return &RatePlanCache{
		store:  store,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

func RatePlanKey(tenantID, propertyID, roomTypeID uuid.UUID) string {
	return "rate_plans:" + tenantID.String() + ":" + propertyID.String() + ":" + roomTypeID.String()
}

func (c *RatePlanCache) PlansFor(ctx context.Context, tenantID, propertyID, roomTypeID uuid.UUID) ([]rate.Plan, error) {
	key := RatePlanKey(tenantID, propertyID, roomTypeID)

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var plans []rate.Plan
		if jsonErr := json.Unmarshal(raw, &plans); jsonErr == nil {
			return plans, nil
		}
		c.logger.Warn("discarding undecodable rate plan cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("rate plan cache read failed", "key", key, "error", err.Error())
	}

	plans, err := c.next.PlansFor(ctx, tenantID, propertyID, roomTypeID)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(plans)
	if err != nil {
		return plans, nil
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.Warn("rate plan cache write failed", "key", key, "error", err.Error())
	}
	return plans, nil
}
