package maps

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const distanceKeyPrefix = "alterquote:distance:"

// CachedDistance memoises looked-up distances in Redis. Redis failures fall
// through to the wrapped source.
type CachedDistance struct {
	source DistanceSource
	redis  *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCachedDistance(source DistanceSource, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedDistance {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedDistance{source: source, redis: rdb, ttl: ttl, log: log}
}

func (c *CachedDistance) OneWayDistance(ctx context.Context, origin, destination string) (float64, error) {
	key := distanceKey(origin, destination)

	val, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		if d, perr := strconv.ParseFloat(val, 64); perr == nil {
			return d, nil
		}
		c.log.Warn("discarding malformed cached distance", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("distance cache read failed", zap.Error(err))
	}

	d, err := c.source.OneWayDistance(ctx, origin, destination)
	if err != nil {
		return 0, err
	}
	if err := c.redis.Set(ctx, key, strconv.FormatFloat(d, 'g', -1, 64), c.ttl).Err(); err != nil {
		c.log.Warn("distance cache write failed", zap.Error(err))
	}
	return d, nil
}

// distanceKey length-prefixes the origin so no two place pairs share a key.
func distanceKey(origin, destination string) string {
	o := strings.ToLower(strings.TrimSpace(origin))
	d := strings.ToLower(strings.TrimSpace(destination))
	return distanceKeyPrefix + strconv.Itoa(len(o)) + ":" + o + "|" + d
}
