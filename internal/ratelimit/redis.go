package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Redis is a sliding-window limiter shared by every instance pointing at
// the same server. Each key is a sorted set of request timestamps.
type Redis struct {
	client *redis.Client
	prefix string
	max    int
	window time.Duration
	now    func() time.Time
}

func NewRedis(client *redis.Client, prefix string, max int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		max:    max,
		window: window,
		now:    time.Now,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	now := r.now()
	k := r.prefix + key
	member := uuid.NewString()
	cutoff := strconv.FormatInt(now.Add(-r.window).UnixMicro(), 10)

	var card *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, k, "-inf", cutoff)
		p.ZAdd(ctx, k, &redis.Z{Score: float64(now.UnixMicro()), Member: member})
		card = p.ZCard(ctx, k)
		p.PExpire(ctx, k, r.window)
		return nil
	})
	if err != nil {
		return false, err
	}

	if card.Val() > int64(r.max) {
		// rejected requests do not count against the window
		if err := r.client.ZRem(ctx, k, member).Err(); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// NewRedisClient parses a redis:// URL and checks the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

var _ Limiter = (*Redis)(nil)

func (r *Redis) Window() time.Duration { return r.window }
