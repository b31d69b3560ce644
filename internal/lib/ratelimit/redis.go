package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local interval_ms = tonumber(ARGV[3])
	local ttl_seconds = tonumber(ARGV[4])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])
	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals)
		last_refill = last_refill + (intervals * interval_ms)
	end

	local allowed = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)
	return { allowed, tokens }
`)

type Redis struct {
	rdb      *redis.Client
	prefix   string
	capacity int
	interval time.Duration
}

func NewRedis(rdb *redis.Client, prefix string, rps float64, burst int) *Redis {
	interval := time.Millisecond
	if rps > 0 {
		interval = max(time.Duration(float64(time.Second)/rps), time.Millisecond)
	}
	return &Redis{
		rdb:      rdb,
		prefix:   prefix,
		capacity: max(burst, 1),
		interval: interval,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	args := []any{
		time.Now().UnixMilli(),
		r.capacity,
		r.interval.Milliseconds(),
		int64(clientTTL / time.Second),
	}
	res, err := tokenBucket.Run(ctx, r.rdb, []string{r.prefix + ":" + key}, args...).Int64Slice()
	if err != nil {
		return false, fmt.Errorf("ratelimit: redis script: %w", err)
	}
	if len(res) != 2 {
		return false, fmt.Errorf("ratelimit: unexpected script result %v", res)
	}
	return res[0] == 1, nil
}

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ratelimit: redis ping %s: %w", addr, err)
	}
	return client, nil
}
