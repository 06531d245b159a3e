package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 600 * time.Second

// Redis memoizes scrape-derived values, currently the trending skill ranking.
// An unreachable server turns every operation into a no-op: requests still
// succeed, they just pay the scrape each time.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	bypassWarned atomic.Bool
}

func NewRedis(logger *log.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     envAddr(),
		Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] redis unavailable, bypassing: %v", err)
		}
		_ = client.Close()
		client = nil
	}

	return &Redis{client: client, logger: logger}
}

func envAddr() string {
	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	return host + ":" + port
}

func (r *Redis) disabled() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.bypassWarned.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] redis unavailable, bypassing: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.disabled() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON reports whether the key was present and decoded into out.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.disabled() {
		return false, nil
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		r.warnOnce(err)
		return false, err
	case len(raw) == 0:
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.disabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTLFromEnv()
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.disabled() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

// DefaultTTLFromEnv reads REDIS_TTL in whole seconds.
func DefaultTTLFromEnv() time.Duration {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("REDIS_TTL")))
	if err != nil || v <= 0 {
		return defaultTTL
	}
	return time.Duration(v) * time.Second
}
