package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the Redis-backed store.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // URL in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // Number of connection attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // Delay between connection attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // Overall timeout for establishing the connection.
	KeyPrefix      string        `env:"REDIS_CREDITS_KEY_PREFIX" envDefault:"credits"`            // Namespace prefix for usage counter keys.
}

// ConnectRedis establishes a Redis connection for a RedisStore, retrying
// per the config before giving up.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}

	for i := 0; i < cfg.RetryAttempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrStoreNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrStoreNotReady
}

// RedisStore implements Store on Redis. Increments use INCRBY, which is
// atomic server-side, so concurrent writers from multiple instances never
// lose an update to the counter itself.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the default "credits" key namespace.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// NewRedisStore creates a Store backed by the given Redis client.
// Panics if client is nil to fail fast during initialization.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	if client == nil {
		panic("ledger: redis client is required")
	}

	s := &RedisStore{
		client:    client,
		keyPrefix: "credits",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// key builds the namespaced counter key for (userID, period).
func (s *RedisStore) key(userID uuid.UUID, period PeriodKey) string {
	return fmt.Sprintf("%s:%s:%s", s.keyPrefix, userID, period)
}

// Get returns the counter for (userID, period), or 0 if absent.
func (s *RedisStore) Get(ctx context.Context, userID uuid.UUID, period PeriodKey) (int64, error) {
	val, err := s.client.Get(ctx, s.key(userID, period)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// Increment atomically adds amount to the counter via INCRBY.
func (s *RedisStore) Increment(ctx context.Context, userID uuid.UUID, period PeriodKey, amount int64) (int64, error) {
	return s.client.IncrBy(ctx, s.key(userID, period), amount).Result()
}

// Periods scans for every counter key stored for userID.
func (s *RedisStore) Periods(ctx context.Context, userID uuid.UUID) ([]PeriodKey, error) {
	pattern := fmt.Sprintf("%s:%s:*", s.keyPrefix, userID)

	var periods []PeriodKey
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		suffix := key[strings.LastIndex(key, ":")+1:]
		period, err := ParsePeriodKey(suffix)
		if err != nil {
			// Foreign keys under our prefix are skipped, not fatal.
			continue
		}
		periods = append(periods, period)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// Delete removes the counter for (userID, period).
func (s *RedisStore) Delete(ctx context.Context, userID uuid.UUID, period PeriodKey) error {
	return s.client.Del(ctx, s.key(userID, period)).Err()
}
