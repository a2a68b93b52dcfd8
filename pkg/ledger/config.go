package ledger

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// loadFromEnv parses environment variables into cfg, loading the default
// .env file once per process first. A missing .env file is not an error.
func loadFromEnv[T any](cfg *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrFailedToParseConfig, err)
	}
	return nil
}

// LoadRedisConfig reads RedisConfig from environment variables.
func LoadRedisConfig() (RedisConfig, error) {
	var cfg RedisConfig
	err := loadFromEnv(&cfg)
	return cfg, err
}

// LoadPostgresConfig reads PostgresConfig from environment variables.
func LoadPostgresConfig() (PostgresConfig, error) {
	var cfg PostgresConfig
	err := loadFromEnv(&cfg)
	return cfg, err
}
