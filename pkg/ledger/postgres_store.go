package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds connection settings for the Postgres-backed store.
type PostgresConfig struct {
	ConnectionString string        `env:"PG_CONN_URL,required"`                        // Connection string to the database.
	MaxOpenConns     int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`           // Maximum number of open connections.
	MaxIdleConns     int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`            // Maximum number of idle connections.
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // Number of connection attempts before giving up.
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // Delay between connection attempts.
}

// ConnectPostgres establishes a pgx connection pool for a PostgresStore,
// retrying with linear backoff before giving up.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}
	poolConfig.MaxConns = cfg.MaxOpenConns
	poolConfig.MinConns = cfg.MaxIdleConns

	for i := 0; i < cfg.RetryAttempts; i++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err := pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrStoreNotReady, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, ErrStoreNotReady
}

// PostgresStore implements Store on Postgres. Increments use an upsert so
// the counter update is a single atomic server-side statement; this is the
// stricter backend for deployments where lost updates across concurrent
// writers are unacceptable.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Store backed by the given connection pool.
// Panics if pool is nil to fail fast during initialization.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("ledger: pgx pool is required")
	}
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the counter table if it does not exist yet.
// The schema is a single table, so no migration tooling is involved.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS credit_usage (
			user_id    UUID   NOT NULL,
			period_key TEXT   NOT NULL,
			used_count BIGINT NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, period_key)
		)`)
	return err
}

// Get returns the counter for (userID, period), or 0 if absent.
func (s *PostgresStore) Get(ctx context.Context, userID uuid.UUID, period PeriodKey) (int64, error) {
	var used int64
	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(
			(SELECT used_count FROM credit_usage WHERE user_id = $1 AND period_key = $2),
			0
		)`, userID, string(period)).Scan(&used)
	if err != nil {
		return 0, err
	}
	return used, nil
}

// Increment upserts the counter row and returns the new value.
func (s *PostgresStore) Increment(ctx context.Context, userID uuid.UUID, period PeriodKey, amount int64) (int64, error) {
	var used int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO credit_usage (user_id, period_key, used_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, period_key)
		DO UPDATE SET used_count = credit_usage.used_count + EXCLUDED.used_count
		RETURNING used_count`, userID, string(period), amount).Scan(&used)
	if err != nil {
		return 0, err
	}
	return used, nil
}

// Periods lists every period with a stored counter for userID.
func (s *PostgresStore) Periods(ctx context.Context, userID uuid.UUID) ([]PeriodKey, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT period_key FROM credit_usage WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []PeriodKey
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		period, err := ParsePeriodKey(raw)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// Delete removes the counter for (userID, period).
func (s *PostgresStore) Delete(ctx context.Context, userID uuid.UUID, period PeriodKey) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM credit_usage WHERE user_id = $1 AND period_key = $2`,
		userID, string(period))
	return err
}
