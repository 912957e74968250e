package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

//go:embed schema.sql
var schemaSQL string

// Config captures the minimal settings required to reach Postgres.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Connect establishes a pgx connection pool and verifies connectivity with a
// ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// Migrate applies the embedded schema. Statements are idempotent so running
// at every boot is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SeedAdmin creates the default admin account if no user with that username
// exists yet. The hash comes from configuration so no cleartext default
// ships with the binary.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, passwordHash string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role)
		 VALUES (gen_random_uuid(), 'admin', $1, 'admin')
		 ON CONFLICT (username) DO NOTHING`,
		passwordHash,
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
