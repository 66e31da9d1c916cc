package testkit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registration
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresInstance is a running Postgres database for tests, either a
// container managed by the suite or an external one.
type PostgresInstance struct {
	container testcontainers.Container
	dsn       string
}

// DSN returns the connection string for the database.
func (p *PostgresInstance) DSN() string { return p.dsn }

// Stop terminates the container. External instances are left untouched.
func (p *PostgresInstance) Stop(ctx context.Context) error {
	if p.container == nil {
		return nil
	}
	return p.container.Terminate(ctx)
}

func startPostgres(ctx context.Context, opts Options) (*PostgresInstance, error) {
	if opts.ExternalPostgresDSN != "" {
		return &PostgresInstance{dsn: opts.ExternalPostgresDSN}, nil
	}

	ctr, err := postgres.Run(ctx,
		opts.PostgresImage,
		postgres.WithDatabase(freshDBName()),
		postgres.WithUsername("remit_test"),
		postgres.WithPassword("remit_test"),
		testcontainers.WithWaitStrategyAndDeadline(opts.StartupTimeout,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	return &PostgresInstance{container: ctr, dsn: dsn}, nil
}

// freshDBName returns a unique database name so parallel runs never collide.
func freshDBName() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "remit_test"
	}
	return "remit_test_" + hex.EncodeToString(b)
}

// RedisInstance is a running Redis server for tests.
type RedisInstance struct {
	container testcontainers.Container
	addr      string
}

// Addr returns the host:port of the Redis server.
func (r *RedisInstance) Addr() string { return r.addr }

// Stop terminates the container. External instances are left untouched.
func (r *RedisInstance) Stop(ctx context.Context) error {
	if r.container == nil {
		return nil
	}
	return r.container.Terminate(ctx)
}

func startRedis(ctx context.Context, opts Options) (*RedisInstance, error) {
	if opts.ExternalRedisAddr != "" {
		return &RedisInstance{addr: opts.ExternalRedisAddr}, nil
	}

	ctr, err := tcredis.Run(ctx, opts.RedisImage)
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("redis connection string: %w", err)
	}

	// testcontainers hands back a redis:// URL; the clients want host:port.
	u, err := url.Parse(connStr)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("parse redis connection string %q: %w", connStr, err)
	}

	return &RedisInstance{container: ctr, addr: u.Host}, nil
}
