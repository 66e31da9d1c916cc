package testkit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

// Suite owns the test infrastructure for a package's integration tests.
// Start it once from TestMain via Run.
type Suite struct {
	mu       sync.Mutex
	opts     Options
	postgres *PostgresInstance
	redis    *RedisInstance
	started  bool
}

var (
	sharedSuite *Suite
	sharedOnce  sync.Once
)

// Shared returns the process-wide suite, configured from the environment.
func Shared() *Suite {
	sharedOnce.Do(func() {
		sharedSuite = &Suite{opts: OptionsFromEnv()}
	})
	return sharedSuite
}

// Start provisions Postgres and Redis. Calling Start on an already started
// suite is an error.
func (s *Suite) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("suite already started")
	}

	pg, err := startPostgres(ctx, s.opts)
	if err != nil {
		return fmt.Errorf("suite postgres: %w", err)
	}

	rdb, err := startRedis(ctx, s.opts)
	if err != nil {
		if !s.opts.KeepAlive {
			_ = pg.Stop(ctx)
		}
		return fmt.Errorf("suite redis: %w", err)
	}

	s.postgres = pg
	s.redis = rdb
	s.started = true
	return nil
}

// Stop tears down the infrastructure unless KeepAlive is set, in which case
// the endpoints are printed for manual inspection.
func (s *Suite) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false

	if s.opts.KeepAlive {
		fmt.Println("REMIT_TEST_KEEP_ALIVE=true, leaving containers running")
		fmt.Println("  postgres:", s.postgres.DSN())
		fmt.Println("  redis:   ", s.redis.Addr())
		return
	}

	if err := s.redis.Stop(ctx); err != nil {
		fmt.Println("warning: stop redis container:", err)
	}
	if err := s.postgres.Stop(ctx); err != nil {
		fmt.Println("warning: stop postgres container:", err)
	}
}

// PostgresDSN returns the DSN of the running test database.
func (s *Suite) PostgresDSN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postgres == nil {
		return ""
	}
	return s.postgres.DSN()
}

// RedisAddr returns the host:port of the running test Redis.
func (s *Suite) RedisAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redis == nil {
		return ""
	}
	return s.redis.Addr()
}

// Run starts the suite, runs any setup hooks (migrations, seed data), executes
// the test binary, and stops the suite. Call it from TestMain.
func (s *Suite) Run(m *testing.M, hooks ...func() error) {
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "test infrastructure failed to start: %v\n", err)
		os.Exit(1)
	}

	for _, hook := range hooks {
		if err := hook(); err != nil {
			fmt.Fprintf(os.Stderr, "test setup hook failed: %v\n", err)
			s.Stop(ctx)
			os.Exit(1)
		}
	}

	code := m.Run()

	s.Stop(ctx)
	os.Exit(code)
}

// Run delegates to the shared suite. Most packages only need this.
func Run(m *testing.M, hooks ...func() error) {
	Shared().Run(m, hooks...)
}
