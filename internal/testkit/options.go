// Package testkit spins up throwaway Postgres and Redis instances for
// integration tests, backed by testcontainers. External instances can be
// supplied through environment variables to skip container startup entirely
// (useful in CI where services run as sidecars).
package testkit

import (
	"os"
	"strconv"
	"time"
)

// Options controls how test infrastructure is provisioned.
type Options struct {
	PostgresImage string
	RedisImage    string

	// ExternalPostgresDSN and ExternalRedisAddr, when set, bypass container
	// startup and point the suite at already-running instances.
	ExternalPostgresDSN string
	ExternalRedisAddr   string

	StartupTimeout time.Duration

	// KeepAlive leaves containers running after the test run and prints
	// their endpoints, so a failing run can be inspected by hand.
	KeepAlive bool
}

// OptionsFromEnv builds Options from REMIT_TEST_* environment variables,
// falling back to defaults suitable for local runs.
func OptionsFromEnv() Options {
	return Options{
		PostgresImage:       getenv("REMIT_TEST_PG_IMAGE", "postgres:18.1-alpine"),
		RedisImage:          getenv("REMIT_TEST_REDIS_IMAGE", "redis:8.4.0-alpine"),
		ExternalPostgresDSN: os.Getenv("REMIT_TEST_PG_DSN"),
		ExternalRedisAddr:   os.Getenv("REMIT_TEST_REDIS_ADDR"),
		StartupTimeout:      getenvDuration("REMIT_TEST_STARTUP_TIMEOUT", 90*time.Second),
		KeepAlive:           getenvBool("REMIT_TEST_KEEP_ALIVE", false),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Bare numbers are treated as seconds.
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
