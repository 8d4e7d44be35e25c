package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"openbare/registry/adapters/myredis"
	"openbare/registry/service"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type RegistryConfig struct {
	HTTPPort    int
	Backend     string
	Redis       myredis.RedisConfig
	PostgresDSN string
	HealthCheck service.HealthCheckConfig
	// HealthCheckPath is appended to http(s) node urls by the http prober.
	HealthCheckPath string
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP is required; REDIS_ADDR and POSTGRES_DSN are required only for their backend.
func LoadConfig() (*RegistryConfig, error) {
	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}

	cfg := &RegistryConfig{
		HTTPPort:        httpPort,
		Backend:         getEnv("STORAGE_BACKEND", BackendMemory),
		HealthCheckPath: getEnv("HEALTH_CHECK_PATH", "/health"),
	}

	switch cfg.Backend {
	case BackendMemory:
	case BackendRedis:
		cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
		if cfg.Redis.Addr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case BackendPostgres:
		cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: want memory, redis or postgres", cfg.Backend)
	}

	interval, err := getEnvMs("HEALTH_CHECK_INTERVAL_MS", service.DefaultHealthCheckInterval)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvMs("HEALTH_CHECK_TIMEOUT_MS", service.DefaultHealthCheckTimeout)
	if err != nil {
		return nil, err
	}
	threshold, err := getEnvInt("HEALTH_CHECK_FAILURE_THRESHOLD", service.DefaultHealthFailureThreshold)
	if err != nil {
		return nil, err
	}
	concurrency, err := getEnvInt("HEALTH_CHECK_CONCURRENCY", service.DefaultHealthCheckConcurrency)
	if err != nil {
		return nil, err
	}
	cfg.HealthCheck = service.HealthCheckConfig{
		Interval:         interval,
		Timeout:          timeout,
		FailureThreshold: threshold,
		Concurrency:      concurrency,
	}
	if err := cfg.HealthCheck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid health check configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvMs(key string, def time.Duration) (time.Duration, error) {
	n, err := getEnvInt(key, int(def.Milliseconds()))
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
