package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openbare/registry/adapters/memory"
	"openbare/registry/adapters/mypostgres"
	"openbare/registry/adapters/myredis"
	"openbare/registry/adapters/probe"
	"openbare/registry/api"
	"openbare/registry/handlers"
	"openbare/registry/interfaces"
	"openbare/registry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting OpenBare registry")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"storage_backend", config.Backend,
		"health_check_interval", config.HealthCheck.Interval,
		"health_check_timeout", config.HealthCheck.Timeout,
		"health_check_failure_threshold", config.HealthCheck.FailureThreshold,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newNodeStore(ctx, config, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create node store", "backend", config.Backend, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	directory := service.NewDirectory(store, service.NewTimeProvider(time.Now), logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Create health checker
	var checker *service.HealthChecker
	{
		prober := probe.SchemeProber(
			probe.HTTPProber(&http.Client{}, config.HealthCheckPath),
			probe.GRPCProber(),
		)
		checker, err = service.NewHealthChecker(directory, prober, config.HealthCheck, service.NewHealthMetrics(registry), logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create health checker", "err", err)
			os.Exit(1)
		}
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		doc, err := api.Load()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load openapi document", "err", err)
			os.Exit(1)
		}
		validator, err := handlers.RequestValidator(doc)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		e.Use(validator)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(directory, checker, logger))
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	checker.Start(ctx)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	checker.Stop()

	level.Info(logger).Log("msg", "Server stopped")
}

// newNodeStore connects the configured backend. The returned func releases its connections.
func newNodeStore(ctx context.Context, config *RegistryConfig, logger log.Logger) (interfaces.NodeStore, func(), error) {
	switch config.Backend {
	case BackendRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		return myredis.NewNodeStore(redisClient, "openbare"), func() { _ = redisClient.Close() }, nil

	case BackendPostgres:
		pool, err := mypostgres.NewPool(ctx, config.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := mypostgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		level.Info(logger).Log("msg", "Connected to Postgres")
		return mypostgres.NewNodeStore(pool), pool.Close, nil

	default:
		level.Warn(logger).Log("msg", "Using in-memory node store, nodes are lost on restart")
		return memory.NewNodeStore(), func() {}, nil
	}
}
