// Package main is a small OpenBare client: it builds a server pool from CONFIG_PATH and the env overrides,
// optionally keeps it in sync with the registry and probes its servers, then fetches every url given as
// an argument through the pool. Without arguments it keeps the pool running until SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"openbare/client/adapters"
	"openbare/client/domain"
	"openbare/client/interfaces"
	"openbare/client/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "configuration loaded",
		"servers", len(cfg.Servers),
		"strategy", cfg.Client.Strategy,
		"retries", cfg.Client.Retries,
		"timeout", cfg.Client.Timeout,
		"registry_url", cfg.Client.RegistryURL,
		"auto_health_check", cfg.Client.AutoHealthCheck,
	)

	httpClient := &http.Client{}
	var (
		registry interfaces.Registry
		prober   interfaces.Prober
	)
	if cfg.Client.RegistryURL != "" {
		registry = adapters.RegistryHTTP(cfg.Client.RegistryURL, httpClient)
	}
	if cfg.Client.AutoHealthCheck {
		prober = adapters.HTTPProber(httpClient, cfg.Client.HealthCheckPath)
	}

	client, err := service.NewClient(cfg.Client, adapters.HTTPTransport(httpClient), registry, prober, logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to create client", "err", err)
		os.Exit(1)
	}
	defer client.Close()
	for _, s := range cfg.Servers {
		if err := client.AddServer(s.URL, service.WithPriority(s.Priority)); err != nil {
			level.Error(logger).Log("msg", "failed to add server", "url", s.URL, "err", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// one-shot mode needs the registry snapshot before the first fetch
	if d := client.Discovery(); d != nil && len(os.Args) > 1 {
		if err := d.Refresh(ctx); err != nil {
			level.Warn(logger).Log("msg", "initial registry refresh failed", "err", err)
		}
	}
	client.Start(ctx)

	if len(os.Args) == 1 {
		level.Info(logger).Log("msg", "pool running, waiting for signal")
		<-ctx.Done()
		level.Info(logger).Log("msg", "shutting down")
		return
	}

	failed := false
	for _, target := range os.Args[1:] {
		resp, err := client.Fetch(ctx, domain.Request{Method: http.MethodGet, URL: target})
		if err != nil {
			level.Error(logger).Log("msg", "fetch failed", "url", target, "err", err)
			failed = true
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%d\t%d bytes\tvia %s\n", target, resp.Status, len(resp.Body), resp.Server)
	}
	if failed {
		client.Close()
		os.Exit(1)
	}
}
