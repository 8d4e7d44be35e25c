package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"openbare/client/domain"
	"openbare/client/interfaces"
	"openbare/helpers"

	"github.com/cenkalti/backoff"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tilinna/clock"
)

// Client wires a ServerPool to a Transport and, optionally, to Discovery and a PoolMonitor.
// Discovery's healthy nodes are synced into the pool after every refresh; manually added servers
// stay until removed. Fetch picks a server per attempt and reports the outcome back into the pool.
type Client struct {
	cfg       domain.ClientConfig
	pool      *ServerPool
	transport interfaces.Transport
	discovery *Discovery
	monitor   *PoolMonitor
	logger    log.Logger
	closed    atomic.Bool
}

// NewClient builds a client from cfg (defaults applied, then validated).
// registry feeds Discovery and may be nil unless cfg.AutoDiscover is set. prober feeds the pool monitor
// and may be nil unless cfg.AutoHealthCheck is set.
//
// Returns: (*Client, nil), or an error for an invalid config or a missing optional dependency.
// Panics on nil transport or logger. Background loops start only in Start.
func NewClient(
	cfg domain.ClientConfig,
	transport interfaces.Transport,
	registry interfaces.Registry,
	prober interfaces.Prober,
	logger log.Logger,
) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	if cfg.AutoDiscover && registry == nil {
		return nil, errors.New("auto discovery needs a registry")
	}
	if cfg.AutoHealthCheck && prober == nil {
		return nil, errors.New("auto health check needs a prober")
	}

	strategy, err := NewStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	c := &Client{
		cfg:       cfg,
		pool:      NewServerPool(strategy),
		transport: helpers.NilPanic(transport, "service.client.go: transport is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.client.go: logger is required"), "component", "client"),
	}
	for _, s := range cfg.Servers {
		if err := c.pool.AddServer(s); err != nil {
			return nil, err
		}
	}

	if registry != nil {
		c.discovery = NewDiscovery(
			registry,
			DiscoveryConfig{Interval: cfg.RefreshInterval, Timeout: cfg.RefreshTimeout, HealthyOnly: cfg.HealthyOnly},
			logger,
			WithOnRefresh(c.syncDiscovered),
		)
	}
	if prober != nil {
		c.monitor = NewPoolMonitor(
			c.pool,
			prober,
			PoolMonitorConfig{Interval: cfg.HealthCheckInterval, Timeout: cfg.HealthCheckTimeout},
			logger,
		)
	}
	return c, nil
}

func (c *Client) syncDiscovered(nodes []domain.Node) {
	urls := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Status == domain.NodeStatusHealthy {
			urls = append(urls, n.URL)
		}
	}
	added, removed := c.pool.SyncDiscovered(urls)
	if added > 0 || removed > 0 {
		level.Info(c.logger).Log("msg", "pool synced with registry", "added", added, "removed", removed)
	}
}

// Start launches the discovery and monitor loops enabled in the config. ctx bounds their lifetime
// and carries the clock they tick on.
func (c *Client) Start(ctx context.Context) {
	if c.closed.Load() {
		return
	}
	if c.discovery != nil && c.cfg.AutoDiscover {
		c.discovery.Start(ctx)
	}
	if c.monitor != nil && c.cfg.AutoHealthCheck {
		c.monitor.Start(ctx)
	}
}

// Discovery returns the client's discovery component, or nil when no registry was given.
func (c *Client) Discovery() *Discovery {
	return c.discovery
}

// Monitor returns the client's pool monitor, or nil when no prober was given.
func (c *Client) Monitor() *PoolMonitor {
	return c.monitor
}

// AddServer adds a manual server. See ServerPool.AddServer.
func (c *Client) AddServer(url string, opts ...ServerOption) error {
	return c.pool.AddServer(url, opts...)
}

// RemoveServer drops url from the pool. A discovered server comes back on the next refresh that lists it.
func (c *Client) RemoveServer(url string) {
	c.pool.RemoveServer(url)
}

// Servers returns a snapshot of every pool entry.
func (c *Client) Servers() []domain.ServerEntry {
	return c.pool.GetAllServers()
}

// HealthyServers returns a snapshot of the healthy entries, the ones Fetch prefers.
func (c *Client) HealthyServers() []domain.ServerEntry {
	return c.pool.GetHealthyServers()
}

// Fetch sends req through a pool server, trying up to Retries more servers on retryable failures.
// A failed server is marked unhealthy so the next attempt prefers another one; a successful one
// is marked healthy and gets its latency updated. When no server is healthy, attempts go to the
// whole pool, so a transient failure never locks a server out.
//
// Returns: the relayed response; ErrNoAvailableServer when the pool is empty; a non-retryable error
// as is; otherwise the last error wrapped with the attempt count.
func (c *Client) Fetch(ctx context.Context, req domain.Request) (domain.Response, error) {
	if c.closed.Load() {
		return domain.Response{}, ErrClientClosed
	}

	var (
		resp     domain.Response
		attempts int
	)
	op := func() error {
		server, ok := c.pool.GetServer()
		if !ok {
			// nothing healthy left: try every server rather than fail without sending
			if server, ok = c.pool.GetFallbackServer(); !ok {
				return backoff.Permanent(ErrNoAvailableServer)
			}
		}
		attempts++

		r, err := c.attempt(ctx, server.URL, req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if !IsRetryable(err) {
				return backoff.Permanent(err)
			}
			c.pool.MarkUnhealthy(server.URL)
			return err
		}
		resp = r
		return nil
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.RetryDelay), uint64(c.cfg.Retries)),
		ctx,
	)
	notify := func(err error, next time.Duration) {
		level.Debug(c.logger).Log("msg", "retrying on next server", "attempt", attempts, "next_in", next, "err", err)
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		if errors.Is(err, ErrNoAvailableServer) || !IsRetryable(err) || ctx.Err() != nil {
			return domain.Response{}, err
		}
		return domain.Response{}, fmt.Errorf("fetch failed after %d attempts: %w", attempts, err)
	}
	return resp, nil
}

// attempt performs one bounded request against serverURL and records the observed latency.
func (c *Client) attempt(ctx context.Context, serverURL string, req domain.Request) (domain.Response, error) {
	attemptCtx, cancel := clock.TimeoutContext(ctx, c.cfg.Timeout)
	defer cancel()

	start := clock.Now(ctx)
	resp, err := c.transport.Do(attemptCtx, serverURL, req)
	if err != nil {
		level.Debug(c.logger).Log("msg", "attempt failed", "server", serverURL, "err", err)
		return domain.Response{}, err
	}
	c.pool.MarkHealthy(serverURL)
	c.pool.UpdateLatency(serverURL, clock.Since(ctx, start).Milliseconds())
	resp.Server = serverURL
	return resp, nil
}

// Close stops the background loops. Fetch returns ErrClientClosed afterwards. Idempotent.
func (c *Client) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	if c.discovery != nil {
		c.discovery.Stop()
	}
	if c.monitor != nil {
		c.monitor.Stop()
	}
	level.Info(c.logger).Log("msg", "client closed")
}
