package service

import (
	"context"
	"time"

	"openbare/client/interfaces"
	"openbare/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tilinna/clock"
	"golang.org/x/sync/errgroup"
)

const defaultMonitorConcurrency = 8

// PoolMonitorConfig configures PoolMonitor. Zero values fall back to the domain defaults.
type PoolMonitorConfig struct {
	Interval    time.Duration
	Timeout     time.Duration
	Concurrency int
}

// PoolMonitor probes every pool server on an interval and writes health and latency back into the
// pool. A failed probe marks the server unhealthy at once; a successful one restores it.
type PoolMonitor struct {
	pool   *ServerPool
	prober interfaces.Prober
	cfg    PoolMonitorConfig
	logger log.Logger

	loop helpers.Loop
}

// NewPoolMonitor creates a monitor for pool. Panics on nil pool, prober or logger.
func NewPoolMonitor(pool *ServerPool, prober interfaces.Prober, cfg PoolMonitorConfig, logger log.Logger) *PoolMonitor {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultMonitorConcurrency
	}
	return &PoolMonitor{
		pool:   helpers.NilPanic(pool, "service.pool_monitor.go: pool is required"),
		prober: helpers.NilPanic(prober, "service.pool_monitor.go: prober is required"),
		cfg:    cfg,
		logger: log.With(helpers.NilPanic(logger, "service.pool_monitor.go: logger is required"), "component", "pool_monitor"),
	}
}

// CheckAll probes every server currently in the pool and returns when all probes resolved.
func (m *PoolMonitor) CheckAll(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(m.cfg.Concurrency)
	for _, server := range m.pool.GetAllServers() {
		g.Go(func() error {
			start := clock.Now(ctx)
			probeCtx, cancel := clock.TimeoutContext(ctx, m.cfg.Timeout)
			defer cancel()

			err := m.prober.Probe(probeCtx, server.URL)
			if err == nil && probeCtx.Err() != nil {
				err = probeCtx.Err()
			}
			if err != nil {
				if server.Healthy {
					level.Warn(m.logger).Log("msg", "server became unhealthy", "url", server.URL, "err", err)
				}
				m.pool.MarkUnhealthy(server.URL)
				return nil
			}
			if !server.Healthy {
				level.Info(m.logger).Log("msg", "server recovered", "url", server.URL)
			}
			m.pool.MarkHealthy(server.URL)
			m.pool.UpdateLatency(server.URL, clock.Since(ctx, start).Milliseconds())
			return nil
		})
	}
	_ = g.Wait()
}

// Start runs CheckAll immediately and then every Interval. Calling Start while running is a no-op.
func (m *PoolMonitor) Start(ctx context.Context) {
	if m.loop.Start(ctx, m.cfg.Interval, func(ctx context.Context) { m.CheckAll(context.WithoutCancel(ctx)) }) {
		level.Info(m.logger).Log("msg", "pool monitor started", "interval", m.cfg.Interval)
	}
}

// Stop cancels the loop after the batch in flight. Safe before Start and when called twice.
func (m *PoolMonitor) Stop() {
	if m.loop.Stop() {
		level.Info(m.logger).Log("msg", "pool monitor stopped")
	}
}

// State reports whether the probe loop is running.
func (m *PoolMonitor) State() LoopState {
	return m.loop.State()
}
