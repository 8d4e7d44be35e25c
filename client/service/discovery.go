package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"openbare/client/domain"
	"openbare/client/interfaces"
	"openbare/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tilinna/clock"
)

// LoopState is the lifecycle of the Discovery and PoolMonitor loops.
type LoopState = helpers.LoopState

const (
	LoopNotStarted = helpers.LoopNotStarted
	LoopRunning    = helpers.LoopRunning
	LoopStopped    = helpers.LoopStopped
)

// DiscoveryConfig configures Discovery. Zero values fall back to the domain defaults.
type DiscoveryConfig struct {
	Interval time.Duration
	// Timeout bounds one registry fetch.
	Timeout     time.Duration
	HealthyOnly bool
}

// DiscoveryStats exposes refresh counters.
type DiscoveryStats struct {
	State         LoopState
	Refreshes     int64
	Failures      int64
	Nodes         int
	LastRefreshAt *time.Time
	LastError     string
}

// DiscoveryOption configures optional Discovery behaviour.
type DiscoveryOption func(*Discovery)

// WithOnRefresh registers fn to be called with the new snapshot after every successful refresh.
// fn runs on the refresh goroutine.
func WithOnRefresh(fn func(nodes []domain.Node)) DiscoveryOption {
	return func(d *Discovery) {
		d.onRefresh = fn
	}
}

// Discovery keeps a cached snapshot of the registry's nodes. The snapshot is replaced wholesale on
// a successful refresh and kept as is when a refresh fails, so readers never see it emptied by an
// unreachable registry. Readers never touch the network.
type Discovery struct {
	registry  interfaces.Registry
	cfg       DiscoveryConfig
	logger    log.Logger
	onRefresh func(nodes []domain.Node)

	mu            sync.RWMutex
	nodes         []domain.Node
	refreshes     int64
	failures      int64
	lastRefreshAt *time.Time
	lastErr       error

	loop helpers.Loop
}

// NewDiscovery creates a Discovery with an empty cache. Call Start for periodic refresh or Refresh
// for a single fetch. Panics on nil registry or logger.
//
// Called from NewClient when a registry client is given.
func NewDiscovery(registry interfaces.Registry, cfg DiscoveryConfig, logger log.Logger, opts ...DiscoveryOption) *Discovery {
	if cfg.Interval <= 0 {
		cfg.Interval = domain.DefaultRefreshInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultRefreshTimeout
	}
	d := &Discovery{
		registry: helpers.NilPanic(registry, "service.discovery.go: registry is required"),
		cfg:      cfg,
		logger:   log.With(helpers.NilPanic(logger, "service.discovery.go: logger is required"), "component", "discovery"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Refresh fetches the node list once. On success the cache is replaced and the OnRefresh hook runs;
// on failure the cache is kept and the error is recorded and returned.
func (d *Discovery) Refresh(ctx context.Context) error {
	fetchCtx, cancel := clock.TimeoutContext(ctx, d.cfg.Timeout)
	defer cancel()

	nodes, err := d.registry.ListNodes(fetchCtx, d.cfg.HealthyOnly)
	now := clock.Now(ctx)

	d.mu.Lock()
	if err != nil {
		d.failures++
		d.lastErr = err
		d.mu.Unlock()
		return fmt.Errorf("discovery refresh failed, err: %w", err)
	}
	snapshot := make([]domain.Node, len(nodes))
	copy(snapshot, nodes)
	d.nodes = snapshot
	d.refreshes++
	d.lastRefreshAt = &now
	d.lastErr = nil
	d.mu.Unlock()

	if d.onRefresh != nil {
		d.onRefresh(d.GetNodes())
	}
	return nil
}

// Start refreshes immediately and then every Interval until Stop or ctx cancellation.
// Calling Start while running is a no-op.
func (d *Discovery) Start(ctx context.Context) {
	started := d.loop.Start(ctx, d.cfg.Interval, func(ctx context.Context) {
		if err := d.Refresh(ctx); err != nil {
			level.Warn(d.logger).Log("msg", "keeping last known nodes", "err", err)
		}
	})
	if started {
		level.Info(d.logger).Log("msg", "discovery started", "interval", d.cfg.Interval, "healthy_only", d.cfg.HealthyOnly)
	}
}

// Stop cancels the refresh loop. Safe before Start and when called twice.
func (d *Discovery) Stop() {
	if d.loop.Stop() {
		level.Info(d.logger).Log("msg", "discovery stopped")
	}
}

// GetNodes returns a copy of the cached snapshot; empty before the first successful refresh.
func (d *Discovery) GetNodes() []domain.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// GetHealthyNodes returns the cached nodes whose registry status is healthy.
func (d *Discovery) GetHealthyNodes() []domain.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Node, 0, len(d.nodes))
	for _, n := range d.nodes {
		if n.Status == domain.NodeStatusHealthy {
			out = append(out, n)
		}
	}
	return out
}

// GetRandomNode picks uniformly among the healthy nodes. ok is false when there are none.
func (d *Discovery) GetRandomNode() (node domain.Node, ok bool) {
	healthy := d.GetHealthyNodes()
	if len(healthy) == 0 {
		return domain.Node{}, false
	}
	return healthy[rand.IntN(len(healthy))], true
}

// Stats returns refresh counters and the loop state.
func (d *Discovery) Stats() DiscoveryStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := DiscoveryStats{
		State:     d.loop.State(),
		Refreshes: d.refreshes,
		Failures:  d.failures,
		Nodes:     len(d.nodes),
	}
	if d.lastRefreshAt != nil {
		t := *d.lastRefreshAt
		s.LastRefreshAt = &t
	}
	if d.lastErr != nil {
		s.LastError = d.lastErr.Error()
	}
	return s
}
