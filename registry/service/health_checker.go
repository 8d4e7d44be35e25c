package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"openbare/helpers"
	"openbare/registry/domain"
	"openbare/registry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tilinna/clock"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHealthCheckInterval    = 30 * time.Second
	DefaultHealthCheckTimeout     = 5 * time.Second
	DefaultHealthFailureThreshold = 3
	DefaultHealthCheckConcurrency = 10
)

// HealthCheckConfig configures the health checker. Zero values are replaced by defaults.
type HealthCheckConfig struct {
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold int
	Concurrency      int
}

// WithDefaults fills zero fields with the package defaults.
func (c HealthCheckConfig) WithDefaults() HealthCheckConfig {
	if c.Interval == 0 {
		c.Interval = DefaultHealthCheckInterval
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultHealthCheckTimeout
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = DefaultHealthFailureThreshold
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultHealthCheckConcurrency
	}
	return c
}

func (c HealthCheckConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("health check interval must be positive, got %s", c.Interval)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("health check timeout must be positive, got %s", c.Timeout)
	}
	if c.FailureThreshold < 1 {
		return fmt.Errorf("failure threshold must be at least 1, got %d", c.FailureThreshold)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// HealthChecker actively probes every directory node and drives the per-node state machine:
// a single success marks the node healthy, FailureThreshold consecutive failures mark it unhealthy.
// The loop runs on the clock carried by the Start context (tilinna/clock), so tests drive it with
// clock.NewMock.
type HealthChecker struct {
	directory interfaces.Directory
	prober    interfaces.Prober
	cfg       HealthCheckConfig
	metrics   *HealthMetrics
	logger    log.Logger

	mu        sync.Mutex
	failures  map[string]int
	lastRunAt *time.Time
	loop      helpers.Loop

	runs   atomic.Int64
	checks atomic.Int64
	failed atomic.Int64
}

// NewHealthChecker creates a health checker. cfg is completed with defaults and must be valid.
// Panics on nil directory, prober, metrics or logger.
func NewHealthChecker(
	directory interfaces.Directory,
	prober interfaces.Prober,
	cfg HealthCheckConfig,
	metrics *HealthMetrics,
	logger log.Logger,
) (*HealthChecker, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HealthChecker{
		directory: helpers.NilPanic(directory, "service.health_checker.go: directory is required"),
		prober:    helpers.NilPanic(prober, "service.health_checker.go: prober is required"),
		cfg:       cfg,
		metrics:   helpers.NilPanic(metrics, "service.health_checker.go: metrics is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.health_checker.go: logger is required"), "component", "health_checker"),
		failures:  make(map[string]int),
	}, nil
}

// CheckNode performs one bounded probe against node and reports the outcome. It never writes to
// the directory. A probe still running when the timeout elapses counts as a failure.
func (h *HealthChecker) CheckNode(ctx context.Context, node domain.Node) domain.ProbeResult {
	start := clock.Now(ctx)
	probeCtx, cancel := clock.TimeoutContext(ctx, h.cfg.Timeout)
	defer cancel()

	err := h.prober.Probe(probeCtx, node.URL)
	if err == nil && probeCtx.Err() != nil {
		err = probeCtx.Err()
	}
	elapsed := clock.Since(ctx, start)
	h.metrics.ProbeDuration.Observe(elapsed.Seconds())

	return domain.ProbeResult{
		NodeID:    node.ID,
		Healthy:   err == nil,
		LatencyMs: elapsed.Milliseconds(),
		Err:       err,
	}
}

// CheckAllNodes probes every node with at most Concurrency probes in flight, applies the state
// transitions and returns once the whole batch has resolved. Only a failure to list the directory
// is returned; per-node problems are logged.
func (h *HealthChecker) CheckAllNodes(ctx context.Context) error {
	nodes, err := h.directory.GetAllNodes(ctx)
	if err != nil {
		return fmt.Errorf("checkAllNodes failed to list nodes, err: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(h.cfg.Concurrency)
	for _, node := range nodes {
		g.Go(func() error {
			h.apply(ctx, node, h.CheckNode(ctx, node))
			return nil
		})
	}
	_ = g.Wait()

	h.prune(nodes)
	now := clock.Now(ctx)
	h.mu.Lock()
	h.lastRunAt = &now
	h.mu.Unlock()
	h.runs.Add(1)
	h.metrics.RunsTotal.Inc()

	if stats, err := h.directory.GetStats(ctx); err == nil {
		h.metrics.observeStats(stats)
	}
	return nil
}

// apply writes the outcome of one probe back to the directory.
func (h *HealthChecker) apply(ctx context.Context, node domain.Node, res domain.ProbeResult) {
	h.checks.Add(1)
	logger := log.With(h.logger, "node_id", node.ID, "url", node.URL)

	if res.Healthy {
		h.metrics.ProbesTotal.WithLabelValues("success").Inc()
		h.setFailures(node.ID, 0)
		if node.Status != domain.NodeStatusHealthy {
			h.transition(ctx, logger, node, domain.NodeStatusHealthy)
		}
		if _, err := h.directory.RecordHeartbeat(ctx, node.ID); err != nil {
			level.Warn(logger).Log("msg", "failed to record heartbeat", "err", err)
		}
		if _, err := h.directory.RecordLatency(ctx, node.ID, res.LatencyMs); err != nil {
			level.Warn(logger).Log("msg", "failed to record latency", "err", err)
		}
		return
	}

	h.failed.Add(1)
	h.metrics.ProbesTotal.WithLabelValues("failure").Inc()
	count := h.incFailures(node.ID)
	level.Debug(logger).Log("msg", "probe failed", "consecutive_failures", count, "err", res.Err)
	if count >= h.cfg.FailureThreshold && node.Status != domain.NodeStatusUnhealthy {
		h.transition(ctx, logger, node, domain.NodeStatusUnhealthy)
	}
}

func (h *HealthChecker) transition(ctx context.Context, logger log.Logger, node domain.Node, to domain.NodeStatus) {
	found, err := h.directory.UpdateNodeStatus(ctx, node.ID, to)
	if err != nil {
		level.Warn(logger).Log("msg", "failed to update node status", "to", to, "err", err)
		return
	}
	if !found {
		return
	}
	h.metrics.Transitions.WithLabelValues(string(to)).Inc()
	level.Info(logger).Log("msg", "node status changed", "from", node.Status, "to", to)
}

func (h *HealthChecker) setFailures(id string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n == 0 {
		delete(h.failures, id)
		return
	}
	h.failures[id] = n
}

func (h *HealthChecker) incFailures(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[id]++
	return h.failures[id]
}

// prune drops counters of nodes that left the directory.
func (h *HealthChecker) prune(nodes []domain.Node) {
	live := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		live[n.ID] = struct{}{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id := range h.failures {
		if _, ok := live[id]; !ok {
			delete(h.failures, id)
		}
	}
}

// Start runs CheckAllNodes immediately and then every Interval until Stop or ctx cancellation.
// Calling Start while running is a no-op.
func (h *HealthChecker) Start(ctx context.Context) {
	if h.loop.Start(ctx, h.cfg.Interval, h.runOnce) {
		level.Info(h.logger).Log("msg", "health check loop started", "interval", h.cfg.Interval, "timeout", h.cfg.Timeout)
	}
}

// runOnce lets a batch that already started finish even if Stop is called meanwhile.
func (h *HealthChecker) runOnce(ctx context.Context) {
	if err := h.CheckAllNodes(context.WithoutCancel(ctx)); err != nil {
		level.Error(h.logger).Log("msg", "health check run failed", "err", err)
	}
}

// Stop cancels the loop and waits for an in-flight batch. Safe before Start and when called twice.
func (h *HealthChecker) Stop() {
	if h.loop.Stop() {
		level.Info(h.logger).Log("msg", "health check loop stopped")
	}
}

// Stats returns a snapshot of the checker's counters and loop state.
func (h *HealthChecker) Stats() domain.HealthCheckStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	var lastRun *time.Time
	if h.lastRunAt != nil {
		t := *h.lastRunAt
		lastRun = &t
	}
	return domain.HealthCheckStats{
		State:            h.loop.State(),
		Interval:         h.cfg.Interval,
		Timeout:          h.cfg.Timeout,
		FailureThreshold: h.cfg.FailureThreshold,
		Runs:             h.runs.Load(),
		Checks:           h.checks.Load(),
		Failures:         h.failed.Load(),
		LastRunAt:        lastRun,
		TrackedFailures:  len(h.failures),
	}
}
