package domain

import (
	"time"

	"openbare/helpers"
)

// ProbeResult is the outcome of one liveness probe against one node.
type ProbeResult struct {
	NodeID    string
	Healthy   bool
	LatencyMs int64
	Err       error
}

// LoopState is the lifecycle of the health check loop.
type LoopState = helpers.LoopState

const (
	LoopNotStarted = helpers.LoopNotStarted
	LoopRunning    = helpers.LoopRunning
	LoopStopped    = helpers.LoopStopped
)

// HealthCheckStats exposes health checker counters.
type HealthCheckStats struct {
	State            LoopState
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold int
	Runs             int64
	Checks           int64
	Failures         int64
	LastRunAt        *time.Time
	// TrackedFailures is the number of nodes with a non-zero consecutive failure counter.
	TrackedFailures int
}
