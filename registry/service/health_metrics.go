package service

import (
	"openbare/registry/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HealthMetrics holds the health checker's Prometheus metrics.
type HealthMetrics struct {
	RunsTotal     prometheus.Counter
	ProbesTotal   *prometheus.CounterVec
	ProbeDuration prometheus.Histogram
	Transitions   *prometheus.CounterVec
	Nodes         *prometheus.GaugeVec
}

// NewHealthMetrics creates the metrics and registers them with reg. Each registry process passes
// its own registry so tests can build checkers side by side.
func NewHealthMetrics(reg prometheus.Registerer) *HealthMetrics {
	factory := promauto.With(reg)
	return &HealthMetrics{
		RunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "openbare_registry_health_check_runs_total",
				Help: "Total number of completed health check batches",
			},
		),

		ProbesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbare_registry_health_probes_total",
				Help: "Total number of node probes by result",
			},
			[]string{"result"},
		),

		ProbeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "openbare_registry_health_probe_duration_seconds",
				Help:    "Duration of node probes",
				Buckets: prometheus.DefBuckets,
			},
		),

		Transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbare_registry_node_status_transitions_total",
				Help: "Total number of node status transitions written by the health checker",
			},
			[]string{"to"},
		),

		Nodes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "openbare_registry_nodes",
				Help: "Number of nodes in the directory by status",
			},
			[]string{"status"},
		),
	}
}

func (m *HealthMetrics) observeStats(s domain.Stats) {
	m.Nodes.WithLabelValues(string(domain.NodeStatusHealthy)).Set(float64(s.Healthy))
	m.Nodes.WithLabelValues(string(domain.NodeStatusUnhealthy)).Set(float64(s.Unhealthy))
	m.Nodes.WithLabelValues(string(domain.NodeStatusUnknown)).Set(float64(s.Unknown))
}
