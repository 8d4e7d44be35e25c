package interfaces

import "openbare/registry/domain"

// HealthReporter exposes the health checker's counters. Implemented by service.HealthChecker.
//
//go:generate moq -stub -out mock/health_reporter.go -pkg mock . HealthReporter
type HealthReporter interface {
	Stats() domain.HealthCheckStats
}
