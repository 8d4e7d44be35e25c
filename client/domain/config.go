package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultRetries             = 3
	DefaultRefreshInterval     = 30 * time.Second
	DefaultRefreshTimeout      = 10 * time.Second
	DefaultHealthCheckInterval = 30 * time.Second
	DefaultHealthCheckTimeout  = 5 * time.Second
	DefaultHealthCheckPath     = "/health"
)

// ClientConfig enumerates every option of the client. It is read once at construction:
// call WithDefaults and then Validate.
type ClientConfig struct {
	// Servers seeds the pool with manually managed servers.
	Servers []string
	// Timeout bounds a single attempt against one server.
	Timeout time.Duration
	// Retries is the number of extra attempts after the first one fails. Zero disables retries.
	Retries int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
	Strategy   StrategyName

	RegistryURL     string
	AutoDiscover    bool
	RefreshInterval time.Duration
	// RefreshTimeout bounds one registry fetch.
	RefreshTimeout time.Duration
	// HealthyOnly makes Discovery fetch only nodes the registry considers healthy.
	HealthyOnly bool

	AutoHealthCheck     bool
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
	HealthCheckPath     string
}

// WithDefaults fills zero values. Retries is left alone since zero is meaningful.
func (c ClientConfig) WithDefaults() ClientConfig {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Strategy == "" {
		c.Strategy = StrategyRoundRobin
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if c.RefreshTimeout == 0 {
		c.RefreshTimeout = DefaultRefreshTimeout
	}
	if c.HealthCheckInterval == 0 {
		c.HealthCheckInterval = DefaultHealthCheckInterval
	}
	if c.HealthCheckTimeout == 0 {
		c.HealthCheckTimeout = DefaultHealthCheckTimeout
	}
	if c.HealthCheckPath == "" {
		c.HealthCheckPath = DefaultHealthCheckPath
	}
	return c
}

// Validate checks a defaulted config.
func (c ClientConfig) Validate() error {
	var errs []error
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Retries < 0 {
		errs = append(errs, fmt.Errorf("retries must not be negative, got %d", c.Retries))
	}
	if c.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("retry delay must not be negative, got %s", c.RetryDelay))
	}
	if !c.Strategy.Valid() {
		errs = append(errs, fmt.Errorf("unknown strategy %q", c.Strategy))
	}
	if c.RefreshInterval <= 0 || c.RefreshTimeout <= 0 {
		errs = append(errs, errors.New("refresh interval and timeout must be positive"))
	}
	if c.HealthCheckInterval <= 0 || c.HealthCheckTimeout <= 0 {
		errs = append(errs, errors.New("health check interval and timeout must be positive"))
	}
	if c.AutoDiscover && c.RegistryURL == "" {
		errs = append(errs, errors.New("registry url is required when auto discovery is enabled"))
	}
	if c.RegistryURL != "" {
		if u, err := url.Parse(c.RegistryURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("registry url %q must be absolute", c.RegistryURL))
		}
	}
	for _, s := range c.Servers {
		if s == "" {
			errs = append(errs, errors.New("server url must not be empty"))
			break
		}
	}
	return errors.Join(errs...)
}
