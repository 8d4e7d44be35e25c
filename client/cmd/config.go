package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"openbare/client/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath       = "CONFIG_PATH"
	envRetryCount       = "RETRY_COUNT"
	envRequestTimeoutMs = "REQUEST_TIMEOUT_MS"
	envRegistryURL      = "REGISTRY_URL"
)

// ServerConfig is one manually configured pool server.
type ServerConfig struct {
	URL      string
	Priority int
}

// Config holds the client configuration loaded by LoadConfig. Client.Servers stays empty: servers are
// added one by one from Servers so each keeps its priority.
type Config struct {
	Client  domain.ClientConfig
	Servers []ServerConfig
}

type yamlConfig struct {
	Servers      []yamlServer    `yaml:"servers"`
	Strategy     string          `yaml:"strategy"`
	TimeoutMs    int             `yaml:"timeout_ms"`
	Retries      *int            `yaml:"retries"`
	RetryDelayMs int             `yaml:"retry_delay_ms"`
	Registry     yamlRegistry    `yaml:"registry"`
	HealthCheck  yamlHealthCheck `yaml:"health_check"`
}

type yamlServer struct {
	URL      string `yaml:"url"`
	Priority int    `yaml:"priority"`
}

type yamlRegistry struct {
	URL               string `yaml:"url"`
	AutoDiscover      bool   `yaml:"auto_discover"`
	RefreshIntervalMs int    `yaml:"refresh_interval_ms"`
	RefreshTimeoutMs  int    `yaml:"refresh_timeout_ms"`
	HealthyOnly       bool   `yaml:"healthy_only"`
}

type yamlHealthCheck struct {
	Enabled    bool   `yaml:"enabled"`
	IntervalMs int    `yaml:"interval_ms"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	Path       string `yaml:"path"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// LoadConfig builds the client config from the YAML file at CONFIG_PATH (optional) and the env overrides
// RETRY_COUNT, REQUEST_TIMEOUT_MS and REGISTRY_URL. Defaults are applied and the result is validated.
//
// Returns: (*Config, nil) on success; (nil, error) on YAML read/parse error, a malformed override or an
// invalid resulting config.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	raw := &yamlConfig{}
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		loaded, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		raw = loaded
	}

	strategy, err := domain.ParseStrategyName(strings.TrimSpace(raw.Strategy))
	if err != nil {
		return nil, err
	}
	client := domain.ClientConfig{
		Timeout:             ms(raw.TimeoutMs),
		Retries:             domain.DefaultRetries,
		RetryDelay:          ms(raw.RetryDelayMs),
		Strategy:            strategy,
		RegistryURL:         strings.TrimSpace(raw.Registry.URL),
		AutoDiscover:        raw.Registry.AutoDiscover,
		RefreshInterval:     ms(raw.Registry.RefreshIntervalMs),
		RefreshTimeout:      ms(raw.Registry.RefreshTimeoutMs),
		HealthyOnly:         raw.Registry.HealthyOnly,
		AutoHealthCheck:     raw.HealthCheck.Enabled,
		HealthCheckInterval: ms(raw.HealthCheck.IntervalMs),
		HealthCheckTimeout:  ms(raw.HealthCheck.TimeoutMs),
		HealthCheckPath:     strings.TrimSpace(raw.HealthCheck.Path),
	}
	if raw.Retries != nil {
		client.Retries = *raw.Retries
	}

	if v := strings.TrimSpace(os.Getenv(envRetryCount)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", envRetryCount, v)
		}
		client.Retries = n
	}
	if v := strings.TrimSpace(os.Getenv(envRequestTimeoutMs)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer (ms), got %q", envRequestTimeoutMs, v)
		}
		client.Timeout = ms(n)
	}
	if v := strings.TrimSpace(os.Getenv(envRegistryURL)); v != "" {
		client.RegistryURL = v
		client.AutoDiscover = true
	}

	servers := make([]ServerConfig, 0, len(raw.Servers))
	for i, s := range raw.Servers {
		u := strings.TrimSpace(s.URL)
		if u == "" {
			return nil, fmt.Errorf("servers[%d]: url is required", i)
		}
		p := s.Priority
		if p == 0 {
			p = domain.DefaultPriority
		}
		servers = append(servers, ServerConfig{URL: u, Priority: p})
	}

	client = client.WithDefaults()
	if err := client.Validate(); err != nil {
		return nil, err
	}
	return &Config{Client: client, Servers: servers}, nil
}
