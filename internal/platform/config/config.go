// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
//
// The loaded Config is passed explicitly into constructors at startup; no
// component reads the environment on its own.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Log       LogConfig        `koanf:"log"`
	Client    ClientConfig     `koanf:"client"`
	Backends  BackendsConfig   `koanf:"backends"`
	Directory []DirectoryEntry `koanf:"directory"`
	Telemetry TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds outbound HTTP client settings shared by both backend
// adapters. There is deliberately no retry policy: every external call either
// succeeds or fails once.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RateLimitConfig holds outbound request rate limiting settings.
// A zero RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// BackendsConfig holds the per-backend credentials and target identifiers.
// A backend whose required fields are absent is simply not constructed;
// requests selecting it fail with a configuration error.
type BackendsConfig struct {
	Asana   AsanaConfig   `koanf:"asana"`
	Planner PlannerConfig `koanf:"planner"`
}

// AsanaConfig identifies the Asana workspace target. Token and ProjectID are
// required for the adapter to be built; SectionID is optional and enables the
// best-effort section move after creation.
type AsanaConfig struct {
	BaseURL   string `koanf:"base_url"`
	Token     string `koanf:"token"`
	ProjectID string `koanf:"project_id"`
	SectionID string `koanf:"section_id"`
}

// Configured reports whether the required Asana fields are present.
func (a *AsanaConfig) Configured() bool {
	return a.Token != "" && a.ProjectID != ""
}

// PlannerConfig identifies the Microsoft Planner target. Token and PlanID
// are required; BucketID is optional and falls back to the plan's first
// bucket at call time.
type PlannerConfig struct {
	BaseURL  string `koanf:"base_url"`
	Token    string `koanf:"token"`
	PlanID   string `koanf:"plan_id"`
	BucketID string `koanf:"bucket_id"`
}

// Configured reports whether the required Planner fields are present.
func (p *PlannerConfig) Configured() bool {
	return p.Token != "" && p.PlanID != ""
}

// DirectoryEntry maps one human name to its backend-specific identifiers.
// Either identifier may be empty, meaning the person has no account on that
// backend.
type DirectoryEntry struct {
	Name    string `koanf:"name"`
	Asana   string `koanf:"asana"`
	Planner string `koanf:"planner"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
