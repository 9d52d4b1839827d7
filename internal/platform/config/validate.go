package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Backends.validate(),
		validateDirectory(c.Directory),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

// validate rejects partially-configured backends: a token without a target
// identifier (or the reverse) is a misconfiguration, not an unconfigured
// backend, and should fail startup rather than every request.
func (b *BackendsConfig) validate() error {
	var errs []error

	if b.Asana.BaseURL == "" {
		errs = append(errs, errors.New("backends.asana.base_url must not be empty"))
	}
	if (b.Asana.Token != "") != (b.Asana.ProjectID != "") {
		errs = append(errs, errors.New("backends.asana.token and backends.asana.project_id must be set together"))
	}

	if b.Planner.BaseURL == "" {
		errs = append(errs, errors.New("backends.planner.base_url must not be empty"))
	}
	if (b.Planner.Token != "") != (b.Planner.PlanID != "") {
		errs = append(errs, errors.New("backends.planner.token and backends.planner.plan_id must be set together"))
	}

	return errors.Join(errs...)
}

func validateDirectory(entries []DirectoryEntry) error {
	var errs []error

	for i, e := range entries {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("directory[%d].name must not be empty", i))
		}
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
