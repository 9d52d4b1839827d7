package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values. These are loaded first
// and can be overridden by base.yaml, the profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "30s",
		"client.rate_limit.requests_per_second":  0.0,
		"client.rate_limit.burst_size":           1,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		// Backend keys default to empty so that the env-override lookup can
		// resolve APP_BACKENDS_ASANA_PROJECT_ID and friends unambiguously.
		"backends.asana.base_url":     "https://app.asana.com/api/1.0",
		"backends.asana.token":        "",
		"backends.asana.project_id":   "",
		"backends.asana.section_id":   "",
		"backends.planner.base_url":   "https://graph.microsoft.com/v1.0",
		"backends.planner.token":      "",
		"backends.planner.plan_id":    "",
		"backends.planner.bucket_id":  "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskdrop",
	}
}
