package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultReloadWorkers  = 4
	defaultFailureBacklog = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "127.0.0.1",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:54321",
		"client.api_key":                         "",
		"client.timeout":                         "15s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"store.driver": DriverREST,
		"store.path":   "boardd.db",

		"session.jwt_secret":     "",
		"session.jwks_url":       "",
		"session.audience":       "",
		"session.issuer":         "",
		"session.leeway":         "30s",
		"session.redis.enabled":  false,
		"session.redis.addr":     "localhost:6379",
		"session.redis.password": "",
		"session.redis.db":       0,
		"session.redis.channel":  "boardd:sessions",

		"workflow.stages": []string{"backlog", "todo", "review", "done"},

		"engine.reload_workers":  defaultReloadWorkers,
		"engine.failure_backlog": defaultFailureBacklog,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "boardd",
	}
}
