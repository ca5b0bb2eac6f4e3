package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Store.validate(),
		c.Session.validate(),
		c.Workflow.validate(),
		c.Engine.validate(),
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
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	} else if s.WriteTimeout > 0 && s.RequestTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf("server.request_timeout (%s) must be less than server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout))
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

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverREST:
		return nil
	case DriverSQLite:
		if s.Path == "" {
			return errors.New("store.path must not be empty when driver is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("store.driver must be one of: %s, %s; got %q", DriverREST, DriverSQLite, s.Driver)
	}
}

func (s *SessionConfig) validate() error {
	var errs []error

	if s.JWTSecret == "" && s.JWKSURL == "" {
		errs = append(errs, errors.New("session.jwt_secret or session.jwks_url must be set"))
	}
	if s.Leeway < 0 {
		errs = append(errs, errors.New("session.leeway must not be negative"))
	}
	if s.Redis.Enabled {
		if s.Redis.Addr == "" {
			errs = append(errs, errors.New("session.redis.addr must not be empty when redis is enabled"))
		}
		if s.Redis.Channel == "" {
			errs = append(errs, errors.New("session.redis.channel must not be empty when redis is enabled"))
		}
	}

	return errors.Join(errs...)
}

func (w *WorkflowConfig) validate() error {
	if len(w.Stages) < 2 {
		return fmt.Errorf("workflow.stages must list at least 2 stages, got %d", len(w.Stages))
	}

	var errs []error
	seen := make(map[string]struct{}, len(w.Stages))
	for i, stage := range w.Stages {
		if strings.TrimSpace(stage) == "" {
			errs = append(errs, fmt.Errorf("workflow.stages[%d] must not be blank", i))
			continue
		}
		if _, dup := seen[stage]; dup {
			errs = append(errs, fmt.Errorf("workflow.stages[%d] duplicates %q", i, stage))
		}
		seen[stage] = struct{}{}
	}

	return errors.Join(errs...)
}

func (e *EngineConfig) validate() error {
	var errs []error

	if e.ReloadWorkers < 1 {
		errs = append(errs, fmt.Errorf("engine.reload_workers must be >= 1, got %d", e.ReloadWorkers))
	}
	if e.FailureBacklog < 1 {
		errs = append(errs, fmt.Errorf("engine.failure_backlog must be >= 1, got %d", e.FailureBacklog))
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
