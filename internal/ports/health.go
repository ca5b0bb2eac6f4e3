package ports

import "context"

// HealthChecker reports whether one backing dependency of the engine
// (the REST store, the SQLite file, the session relay) can serve requests.
type HealthChecker interface {
	// Name keys the checker's result in readiness output.
	Name() string

	// HealthCheck returns nil when the dependency answers within ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for the
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker concurrently. A nil entry means healthy.
	CheckAll(ctx context.Context) map[string]error
}
