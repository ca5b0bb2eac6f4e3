// Package main is the entry point for boardd. It wires the board engine,
// session provider and store adapters using samber/do v2, serves the HTTP
// API, and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/clients/rest"
	adapthttp "github.com/jsamuelsen11/kanban-engine/internal/adapters/http"
	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-engine/internal/adapters/session"
	"github.com/jsamuelsen11/kanban-engine/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/kanban-engine/internal/app"
	"github.com/jsamuelsen11/kanban-engine/internal/app/mutation"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/board"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/task"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/workflow"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/config"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/health"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	var closers closeStack
	defer closers.closeAll(logger)

	registerDependencies(ctx, injector, cfg, logger, &closers)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*storeBackend](injector).health)
	if relay, err := do.InvokeNamed[*session.RedisRelay](injector, session.RelayName); err == nil {
		registry.Register(relay)
	}

	provider := do.MustInvoke[*session.Provider](injector)
	go func() {
		if err := provider.Listen(ctx); err != nil {
			logger.Error("session relay stopped", slog.Any("error", err))
		}
	}()

	engine := do.MustInvoke[*app.Engine](injector)
	if err := engine.Start(ctx); err != nil {
		logger.Warn("initial board load failed", slog.Any("error", err))
	}
	defer engine.Close()

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// closeStack runs cleanup functions in reverse registration order.
type closeStack []func() error

func (c *closeStack) push(fn func() error) {
	*c = append(*c, fn)
}

func (c *closeStack) closeAll(logger *slog.Logger) {
	for i := len(*c) - 1; i >= 0; i-- {
		if err := (*c)[i](); err != nil {
			logger.Error("cleanup error", slog.Any("error", err))
		}
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// storeBackend is the persistence side selected by store.driver.
type storeBackend struct {
	boards ports.Gateway[board.Board]
	tasks  ports.Gateway[task.Task]
	health ports.HealthChecker
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger, closers *closeStack) {
	do.Provide(injector, func(_ do.Injector) (workflow.Definition, error) {
		return workflow.Parse(cfg.Workflow.Stages)
	})

	do.Provide(injector, func(_ do.Injector) (session.TokenVerifier, error) {
		opts := []session.VerifierOption{
			session.WithAudience(cfg.Session.Audience),
			session.WithIssuer(cfg.Session.Issuer),
			session.WithLeeway(cfg.Session.Leeway),
		}
		if cfg.Session.JWKSURL != "" {
			v, err := session.NewJWKSVerifier(ctx, cfg.Session.JWKSURL, logger, opts...)
			if err != nil {
				return nil, err
			}
			closers.push(func() error { v.Close(); return nil })
			return v, nil
		}
		v, err := session.NewHS256Verifier([]byte(cfg.Session.JWTSecret), opts...)
		if err != nil {
			return nil, err
		}
		return v, nil
	})

	if cfg.Session.Redis.Enabled {
		do.ProvideNamed(injector, session.RelayName, func(_ do.Injector) (*session.RedisRelay, error) {
			rc := redis.NewClient(&redis.Options{
				Addr:     cfg.Session.Redis.Addr,
				Password: cfg.Session.Redis.Password,
				DB:       cfg.Session.Redis.DB,
			})
			closers.push(rc.Close)
			return session.NewRedisRelay(rc, cfg.Session.Redis.Channel, logger), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (*session.Provider, error) {
		verifier := do.MustInvoke[session.TokenVerifier](i)
		var opts []session.Option
		if relay, err := do.InvokeNamed[*session.RedisRelay](i, session.RelayName); err == nil {
			opts = append(opts, session.WithRelay(relay))
		}
		return session.NewProvider(verifier, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*storeBackend, error) {
		switch cfg.Store.Driver {
		case config.DriverSQLite:
			store, err := sqlite.Open(ctx, cfg.Store.Path)
			if err != nil {
				return nil, err
			}
			closers.push(store.Close)
			return &storeBackend{boards: store.Boards(), tasks: store.Tasks(), health: store}, nil
		default:
			provider := do.MustInvoke[*session.Provider](i)
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			hc := httpclient.New(&cfg.Client, "rest-store", metrics, logger,
				httpclient.WithHeader("apikey", cfg.Client.APIKey),
				httpclient.WithBearer(provider.AccessToken),
			)
			client := rest.NewClient(hc, logger)
			return &storeBackend{boards: client.Boards(), tasks: client.Tasks(), health: client}, nil
		}
	})

	do.Provide(injector, func(_ do.Injector) (*app.FailureFeed, error) {
		return app.NewFailureFeed(cfg.Engine.FailureBacklog, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*mutation.Coordinator, error) {
		feed := do.MustInvoke[*app.FailureFeed](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return mutation.NewCoordinator(feed, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Engine, error) {
		backend := do.MustInvoke[*storeBackend](i)
		def := do.MustInvoke[workflow.Definition](i)
		coord := do.MustInvoke[*mutation.Coordinator](i)
		provider := do.MustInvoke[*session.Provider](i)

		boards := app.NewBoardRepository(backend.boards, backend.tasks, logger)
		tasks := app.NewTaskRepository(backend.tasks, def, coord, logger)
		return app.NewEngine(boards, tasks, provider, coord, cfg.Engine.ReloadWorkers, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		engine := do.MustInvoke[*app.Engine](i)
		provider := do.MustInvoke[*session.Provider](i)
		feed := do.MustInvoke[*app.FailureFeed](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Session: handlers.NewSessionHandler(provider),
			Board:   handlers.NewBoardHandler(engine),
			Task:    handlers.NewTaskHandler(engine, feed),
			Failure: handlers.NewFailureHandler(feed),
			Health:  handlers.NewHealthHandler(registry, provider),
		}, provider,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
