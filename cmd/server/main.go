// Package main is the entry point for the HTTP service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	"github.com/samber/do/v2"

	"github.com/taskdrop/taskdrop/internal/adapters/clients/asana"
	"github.com/taskdrop/taskdrop/internal/adapters/clients/planner"
	"github.com/taskdrop/taskdrop/internal/adapters/directory"
	adapthttp "github.com/taskdrop/taskdrop/internal/adapters/http"
	"github.com/taskdrop/taskdrop/internal/adapters/http/handlers"
	"github.com/taskdrop/taskdrop/internal/adapters/http/middleware"
	"github.com/taskdrop/taskdrop/internal/app"
	"github.com/taskdrop/taskdrop/internal/platform/config"
	"github.com/taskdrop/taskdrop/internal/platform/health"
	"github.com/taskdrop/taskdrop/internal/platform/httpclient"
	"github.com/taskdrop/taskdrop/internal/platform/logging"
	"github.com/taskdrop/taskdrop/internal/platform/telemetry"
	"github.com/taskdrop/taskdrop/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register each backend's outbound client after the graph is wired, so
	// readiness reflects circuit breaker state per backend.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range do.MustInvoke[*backendSet](injector).checkers {
		registry.Register(checker)
	}

	backends := do.MustInvoke[ports.TaskService](injector).BackendStatus()
	logger.Info("backends configured",
		slog.Bool("asana", backends["asana"]),
		slog.Bool("planner", backends["planner"]),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
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

// backendSet holds the adapters built for the configured backends. Both
// slices are empty when neither backend has credentials; the service still
// starts so readiness can report the misconfiguration.
type backendSet struct {
	creators []ports.TaskCreator
	checkers []ports.HealthChecker
}

func buildBackends(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*backendSet, error) {
	set := &backendSet{}

	if cfg.Backends.Asana.Configured() {
		client := httpclient.New(&cfg.Client, "asana", cfg.Backends.Asana.BaseURL, cfg.Backends.Asana.Token, metrics, logger)
		creator, err := asana.New(client, &cfg.Backends.Asana, logger)
		if err != nil {
			return nil, fmt.Errorf("building asana adapter: %w", err)
		}
		set.creators = append(set.creators, creator)
		set.checkers = append(set.checkers, client)
	}

	if cfg.Backends.Planner.Configured() {
		client := httpclient.New(&cfg.Client, "planner", cfg.Backends.Planner.BaseURL, cfg.Backends.Planner.Token, metrics, logger)
		creator, err := planner.New(client, &cfg.Backends.Planner, logger)
		if err != nil {
			return nil, fmt.Errorf("building planner adapter: %w", err)
		}
		set.creators = append(set.creators, creator)
		set.checkers = append(set.checkers, client)
	}

	return set, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*backendSet, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return buildBackends(cfg, metrics, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.AssigneeDirectory, error) {
		return directory.New(cfg.Directory), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		set := do.MustInvoke[*backendSet](i)
		dir := do.MustInvoke[ports.AssigneeDirectory](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTaskService(set.creators, dir, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewHealthHandler(registry, svc), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(taskH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
