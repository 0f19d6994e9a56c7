package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/iso639/internal/config"
	"github.com/heartmarshall/iso639/internal/metrics"
	"github.com/heartmarshall/iso639/internal/transport/middleware"
	"github.com/heartmarshall/iso639/internal/transport/rest"
	"github.com/heartmarshall/iso639/pkg/iso639"
)

const rateLimitCleanupInterval = time.Minute

// App wires the registry, HTTP transport and metrics for the serve command.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	dataset  *LoadedDataset
	registry *iso639.Registry
	handler  http.Handler
	stop     context.CancelFunc
}

// New loads the configured dataset, builds the registry over it and
// assembles the HTTP handler. The caller must Close the App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	ds, err := LoadDataset(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promReg)

	opts := []iso639.Option{iso639.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		opts = append(opts, iso639.WithObserver(m))
	}
	registry := iso639.NewRegistry(ds.Dataset, opts...)
	m.DatasetLoaded(registry.Version(), ds.Source, registry.Len())

	routes := rest.Routes{
		Languages: rest.NewLanguageHandler(registry, logger),
		Health:    rest.NewHealthHandler(registry, pinger(ds), BuildVersion()),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = promhttp.HandlerFor(promReg, promhttp.HandlerOpts{Registry: promReg})
		routes.MetricsPath = cfg.Metrics.Path
	}
	mux := rest.NewRouter(routes)

	// The rate limiter's sweeper lives as long as the App.
	bg, stop := context.WithCancel(context.WithoutCancel(ctx))

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
	}
	if n := cfg.Server.RateLimitPerMinute; n > 0 {
		mws = append(mws, middleware.NewRateLimiter(bg, n, rateLimitCleanupInterval).Middleware())
	}
	if cfg.Metrics.Enabled {
		mws = append(mws, middleware.Metrics(m))
	}
	mws = append(mws, middleware.CORS(cfg.CORS))

	return &App{
		cfg:      cfg,
		logger:   logger,
		dataset:  ds,
		registry: registry,
		handler:  middleware.Chain(mws...)(mux),
		stop:     stop,
	}, nil
}

// pinger returns the dataset's pool for readiness checks, or nil.
func pinger(ds *LoadedDataset) interface{ Ping(context.Context) error } {
	if ds.Pool == nil {
		return nil
	}
	return ds.Pool
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Registry returns the registry the App serves.
func (a *App) Registry() *iso639.Registry { return a.registry }

// Serve listens on the configured address until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.cfg.Server.Addr(), err)
	}
	return a.ServeListener(ctx, ln)
}

// ServeListener serves HTTP on ln until ctx is cancelled, then shuts the
// server down gracefully within ShutdownTimeout.
func (a *App) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("http server started",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", BuildVersion()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close stops background workers and releases the database pool.
func (a *App) Close() {
	a.stop()
	a.dataset.Close()
}

// Run builds an App from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
