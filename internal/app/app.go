// Package app provides the main application lifecycle management for the
// content resolver service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonesrussell/content-resolver/internal/analytics"
	"github.com/jonesrussell/content-resolver/internal/api"
	"github.com/jonesrussell/content-resolver/internal/cache"
	"github.com/jonesrussell/content-resolver/internal/config"
	"github.com/jonesrussell/content-resolver/internal/contentful"
	"github.com/jonesrussell/content-resolver/internal/logger"
	"github.com/jonesrussell/content-resolver/internal/resolver"
	"github.com/jonesrussell/content-resolver/internal/static"
	"github.com/jonesrussell/content-resolver/internal/validation"
)

const (
	// DefaultShutdownTimeout is the default timeout for graceful shutdown
	DefaultShutdownTimeout = 30 * time.Second

	connectTimeout = 5 * time.Second
)

// App represents the resolver application with all its dependencies
type App struct {
	config     *config.Config
	logger     logger.Logger
	resolver   *resolver.Resolver
	collector  *analytics.Collector
	redisCache *cache.Redis
	httpServer *http.Server
	version    string
}

// Options contains configuration for creating a new App
type Options struct {
	ConfigPath string
	Version    string
}

// New creates a new App instance with all dependencies initialized
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	appLogger = appLogger.With(
		logger.String("service", "content-resolver"),
		logger.String("version", opts.Version),
	)

	store, redisCache, err := buildCache(cfg, appLogger)
	if err != nil {
		_ = appLogger.Sync()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	collector := analytics.NewCollector(cfg.Analytics.WindowSize, analytics.NewMetrics(registry))

	remote := contentful.NewClient(contentful.Config{
		SpaceID:      cfg.Contentful.SpaceID,
		Environment:  cfg.Contentful.Environment,
		AccessToken:  cfg.Contentful.AccessToken,
		PreviewToken: cfg.Contentful.PreviewToken,
		BaseURL:      cfg.Contentful.BaseURL,
		Timeout:      cfg.Contentful.Timeout,
	}, appLogger)
	if !remote.Configured() {
		appLogger.Warn("delivery API credentials absent, serving static content only")
	}

	staticProvider := static.NewProvider()
	validator := validation.New(appLogger)
	res := resolver.New(resolver.Params{
		Remote:    remote,
		Cache:     store,
		Static:    staticProvider,
		Validator: validator,
		Collector: collector,
		Logger:    appLogger,
		TTL:       cfg.Cache.TTL,
	})

	// Draft content gets its own resolver with an isolated in-memory cache
	// so preview responses never mix with the published cache.
	var previewRes *resolver.Resolver
	if cfg.Contentful.PreviewToken != "" {
		previewLogger := appLogger.With(logger.String("mode", "preview"))
		previewRes = resolver.New(resolver.Params{
			Remote:    remote.Preview(),
			Cache:     cache.NewMemory(),
			Static:    staticProvider,
			Validator: validator,
			Collector: collector,
			Logger:    previewLogger,
			TTL:       cfg.Cache.TTL,
		})
		appLogger.Info("preview mode enabled")
	}

	var cachePing api.CachePinger
	if redisCache != nil {
		cachePing = redisCache
	}
	router := api.NewRouter(res, previewRes, collector, staticProvider, registry, cfg, appLogger, cachePing)

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config:     cfg,
		logger:     appLogger,
		resolver:   res,
		collector:  collector,
		redisCache: redisCache,
		httpServer: httpServer,
		version:    opts.Version,
	}, nil
}

// buildCache creates the configured cache backend. The redis return is
// non-nil only for the redis backend, for health checks and Close.
func buildCache(cfg *config.Config, log logger.Logger) (cache.Cache, *cache.Redis, error) {
	if cfg.Cache.Backend == config.CacheBackendRedis {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		redisCache, err := cache.NewRedisFromURL(ctx, cfg.Cache.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to Redis: %w", err)
		}
		log.Info("using redis cache backend")
		return redisCache, redisCache, nil
	}

	log.Info("using in-memory cache backend")
	return cache.NewMemory(), nil, nil
}

// Run starts the HTTP server and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	if a.config.WarmUp {
		warmCtx, cancel := context.WithTimeout(ctx, a.config.Contentful.Timeout*2)
		a.resolver.Warm(warmCtx)
		cancel()
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server",
			logger.String("address", a.config.Server.Address),
			logger.Bool("debug", a.config.Debug),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	return a.waitForShutdown(ctx, serverErr)
}

// waitForShutdown handles graceful shutdown
func (a *App) waitForShutdown(ctx context.Context, serverErr chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		a.logger.Info("Shutting down gracefully", logger.String("signal", sig.String()))
	case <-ctx.Done():
		a.logger.Info("Shutting down", logger.Error(ctx.Err()))
	case err := <-serverErr:
		if err != nil {
			a.logger.Error("Server error", logger.Error(err))
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown error", logger.Error(err))
		return err
	}

	a.logger.Info("Service stopped")
	return nil
}

// FlushCache drops every cached resolution
func (a *App) FlushCache(ctx context.Context) error {
	return a.resolver.InvalidateAll(ctx)
}

// Close cleans up resources
func (a *App) Close() error {
	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.logger.Warn("Failed to close Redis client", logger.Error(err))
		}
	}
	return a.logger.Sync()
}

// Logger returns the application logger
func (a *App) Logger() logger.Logger {
	return a.logger
}
