// Package api exposes the resolver over HTTP: content endpoints, the
// analytics dashboard, the publish webhook, health, and metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonesrussell/content-resolver/internal/analytics"
	"github.com/jonesrussell/content-resolver/internal/config"
	"github.com/jonesrussell/content-resolver/internal/logger"
	"github.com/jonesrussell/content-resolver/internal/resolver"
	"github.com/jonesrussell/content-resolver/internal/static"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
	healthCheckTimeout   = 2 * time.Second
	serviceVersion       = "1.0.0"
)

// CachePinger reports whether the cache backend is reachable. The memory
// backend satisfies it trivially.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Router holds the API dependencies
type Router struct {
	resolver  *resolver.Resolver
	preview   *resolver.Resolver
	collector *analytics.Collector
	static    *static.Provider
	gatherer  prometheus.Gatherer
	cfg       *config.Config
	logger    logger.Logger
	cachePing CachePinger
}

// NewRouter creates a new API router. preview may be nil when no preview
// token is configured; cachePing may be nil when the cache backend has no
// connection to check.
func NewRouter(
	res *resolver.Resolver,
	preview *resolver.Resolver,
	collector *analytics.Collector,
	staticProvider *static.Provider,
	gatherer prometheus.Gatherer,
	cfg *config.Config,
	log logger.Logger,
	cachePing CachePinger,
) *Router {
	return &Router{
		resolver:  res,
		preview:   preview,
		collector: collector,
		static:    staticProvider,
		gatherer:  gatherer,
		cfg:       cfg,
		logger:    log,
		cachePing: cachePing,
	}
}

// SetupRoutes builds the gin engine with all routes attached.
func (r *Router) SetupRoutes() *gin.Engine {
	if !r.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(r.requestLogger())

	router.GET("/health", r.healthCheck)
	if r.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")

	v1.GET("/portfolio", r.getPortfolio)
	v1.GET("/blog", r.getBlogPosts)
	v1.GET("/blog/:slug", r.getBlogPostBySlug)
	v1.GET("/home", r.getHomepage)
	v1.GET("/about", r.getAboutPage)

	v1.GET("/analytics/dashboard", r.getDashboard)

	v1.POST("/webhooks/contentful", r.handleWebhook)

	return router
}

// requestLogger logs one line per request at debug level.
func (r *Router) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		r.logger.Debug("request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}

// healthCheck reports service status. The resolver itself cannot fail, so
// only the cache connection degrades health.
func (r *Router) healthCheck(c *gin.Context) {
	remoteConfigured := r.cfg.Contentful.SpaceID != "" && r.cfg.Contentful.AccessToken != ""
	health := gin.H{
		"status":          healthStatusHealthy,
		"service":         "content-resolver",
		"version":         serviceVersion,
		"dataset_version": r.static.Version(),
		"remote":          gin.H{"configured": remoteConfigured, "preview": r.preview != nil},
	}

	if r.cachePing != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		connected := true
		if err := r.cachePing.Ping(ctx); err != nil {
			connected = false
			health["status"] = healthStatusDegraded
		}
		health["cache"] = gin.H{"connected": connected}
	}

	c.JSON(http.StatusOK, health)
}
