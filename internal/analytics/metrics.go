package analytics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace is the namespace for all resolver metrics.
	MetricsNamespace = "content_resolver"
)

// Metrics holds the Prometheus instruments fed by the collector.
type Metrics struct {
	ResolutionsTotal  *prometheus.CounterVec
	ResolutionSeconds *prometheus.HistogramVec
	CacheEvictions    prometheus.Counter
}

// NewMetrics creates and registers the resolver metrics. Passing nil uses
// the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		ResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: MetricsNamespace,
				Name:      "resolutions_total",
				Help:      "Total number of content resolutions",
			},
			[]string{"content_type", "source", "success"},
		),
		ResolutionSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: MetricsNamespace,
				Name:      "resolution_duration_seconds",
				Help:      "Duration of content resolutions in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
			},
			[]string{"content_type"},
		),
		CacheEvictions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: MetricsNamespace,
				Name:      "cache_invalidations_total",
				Help:      "Total number of cache invalidation requests",
			},
		),
	}
}

// Observe records one resolution sample.
func (m *Metrics) Observe(sample Sample) {
	m.ResolutionsTotal.WithLabelValues(
		sample.ContentType,
		string(sample.Source),
		strconv.FormatBool(sample.Success),
	).Inc()
	m.ResolutionSeconds.WithLabelValues(sample.ContentType).Observe(sample.Latency.Seconds())
}
