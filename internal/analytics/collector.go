package analytics

import (
	"sync"
	"time"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

const (
	// DefaultCapacity bounds the sample window kept in memory.
	DefaultCapacity = 512

	staticShareWarn   = 0.25
	staticShareSevere = 0.50
	errorShareWarn    = 0.10
	errorShareSevere  = 0.25
	percentPrecision  = 100
)

// Collector keeps a bounded window of recent samples. When the window is
// full the oldest sample is evicted.
type Collector struct {
	mu       sync.Mutex
	samples  []Sample
	start    int
	count    int
	total    int64
	capacity int

	metrics *Metrics
}

// NewCollector creates a collector with the given window capacity.
// A capacity of zero or less uses DefaultCapacity.
func NewCollector(capacity int, metrics *Metrics) *Collector {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Collector{
		samples:  make([]Sample, capacity),
		capacity: capacity,
		metrics:  metrics,
	}
}

// Record appends a sample, evicting the oldest when the window is full.
func (c *Collector) Record(sample Sample) {
	if sample.At.IsZero() {
		sample.At = time.Now()
	}

	c.mu.Lock()
	if c.count == c.capacity {
		c.start = (c.start + 1) % c.capacity
	} else {
		c.count++
	}
	c.samples[(c.start+c.count-1)%c.capacity] = sample
	c.total++
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.Observe(sample)
	}
}

// Samples returns a copy of the current window, oldest first.
func (c *Collector) Samples() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Sample, c.count)
	for i := 0; i < c.count; i++ {
		out[i] = c.samples[(c.start+i)%c.capacity]
	}
	return out
}

// TotalRecorded returns the lifetime count, including evicted samples.
func (c *Collector) TotalRecorded() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Metrics returns the Prometheus instruments, nil when none were attached.
func (c *Collector) Metrics() *Metrics {
	return c.metrics
}

// CacheInvalidated counts one cache invalidation request.
func (c *Collector) CacheInvalidated() {
	if c.metrics != nil {
		c.metrics.CacheEvictions.Inc()
	}
}

// Reset drops the sample window and the lifetime counter.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.start = 0
	c.count = 0
	c.total = 0
	c.mu.Unlock()
}

// Dashboard aggregates the current window.
func (c *Collector) Dashboard() Dashboard {
	samples := c.Samples()

	dash := Dashboard{
		ByContentType: make(map[string]int64),
		Health:        HealthExcellent,
	}
	if len(samples) == 0 {
		return dash
	}

	var latencySum time.Duration
	for _, s := range samples {
		dash.TotalResolutions++
		dash.ByContentType[s.ContentType]++
		latencySum += s.Latency

		switch s.Source {
		case domain.SourceRemote:
			dash.Sources.Remote++
		case domain.SourceCache:
			dash.Sources.Cache++
		case domain.SourceStatic:
			dash.Sources.Static++
		}
		if !s.Success {
			dash.Errors++
		}
	}

	total := float64(dash.TotalResolutions)
	dash.Sources.RemotePercent = roundPercent(float64(dash.Sources.Remote) / total)
	dash.Sources.CachePercent = roundPercent(float64(dash.Sources.Cache) / total)
	dash.Sources.StaticPercent = roundPercent(float64(dash.Sources.Static) / total)
	dash.ErrorPercent = roundPercent(float64(dash.Errors) / total)
	dash.AvgLatencyMs = float64(latencySum.Microseconds()) / total / 1000
	dash.WindowStart = samples[0].At
	dash.WindowEnd = samples[len(samples)-1].At
	dash.Health = healthBand(
		float64(dash.Sources.Static)/total,
		float64(dash.Errors)/total,
	)

	return dash
}

// healthBand degrades one band per breached threshold. A static share
// above 25% and an error share above 10% each cost one band, and the
// severe thresholds (50% static, 25% errors) cost a second.
func healthBand(staticShare, errorShare float64) string {
	degradations := 0
	if staticShare > staticShareWarn {
		degradations++
	}
	if staticShare > staticShareSevere {
		degradations++
	}
	if errorShare > errorShareWarn {
		degradations++
	}
	if errorShare > errorShareSevere {
		degradations++
	}

	switch {
	case degradations == 0:
		return HealthExcellent
	case degradations == 1:
		return HealthGood
	case degradations == 2:
		return HealthFair
	default:
		return HealthPoor
	}
}

func roundPercent(share float64) float64 {
	return float64(int64(share*100*percentPrecision+0.5)) / percentPrecision
}
