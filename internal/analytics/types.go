// Package analytics records one sample per content resolution and
// aggregates them into a dashboard view of resolver health.
package analytics

import (
	"time"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

// Sample captures the outcome of a single resolution.
type Sample struct {
	ContentType string        `json:"content_type"`
	Source      domain.Source `json:"source"`
	Latency     time.Duration `json:"latency_ms"`
	Success     bool          `json:"success"`
	ErrorReason string        `json:"error_reason,omitempty"`
	At          time.Time     `json:"at"`
}

// SourceBreakdown holds per-source counts and their share of total
// resolutions.
type SourceBreakdown struct {
	Remote        int64   `json:"remote"`
	Cache         int64   `json:"cache"`
	Static        int64   `json:"static"`
	RemotePercent float64 `json:"remote_percent"`
	CachePercent  float64 `json:"cache_percent"`
	StaticPercent float64 `json:"static_percent"`
}

// Health bands. A high static share means the remote source is failing
// and users are seeing fallback content.
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthPoor      = "poor"
)

// Dashboard is the aggregated view served to operators.
type Dashboard struct {
	TotalResolutions int64            `json:"total_resolutions"`
	Sources          SourceBreakdown  `json:"sources"`
	ByContentType    map[string]int64 `json:"by_content_type"`
	Errors           int64            `json:"errors"`
	ErrorPercent     float64          `json:"error_percent"`
	AvgLatencyMs     float64          `json:"avg_latency_ms"`
	Health           string           `json:"health"`
	WindowStart      time.Time        `json:"window_start,omitempty"`
	WindowEnd        time.Time        `json:"window_end,omitempty"`
}
