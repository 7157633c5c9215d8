// Package contentful fetches raw entries from the Contentful delivery API
// and resolves linked assets and references into the shapes the validator
// consumes.
package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
)

const (
	// DefaultTimeout caps a single delivery API round trip.
	DefaultTimeout = 10 * time.Second

	deliveryHost = "https://cdn.contentful.com"
	previewHost  = "https://preview.contentful.com"
)

// Config carries the delivery API credentials. An empty SpaceID or
// AccessToken leaves the client unconfigured, which routes every fetch to
// the static fallback.
type Config struct {
	SpaceID      string
	Environment  string
	AccessToken  string
	PreviewToken string
	BaseURL      string
	Timeout      time.Duration
}

// Client talks to the Contentful delivery API.
type Client struct {
	cfg        Config
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a delivery API client.
func NewClient(cfg Config, log logger.Logger) *Client {
	if cfg.Environment == "" {
		cfg.Environment = "master"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = deliveryHost
	}

	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.AccessToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     log,
	}
}

// Preview returns a client that reads draft content through the preview API
// using the preview token. The returned client shares configuration but not
// credentials with the receiver.
func (c *Client) Preview() *Client {
	cfg := c.cfg
	if cfg.BaseURL == "" {
		cfg.BaseURL = previewHost
	}
	cfg.AccessToken = cfg.PreviewToken

	return NewClient(cfg, c.logger)
}

// Configured reports whether the client has credentials to fetch with.
func (c *Client) Configured() bool {
	return c.cfg.SpaceID != "" && c.token != ""
}

// Entries fetches raw entries for a content type, with linked assets and
// references already resolved. The returned total counts matches before
// pagination.
func (c *Client) Entries(ctx context.Context, contentType domain.ContentType, query domain.QuerySpec) ([]domain.RawEntry, int, error) {
	if !c.Configured() {
		return nil, 0, domain.ErrNotConfigured
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, c.cfg.SpaceID, c.cfg.Environment, c.queryParams(contentType, query).Encode())

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, 0, domain.NewRemoteError(domain.CauseNetwork, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		cause := domain.CauseNetwork
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			cause = domain.CauseTimeout
		}
		c.logger.Warn("Delivery API request failed",
			logger.String("content_type", string(contentType)),
			logger.Duration("duration", duration),
			logger.Error(err),
		)
		return nil, 0, domain.NewRemoteError(cause, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cause := domain.CauseStatus
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			cause = domain.CauseAuth
		}
		c.logger.Warn("Delivery API returned non-OK status",
			logger.String("content_type", string(contentType)),
			logger.Int("status_code", resp.StatusCode),
			logger.Duration("duration", duration),
		)
		return nil, 0, domain.NewRemoteError(cause,
			fmt.Errorf("delivery api returned status %d", resp.StatusCode))
	}

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Error("Failed to decode delivery API response",
			logger.String("content_type", string(contentType)),
			logger.Error(err),
		)
		return nil, 0, domain.NewRemoteError(domain.CauseDecode, fmt.Errorf("decode response: %w", err))
	}

	entries := env.resolve()
	c.logger.Debug("Fetched entries from delivery API",
		logger.String("content_type", string(contentType)),
		logger.Int("count", len(entries)),
		logger.Int("total", env.Total),
		logger.Duration("duration", duration),
	)

	return entries, env.Total, nil
}

// queryParams maps a QuerySpec onto delivery API search parameters.
func (c *Client) queryParams(contentType domain.ContentType, query domain.QuerySpec) url.Values {
	n := query.Normalize()

	params := url.Values{}
	params.Set("content_type", string(contentType))
	params.Set("include", "2")
	params.Set("limit", strconv.Itoa(n.Limit))
	if n.Skip > 0 {
		params.Set("skip", strconv.Itoa(n.Skip))
	}
	if n.Category != "" {
		params.Set("fields.category", n.Category)
	}
	if len(n.Tags) > 0 {
		params.Set("fields.tags[in]", strings.Join(n.Tags, ","))
	}
	if n.Search != "" {
		params.Set("query", n.Search)
	}
	if n.FeaturedOnly {
		params.Set("fields.featured", "true")
	}
	if n.Slug != "" {
		params.Set("fields.slug", n.Slug)
	}
	if contentType.IsCollection() {
		params.Set("order", orderParam(contentType, n))
	}

	return params
}

// orderParam translates the query order into a delivery API field path. Blog
// posts date on publishDate; portfolio entries date on date. Singleton types
// have no date field, so they are fetched without an order parameter.
func orderParam(contentType domain.ContentType, query domain.QuerySpec) string {
	field, descending := query.OrderField()

	var path string
	switch field {
	case domain.OrderDate:
		if contentType == domain.TypeBlogPost {
			path = "fields.publishDate"
		} else {
			path = "fields.date"
		}
	case domain.OrderTitle:
		path = "fields.title"
	case domain.OrderIndex:
		path = "fields.order"
	default:
		path = "fields." + field
	}

	if descending {
		return "-" + path
	}
	return path
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
