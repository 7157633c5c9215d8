package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/content-resolver/internal/analytics"
	"github.com/jonesrussell/content-resolver/internal/cache"
	"github.com/jonesrussell/content-resolver/internal/config"
	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
	"github.com/jonesrussell/content-resolver/internal/resolver"
	"github.com/jonesrussell/content-resolver/internal/static"
)

func entryWebhookBody(contentType string) string {
	return `{
		"sys": {
			"id": "entry-1",
			"type": "Entry",
			"contentType": {"sys": {"id": "` + contentType + `"}}
		}
	}`
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Contentful.WebhookSecret = "expected"
	engine, _ := newTestRouter(t, &stubRemote{}, cfg)

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		entryWebhookBody("blogPost"),
		map[string]string{
			headerWebhookTopic:  "ContentManagement.Entry.publish",
			headerWebhookSecret: "wrong",
		})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookIgnoresDraftSaves(t *testing.T) {
	engine, _ := newTestRouter(t, &stubRemote{}, nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		entryWebhookBody("blogPost"),
		map[string]string{headerWebhookTopic: "ContentManagement.Entry.auto_save"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ignored", body["status"])
}

func TestWebhookInvalidatesContentType(t *testing.T) {
	remote := &stubRemote{
		entries: []domain.RawEntry{{
			Sys: domain.EntrySys{ID: "b1", ContentType: string(domain.TypeBlogPost)},
			Fields: map[string]any{
				"title":       "Post",
				"slug":        "post",
				"body":        "Body text.",
				"publishDate": "2024-06-01",
			},
		}},
		total: 1,
	}
	engine, _ := newTestRouter(t, remote, nil)

	// Prime the cache
	doRequest(engine, http.MethodGet, "/api/v1/blog", "", nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		entryWebhookBody("blogPost"),
		map[string]string{headerWebhookTopic: "ContentManagement.Entry.publish"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalidated", body["status"])
	assert.Equal(t, "blogPost", body["content_type"])
	assert.Equal(t, float64(1), body["removed"])
}

func TestWebhookInvalidatesPreviewCache(t *testing.T) {
	remote := &stubRemote{
		entries: []domain.RawEntry{{
			Sys: domain.EntrySys{ID: "b1", ContentType: string(domain.TypeBlogPost)},
			Fields: map[string]any{
				"title":       "Post",
				"slug":        "post",
				"body":        "Body text.",
				"publishDate": "2024-06-01",
			},
		}},
		total: 1,
	}

	registry := prometheus.NewRegistry()
	collector := analytics.NewCollector(64, analytics.NewMetrics(registry))
	previewCache := cache.NewMemory()
	res := resolver.New(resolver.Params{
		Remote:    remote,
		Cache:     cache.NewMemory(),
		Collector: collector,
		Logger:    logger.NewNopLogger(),
	})
	previewRes := resolver.New(resolver.Params{
		Remote:    remote,
		Cache:     previewCache,
		Collector: collector,
		Logger:    logger.NewNopLogger(),
	})

	router := NewRouter(res, previewRes, collector, static.NewProvider(),
		registry, &config.Config{}, logger.NewNopLogger(), nil)
	engine := router.SetupRoutes()

	doRequest(engine, http.MethodGet, "/api/v1/blog?preview=true", "", nil)
	require.Equal(t, 1, previewCache.Len())

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		entryWebhookBody("blogPost"),
		map[string]string{headerWebhookTopic: "ContentManagement.Entry.publish"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, previewCache.Len())
}

func TestWebhookIgnoresUnknownContentType(t *testing.T) {
	engine, _ := newTestRouter(t, &stubRemote{}, nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		entryWebhookBody("siteBanner"),
		map[string]string{headerWebhookTopic: "ContentManagement.Entry.publish"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ignored", body["status"])
}

func TestWebhookAssetEventInvalidatesAll(t *testing.T) {
	engine, _ := newTestRouter(t, &stubRemote{}, nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		`{"sys": {"id": "asset-1", "type": "Asset"}}`,
		map[string]string{headerWebhookTopic: "ContentManagement.Asset.publish"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalidated", body["status"])
	assert.Equal(t, "all", body["scope"])
}

func TestWebhookRejectsMalformedPayload(t *testing.T) {
	engine, _ := newTestRouter(t, &stubRemote{}, nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/webhooks/contentful",
		`{"sys": `,
		map[string]string{headerWebhookTopic: "ContentManagement.Entry.publish"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
