package contentful

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
)

const entriesResponse = `{
	"sys": {"type": "Array"},
	"total": 7,
	"skip": 0,
	"limit": 100,
	"items": [
		{
			"sys": {
				"id": "entry-1",
				"type": "Entry",
				"createdAt": "2024-03-01T10:00:00Z",
				"updatedAt": "2024-04-01T10:00:00Z",
				"revision": 3,
				"contentType": {"sys": {"id": "blogPost"}}
			},
			"fields": {
				"title": "Festival Makeup That Lasts",
				"slug": "festival-makeup-that-lasts",
				"coverImage": {"sys": {"type": "Link", "linkType": "Asset", "id": "asset-1"}},
				"author": {"sys": {"type": "Link", "linkType": "Entry", "id": "author-1"}},
				"tags": ["festival", "longwear"],
				"missingAsset": {"sys": {"type": "Link", "linkType": "Asset", "id": "nope"}}
			}
		}
	],
	"includes": {
		"Asset": [
			{
				"sys": {"id": "asset-1", "type": "Asset"},
				"fields": {
					"title": "Cover",
					"description": "Glitter close-up",
					"file": {
						"url": "//images.ctfassets.net/space/cover.jpg",
						"contentType": "image/jpeg",
						"details": {"size": 1048576, "image": {"width": 1600, "height": 1067}}
					}
				}
			}
		],
		"Entry": [
			{
				"sys": {
					"id": "author-1",
					"type": "Entry",
					"contentType": {"sys": {"id": "author"}}
				},
				"fields": {"name": "Maya Chen"}
			}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		SpaceID:     "space-1",
		AccessToken: "token-1",
		BaseURL:     server.URL,
	}, logger.NewNopLogger())
}

func TestEntriesNotConfigured(t *testing.T) {
	client := NewClient(Config{}, logger.NewNopLogger())

	assert.False(t, client.Configured())

	_, _, err := client.Entries(context.Background(), domain.TypeBlogPost, domain.QuerySpec{})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestEntriesResolvesLinks(t *testing.T) {
	var gotPath string
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(entriesResponse))
	})

	entries, total, err := client.Entries(context.Background(), domain.TypeBlogPost, domain.QuerySpec{})
	require.NoError(t, err)

	assert.Equal(t, "/spaces/space-1/environments/master/entries", gotPath)
	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, 7, total)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "entry-1", entry.Sys.ID)
	assert.Equal(t, "blogPost", entry.Sys.ContentType)
	assert.Equal(t, 3, entry.Sys.Revision)

	asset, ok := entry.Fields["coverImage"].(*domain.RawAsset)
	require.True(t, ok, "asset link should resolve to a RawAsset")
	assert.Equal(t, "https://images.ctfassets.net/space/cover.jpg", asset.URL)
	assert.Equal(t, "Glitter close-up", asset.Description)
	assert.Equal(t, int64(1048576), asset.Size)
	assert.Equal(t, 1600, asset.Width)

	author, ok := entry.Fields["author"].(*domain.RawReference)
	require.True(t, ok, "entry link should resolve to a RawReference")
	assert.Equal(t, "author", author.ContentType)
	assert.Equal(t, "Maya Chen", author.Fields["name"])

	_, hasDangling := entry.Fields["missingAsset"]
	assert.False(t, hasDangling, "dangling links should be dropped")
}

func TestEntriesQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
	})

	_, _, err := client.Entries(context.Background(), domain.TypePortfolioEntry, domain.QuerySpec{
		Category:     "Festival Makeup",
		Tags:         []string{"glitter", "uv"},
		FeaturedOnly: true,
		Limit:        20,
		Skip:         40,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"portfolioEntry"}, gotQuery["content_type"])
	assert.Equal(t, []string{"Festival Makeup"}, gotQuery["fields.category"])
	assert.Equal(t, []string{"glitter,uv"}, gotQuery["fields.tags[in]"])
	assert.Equal(t, []string{"true"}, gotQuery["fields.featured"])
	assert.Equal(t, []string{"20"}, gotQuery["limit"])
	assert.Equal(t, []string{"40"}, gotQuery["skip"])
	assert.Equal(t, []string{"-fields.date"}, gotQuery["order"])
}

func TestEntriesNoOrderForSingletons(t *testing.T) {
	// homePage and aboutPage have no date field; ordering on one would make
	// the delivery API reject the request.
	for _, ct := range []domain.ContentType{domain.TypeHomePage, domain.TypeAboutPage} {
		var gotQuery map[string][]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total": 1, "items": []}`))
		})

		_, _, err := client.Entries(context.Background(), ct, domain.QuerySpec{Limit: 1})
		require.NoError(t, err)
		assert.NotContains(t, gotQuery, "order", "singleton %s should be fetched without an order", ct)
	}
}

func TestEntriesOrderParam(t *testing.T) {
	tests := []struct {
		name        string
		contentType domain.ContentType
		order       string
		want        string
	}{
		{"blog default dates on publishDate", domain.TypeBlogPost, "", "-fields.publishDate"},
		{"portfolio default dates on date", domain.TypePortfolioEntry, "", "-fields.date"},
		{"ascending title", domain.TypeBlogPost, "title", "fields.title"},
		{"descending order index", domain.TypePortfolioEntry, "-order", "-fields.order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderParam(tt.contentType, domain.QuerySpec{Order: tt.order})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntriesErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   domain.RemoteCause
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, domain.CauseAuth},
		{"forbidden", http.StatusForbidden, `{}`, domain.CauseAuth},
		{"server error", http.StatusInternalServerError, `{}`, domain.CauseStatus},
		{"rate limited", http.StatusTooManyRequests, `{}`, domain.CauseStatus},
		{"malformed body", http.StatusOK, `{"total": `, domain.CauseDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, _, err := client.Entries(context.Background(), domain.TypeBlogPost, domain.QuerySpec{})
			require.Error(t, err)
			assert.Equal(t, tt.want, domain.RemoteCauseOf(err))
		})
	}
}

func TestPreviewClient(t *testing.T) {
	base := NewClient(Config{
		SpaceID:      "space-1",
		AccessToken:  "delivery-token",
		PreviewToken: "preview-token",
	}, logger.NewNopLogger())

	preview := base.Preview()
	assert.True(t, preview.Configured())
	assert.Equal(t, "preview-token", preview.token)
	assert.Equal(t, previewHost, preview.baseURL)

	noPreview := NewClient(Config{
		SpaceID:     "space-1",
		AccessToken: "delivery-token",
	}, logger.NewNopLogger()).Preview()
	assert.False(t, noPreview.Configured(), "missing preview token leaves the preview client unconfigured")
}
