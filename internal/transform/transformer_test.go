package transform

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

func sanitizedBlogFields() map[string]any {
	return map[string]any{
		"title":       "Festival Season Prep",
		"slug":        "festival-season-prep",
		"body":        strings.Repeat("word ", 400),
		"excerpt":     "Everything you need before the first set.",
		"publishDate": time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		"author": &domain.RawReference{
			ID:          "author-1",
			ContentType: "author",
			Fields: map[string]any{
				"name":   "Maya Chen",
				"bio":    "Toronto-based MUA.",
				"avatar": "https://images.example.net/maya.jpg",
			},
		},
		"coverImage": &domain.RawAsset{
			URL:         "https://images.example.net/cover.jpg",
			Description: "Festival makeup spread",
			Width:       1920,
			Height:      1280,
		},
		"category": "Tutorials",
		"tags":     []string{"festival", "prep"},
		"seo":      domain.SEOMetadata{Title: "Festival Season Prep"},
	}
}

func TestBlogPost_ReadingTime(t *testing.T) {
	post := BlogPost("post-1", sanitizedBlogFields())

	// 400 words at 200 wpm
	assert.Equal(t, 2, post.ReadingTime)
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty body", "", 0},
		{"single word", "hello", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"exactly two minutes", strings.Repeat("word ", 400), 2},
		{"ceiling rounds up", strings.Repeat("word ", 201), 2},
		{"markup is stripped", "<p>" + strings.Repeat("word ", 200) + "</p>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.body))
		})
	}
}

func TestBlogPost_FlattensAuthor(t *testing.T) {
	post := BlogPost("post-1", sanitizedBlogFields())

	assert.Equal(t, "Maya Chen", post.Author.Name)
	assert.Equal(t, "Toronto-based MUA.", post.Author.Bio)
	assert.Equal(t, "https://images.example.net/maya.jpg", post.Author.AvatarURL)
}

func TestBlogPost_NilAuthor(t *testing.T) {
	fields := sanitizedBlogFields()
	fields["author"] = (*domain.RawReference)(nil)

	post := BlogPost("post-1", fields)
	assert.Equal(t, domain.AuthorSummary{}, post.Author)
}

func TestTransform_Idempotent(t *testing.T) {
	fields := sanitizedBlogFields()

	first, err := Transform(domain.TypeBlogPost, "post-1", fields)
	require.NoError(t, err)
	second, err := Transform(domain.TypeBlogPost, "post-1", fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTransform_UnknownContentType(t *testing.T) {
	_, err := Transform(domain.ContentType("pressRelease"), "x", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownContentType)
}

func TestPortfolioEntry_ImageRefs(t *testing.T) {
	entry := PortfolioEntry("entry-1", map[string]any{
		"title":    "Neon Dreams",
		"category": "Festival Makeup",
		"images": []domain.RawAsset{
			{URL: "https://images.example.net/a.jpg", Description: "look one", Width: 1920, Height: 1280},
			{URL: "https://images.example.net/b.jpg", Title: "look two", Width: 1920, Height: 1280},
		},
		"featuredImage": &domain.RawAsset{URL: "https://images.example.net/f.jpg", Description: "hero"},
	})

	require.Len(t, entry.Images, 2)
	assert.Equal(t, "look one", entry.Images[0].Alt)
	// Title stands in for a missing description
	assert.Equal(t, "look two", entry.Images[1].Alt)
	assert.Contains(t, entry.Images[0].OptimizedURL, "fm=webp")
	require.NotNil(t, entry.FeaturedImage)
	assert.Equal(t, "hero", entry.FeaturedImage.Alt)
}

func TestOptimizedImageURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		opts ImageOptions
		want []string
	}{
		{
			name: "defaults",
			base: "https://images.example.net/a.jpg",
			opts: ImageOptions{},
			want: []string{"w=1200", "fm=webp", "q=80", "fit=fill"},
		},
		{
			name: "explicit dimensions",
			base: "https://images.example.net/a.jpg",
			opts: ImageOptions{Width: 800, Height: 600, Format: "jpg", Quality: 60},
			want: []string{"w=800", "h=600", "fm=jpg", "q=60"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimizedImageURL(tt.base, tt.opts)
			for _, fragment := range tt.want {
				assert.Contains(t, got, fragment)
			}
		})
	}

	t.Run("empty base stays empty", func(t *testing.T) {
		assert.Equal(t, "", OptimizedImageURL("", ImageOptions{}))
	})
}

func TestAboutPage_Defaults(t *testing.T) {
	page := AboutPage("about-1", map[string]any{
		"title": "About",
		"bio":   "Makeup artist based in Toronto.",
	})

	assert.NotNil(t, page.Sections)
	assert.Empty(t, page.Sections)
	assert.NotNil(t, page.Skills)
	assert.Nil(t, page.Portrait)
}
