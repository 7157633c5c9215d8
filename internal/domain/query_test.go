package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySpec_CacheKey_Stable(t *testing.T) {
	a := QuerySpec{Category: "Festival Makeup", Tags: []string{"glitter", "bold"}, Limit: 10}
	b := QuerySpec{Category: "Festival Makeup", Tags: []string{"bold", "glitter"}, Limit: 10}

	// Tag order must not change the key
	assert.Equal(t, a.CacheKey(TypePortfolioEntry), b.CacheKey(TypePortfolioEntry))
}

func TestQuerySpec_CacheKey_Distinct(t *testing.T) {
	base := QuerySpec{Category: "Bridal Makeup"}

	variants := []QuerySpec{
		{Category: "Editorial Makeup"},
		{Category: "Bridal Makeup", FeaturedOnly: true},
		{Category: "Bridal Makeup", Search: "smoky"},
		{Category: "Bridal Makeup", Skip: 10},
		{Category: "Bridal Makeup", Slug: "golden-hour"},
	}

	for _, v := range variants {
		assert.NotEqual(t, base.CacheKey(TypePortfolioEntry), v.CacheKey(TypePortfolioEntry))
	}

	// Same spec under a different content type is a different key
	assert.NotEqual(t, base.CacheKey(TypePortfolioEntry), base.CacheKey(TypeBlogPost))
}

func TestQuerySpec_CacheKey_EscapesSeparators(t *testing.T) {
	// A category carrying the key separators must not alias a query where
	// those components arrived as separate fields.
	smuggled := QuerySpec{Category: "Bridal|q=festival"}
	split := QuerySpec{Category: "Bridal", Search: "festival"}

	assert.NotEqual(t, smuggled.CacheKey(TypePortfolioEntry), split.CacheKey(TypePortfolioEntry))

	// Escaped keys stay under the prefix used for scoped invalidation
	assert.True(t, strings.HasPrefix(smuggled.CacheKey(TypePortfolioEntry), "content:portfolioEntry|"))
}

func TestQuerySpec_Normalize(t *testing.T) {
	q := QuerySpec{Tags: []string{" b ", "", "a"}, Limit: 0, Skip: -3}
	n := q.Normalize()

	assert.Equal(t, []string{"a", "b"}, n.Tags)
	assert.Equal(t, DefaultLimit, n.Limit)
	assert.Equal(t, 0, n.Skip)

	// Original spec is untouched
	assert.Equal(t, 0, q.Limit)
}

func TestQuerySpec_OrderField(t *testing.T) {
	tests := []struct {
		name      string
		order     string
		wantField string
		wantDesc  bool
	}{
		{"default is newest first", "", OrderDate, true},
		{"ascending title", "title", OrderTitle, false},
		{"descending date", "-date", OrderDate, true},
		{"ascending order index", "order", OrderIndex, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, desc := QuerySpec{Order: tt.order}.OrderField()
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestContentType_Valid(t *testing.T) {
	for _, ct := range AllContentTypes {
		assert.True(t, ct.Valid(), "content type %q should be valid", ct)
	}
	assert.False(t, ContentType("pressRelease").Valid())
}

func TestContentType_IsCollection(t *testing.T) {
	assert.True(t, TypePortfolioEntry.IsCollection())
	assert.True(t, TypeBlogPost.IsCollection())
	assert.False(t, TypeHomePage.IsCollection())
	assert.False(t, TypeAboutPage.IsCollection())
}
