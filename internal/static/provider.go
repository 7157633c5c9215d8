package static

import (
	"sort"
	"strings"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

// Provider serves the bundled static dataset with the same filter, sort, and
// pagination semantics as the remote path, so a fallback result is
// indistinguishable from a remote one apart from its source tag.
type Provider struct{}

// NewProvider creates a static fallback provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Version reports the bundled dataset revision.
func (p *Provider) Version() string {
	return DatasetVersion
}

// PortfolioEntries returns the static portfolio filtered by the query, and
// the total match count before pagination.
func (p *Provider) PortfolioEntries(query domain.QuerySpec) ([]domain.PortfolioEntry, int) {
	query = query.Normalize()

	matched := make([]domain.PortfolioEntry, 0, len(portfolioEntries))
	for _, entry := range portfolioEntries {
		if matchPortfolio(entry, query) {
			matched = append(matched, entry)
		}
	}

	sortPortfolio(matched, query)
	total := len(matched)
	return paginate(matched, query), total
}

// BlogPosts returns the static blog posts filtered by the query, and the
// total match count before pagination.
func (p *Provider) BlogPosts(query domain.QuerySpec) ([]domain.BlogPost, int) {
	query = query.Normalize()

	matched := make([]domain.BlogPost, 0, len(blogPosts))
	for _, post := range blogPosts {
		if matchBlogPost(post, query) {
			matched = append(matched, post)
		}
	}

	sortBlogPosts(matched, query)
	total := len(matched)
	return paginate(matched, query), total
}

// BlogPostBySlug returns the static post with the given slug. The second
// return is false when there is no match; that is a caller-visible not-found,
// not a fallback failure.
func (p *Provider) BlogPostBySlug(slug string) (domain.BlogPost, bool) {
	for _, post := range blogPosts {
		if post.Slug == slug {
			return post, true
		}
	}
	return domain.BlogPost{}, false
}

// Homepage returns the static home page document.
func (p *Provider) Homepage() domain.HomepageContent {
	return homepageContent
}

// AboutPage returns the static about page document.
func (p *Provider) AboutPage() domain.AboutPageContent {
	return aboutPageContent
}

func matchPortfolio(entry domain.PortfolioEntry, q domain.QuerySpec) bool {
	if q.Category != "" && !strings.EqualFold(entry.Category, q.Category) {
		return false
	}
	if q.FeaturedOnly && !entry.Featured {
		return false
	}
	if len(q.Tags) > 0 && !anyTagMatch(entry.Tags, q.Tags) {
		return false
	}
	if q.Search != "" {
		return containsFold(entry.Title, q.Search) ||
			containsFold(entry.Description, q.Search) ||
			anySearchMatch(entry.Tags, q.Search)
	}
	return true
}

func matchBlogPost(post domain.BlogPost, q domain.QuerySpec) bool {
	if q.Category != "" && !strings.EqualFold(post.Category, q.Category) {
		return false
	}
	if len(q.Tags) > 0 && !anyTagMatch(post.Tags, q.Tags) {
		return false
	}
	if q.Search != "" {
		return containsFold(post.Title, q.Search) ||
			containsFold(post.Excerpt, q.Search) ||
			anySearchMatch(post.Tags, q.Search)
	}
	return true
}

func anyTagMatch(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func anySearchMatch(tags []string, term string) bool {
	for _, tag := range tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sortPortfolio(entries []domain.PortfolioEntry, q domain.QuerySpec) {
	field, desc := q.OrderField()
	sort.SliceStable(entries, func(i, j int) bool {
		var less bool
		switch field {
		case domain.OrderTitle:
			less = entries[i].Title < entries[j].Title
		case domain.OrderIndex:
			less = entries[i].Order < entries[j].Order
		default:
			less = entries[i].Date.Before(entries[j].Date)
		}
		if desc {
			return !less && !equalPortfolioField(entries[i], entries[j], field)
		}
		return less
	})
}

func equalPortfolioField(a, b domain.PortfolioEntry, field string) bool {
	switch field {
	case domain.OrderTitle:
		return a.Title == b.Title
	case domain.OrderIndex:
		return a.Order == b.Order
	default:
		return a.Date.Equal(b.Date)
	}
}

func sortBlogPosts(posts []domain.BlogPost, q domain.QuerySpec) {
	field, desc := q.OrderField()
	sort.SliceStable(posts, func(i, j int) bool {
		var less bool
		switch field {
		case domain.OrderTitle:
			less = posts[i].Title < posts[j].Title
		default:
			less = posts[i].PublishDate.Before(posts[j].PublishDate)
		}
		if desc {
			return !less && !equalBlogField(posts[i], posts[j], field)
		}
		return less
	})
}

func equalBlogField(a, b domain.BlogPost, field string) bool {
	if field == domain.OrderTitle {
		return a.Title == b.Title
	}
	return a.PublishDate.Equal(b.PublishDate)
}

func paginate[T any](items []T, q domain.QuerySpec) []T {
	if q.Skip >= len(items) {
		return []T{}
	}
	items = items[q.Skip:]
	if q.Limit > 0 && q.Limit < len(items) {
		items = items[:q.Limit]
	}
	// Copy so callers own their result
	out := make([]T, len(items))
	copy(out, items)
	return out
}
