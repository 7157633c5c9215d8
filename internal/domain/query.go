package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Sort orders accepted in QuerySpec.Order. A leading "-" inverts the order.
const (
	OrderDate  = "date"
	OrderTitle = "title"
	OrderIndex = "order"
)

// DefaultLimit is applied when a query does not specify a page size.
const DefaultLimit = 100

// QuerySpec is a caller-supplied filter for one resolution. It is treated as
// a value type: it builds both the remote query parameters and the cache key.
type QuerySpec struct {
	Category     string   `json:"category,omitempty" form:"category"`
	Tags         []string `json:"tags,omitempty" form:"tags"`
	Search       string   `json:"search,omitempty" form:"q"`
	FeaturedOnly bool     `json:"featured_only,omitempty" form:"featured"`
	Limit        int      `json:"limit,omitempty" form:"limit"`
	Skip         int      `json:"skip,omitempty" form:"skip"`
	Order        string   `json:"order,omitempty" form:"order"`
	Slug         string   `json:"slug,omitempty"`
}

// Normalize returns a copy with defaults applied and tags sorted, so that two
// semantically identical specs produce the same cache key.
func (q QuerySpec) Normalize() QuerySpec {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	if len(q.Tags) > 0 {
		tags := make([]string, 0, len(q.Tags))
		for _, t := range q.Tags {
			t = strings.TrimSpace(t)
			if t != "" {
				tags = append(tags, t)
			}
		}
		sort.Strings(tags)
		q.Tags = tags
	}
	return q
}

// CacheKey returns a stable serialization of (contentType, query) used as the
// response cache key. Each caller-supplied component is query-escaped so the
// "|" and "=" separators stay unambiguous and distinct queries never collide.
func (q QuerySpec) CacheKey(contentType ContentType) string {
	n := q.Normalize()

	var b strings.Builder
	b.WriteString("content:")
	b.WriteString(string(contentType))
	if n.Category != "" {
		b.WriteString("|cat=" + url.QueryEscape(n.Category))
	}
	if len(n.Tags) > 0 {
		escaped := make([]string, len(n.Tags))
		for i, tag := range n.Tags {
			escaped[i] = url.QueryEscape(tag)
		}
		b.WriteString("|tags=" + strings.Join(escaped, ","))
	}
	if n.Search != "" {
		b.WriteString("|q=" + url.QueryEscape(n.Search))
	}
	if n.FeaturedOnly {
		b.WriteString("|featured")
	}
	if n.Slug != "" {
		b.WriteString("|slug=" + url.QueryEscape(n.Slug))
	}
	if n.Order != "" {
		b.WriteString("|order=" + url.QueryEscape(n.Order))
	}
	b.WriteString("|limit=" + strconv.Itoa(n.Limit))
	b.WriteString("|skip=" + strconv.Itoa(n.Skip))

	return b.String()
}

// OrderField splits the order expression into its field name and direction.
// An empty expression defaults to descending date order.
func (q QuerySpec) OrderField() (field string, descending bool) {
	order := q.Order
	if order == "" {
		return OrderDate, true
	}
	if strings.HasPrefix(order, "-") {
		return strings.TrimPrefix(order, "-"), true
	}
	return order, false
}

// String implements fmt.Stringer for log output.
func (q QuerySpec) String() string {
	return fmt.Sprintf("QuerySpec{category=%q tags=%v featured=%t limit=%d skip=%d order=%q slug=%q}",
		q.Category, q.Tags, q.FeaturedOnly, q.Limit, q.Skip, q.Order, q.Slug)
}
