// Package domain defines the content types, raw entry shapes, and application
// models shared across the resolver pipeline.
package domain

import "time"

// ContentType identifies one of the logical content types served by the resolver.
type ContentType string

// Supported content types.
const (
	TypePortfolioEntry ContentType = "portfolioEntry"
	TypeBlogPost       ContentType = "blogPost"
	TypeHomePage       ContentType = "homePage"
	TypeAboutPage      ContentType = "aboutPage"
)

// AllContentTypes lists every content type the resolver serves.
var AllContentTypes = []ContentType{
	TypePortfolioEntry,
	TypeBlogPost,
	TypeHomePage,
	TypeAboutPage,
}

// IsCollection reports whether a content type resolves to a list of entries
// rather than a single document.
func (c ContentType) IsCollection() bool {
	return c == TypePortfolioEntry || c == TypeBlogPost
}

// Valid reports whether the content type is one the resolver knows about.
func (c ContentType) Valid() bool {
	switch c {
	case TypePortfolioEntry, TypeBlogPost, TypeHomePage, TypeAboutPage:
		return true
	default:
		return false
	}
}

// EntrySys holds the system metadata attached to every remote entry.
type EntrySys struct {
	ID          string    `json:"id"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Revision    int       `json:"revision"`
}

// RawEntry is an untyped entry as returned by the delivery API, after asset
// and entry references have been resolved from the response includes.
// It is immutable once fetched and is discarded after transformation.
type RawEntry struct {
	Sys    EntrySys       `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// RawAsset is a resolved media asset reference inside a RawEntry field map.
// The validator checks its MIME category, byte size, pixel dimensions, and
// description text.
type RawAsset struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// RawReference is a resolved entry reference (e.g. an author) inside a
// RawEntry field map.
type RawReference struct {
	ID          string         `json:"id"`
	ContentType string         `json:"content_type"`
	Fields      map[string]any `json:"fields"`
}
