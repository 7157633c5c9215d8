package domain

import "time"

// Source identifies where a resolved result came from.
type Source string

// Result sources.
const (
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
	SourceStatic Source = "static"
)

// ImageRef is the application-facing shape of a media asset. OptimizedURL
// carries the delivery parameters (width, height, format, quality, fit)
// appended by the transformer.
type ImageRef struct {
	URL          string `json:"url"`
	OptimizedURL string `json:"optimized_url"`
	Alt          string `json:"alt"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// AuthorSummary is a flattened author reference.
type AuthorSummary struct {
	Name      string `json:"name"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// SEOMetadata carries the per-page SEO sub-object.
type SEOMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// PortfolioEntry is the UI-facing representation of one portfolio item.
// Every instance returned to a caller has passed validation or originated
// from the static dataset.
type PortfolioEntry struct {
	ID            string      `json:"id"`
	Slug          string      `json:"slug"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Images        []ImageRef  `json:"images"`
	FeaturedImage *ImageRef   `json:"featured_image,omitempty"`
	Tags          []string    `json:"tags"`
	Featured      bool        `json:"featured"`
	Order         int         `json:"order"`
	Date          time.Time   `json:"date"`
	SEO           SEOMetadata `json:"seo"`
}

// BlogPost is the UI-facing representation of one blog article.
type BlogPost struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Excerpt     string        `json:"excerpt"`
	Body        string        `json:"body"`
	Author      AuthorSummary `json:"author"`
	CoverImage  *ImageRef     `json:"cover_image,omitempty"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	PublishDate time.Time     `json:"publish_date"`
	ReadingTime int           `json:"reading_time"`
	SEO         SEOMetadata   `json:"seo"`
}

// HomepageContent is the UI-facing home page document.
type HomepageContent struct {
	ID          string      `json:"id"`
	Headline    string      `json:"headline"`
	Subheadline string      `json:"subheadline"`
	IntroText   string      `json:"intro_text"`
	HeroImage   *ImageRef   `json:"hero_image,omitempty"`
	CTALabel    string      `json:"cta_label"`
	CTALink     string      `json:"cta_link"`
	SEO         SEOMetadata `json:"seo"`
}

// AboutSection is one heading/body block in the about page.
type AboutSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// AboutPageContent is the UI-facing about page document.
type AboutPageContent struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Bio      string         `json:"bio"`
	Portrait *ImageRef      `json:"portrait,omitempty"`
	Sections []AboutSection `json:"sections"`
	Skills   []string       `json:"skills"`
	SEO      SEOMetadata    `json:"seo"`
}
