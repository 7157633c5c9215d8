// Package transform converts sanitized field maps into application models.
// Every function here is deterministic and pure; transforming the same
// sanitized input twice yields deep-equal output.
package transform

import (
	"fmt"
	"time"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

// Transform converts a validated entry's sanitized fields into the
// application model for its content type. It is the only constructor of
// app models on the remote path; the static dataset is the other.
func Transform(contentType domain.ContentType, entryID string, sanitized map[string]any) (any, error) {
	switch contentType {
	case domain.TypePortfolioEntry:
		return PortfolioEntry(entryID, sanitized), nil
	case domain.TypeBlogPost:
		return BlogPost(entryID, sanitized), nil
	case domain.TypeHomePage:
		return Homepage(entryID, sanitized), nil
	case domain.TypeAboutPage:
		return AboutPage(entryID, sanitized), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownContentType, contentType)
	}
}

// PortfolioEntry builds the portfolio model from sanitized fields.
func PortfolioEntry(entryID string, s map[string]any) domain.PortfolioEntry {
	return domain.PortfolioEntry{
		ID:            entryID,
		Slug:          getString(s, "slug"),
		Title:         getString(s, "title"),
		Description:   getString(s, "description"),
		Category:      getString(s, "category"),
		Images:        imageRefs(getAssetList(s, "images")),
		FeaturedImage: imageRefPtr(getAsset(s, "featuredImage")),
		Tags:          getStringList(s, "tags"),
		Featured:      getBool(s, "featured"),
		Order:         getInt(s, "order"),
		Date:          getTime(s, "date"),
		SEO:           getSEO(s, "seo"),
	}
}

// BlogPost builds the blog model from sanitized fields, flattening the author
// reference and computing the reading time from the rendered body.
func BlogPost(entryID string, s map[string]any) domain.BlogPost {
	body := getString(s, "body")
	return domain.BlogPost{
		ID:          entryID,
		Slug:        getString(s, "slug"),
		Title:       getString(s, "title"),
		Excerpt:     getString(s, "excerpt"),
		Body:        body,
		Author:      authorSummary(getReference(s, "author")),
		CoverImage:  imageRefPtr(getAsset(s, "coverImage")),
		Category:    getString(s, "category"),
		Tags:        getStringList(s, "tags"),
		PublishDate: getTime(s, "publishDate"),
		ReadingTime: ReadingTime(body),
		SEO:         getSEO(s, "seo"),
	}
}

// Homepage builds the home page model from sanitized fields.
func Homepage(entryID string, s map[string]any) domain.HomepageContent {
	return domain.HomepageContent{
		ID:          entryID,
		Headline:    getString(s, "headline"),
		Subheadline: getString(s, "subheadline"),
		IntroText:   getString(s, "introText"),
		HeroImage:   imageRefPtr(getAsset(s, "heroImage")),
		CTALabel:    getString(s, "ctaLabel"),
		CTALink:     getString(s, "ctaLink"),
		SEO:         getSEO(s, "seo"),
	}
}

// AboutPage builds the about page model from sanitized fields.
func AboutPage(entryID string, s map[string]any) domain.AboutPageContent {
	sections, _ := s["sections"].([]domain.AboutSection)
	if sections == nil {
		sections = []domain.AboutSection{}
	}
	return domain.AboutPageContent{
		ID:       entryID,
		Title:    getString(s, "title"),
		Bio:      getString(s, "bio"),
		Portrait: imageRefPtr(getAsset(s, "portrait")),
		Sections: sections,
		Skills:   getStringList(s, "skills"),
		SEO:      getSEO(s, "seo"),
	}
}

// imageRefs resolves a sanitized asset list to application image references.
func imageRefs(assets []domain.RawAsset) []domain.ImageRef {
	refs := make([]domain.ImageRef, 0, len(assets))
	for i := range assets {
		refs = append(refs, imageRef(assets[i]))
	}
	return refs
}

func imageRef(a domain.RawAsset) domain.ImageRef {
	alt := a.Description
	if alt == "" {
		alt = a.Title
	}
	return domain.ImageRef{
		URL:          a.URL,
		OptimizedURL: OptimizedImageURL(a.URL, ImageOptions{}),
		Alt:          alt,
		Width:        a.Width,
		Height:       a.Height,
	}
}

func imageRefPtr(a *domain.RawAsset) *domain.ImageRef {
	if a == nil {
		return nil
	}
	ref := imageRef(*a)
	return &ref
}

// authorSummary flattens an author entry reference to its inline summary.
func authorSummary(ref *domain.RawReference) domain.AuthorSummary {
	if ref == nil {
		return domain.AuthorSummary{}
	}
	summary := domain.AuthorSummary{}
	if name, ok := ref.Fields["name"].(string); ok {
		summary.Name = name
	}
	if bio, ok := ref.Fields["bio"].(string); ok {
		summary.Bio = bio
	}
	switch avatar := ref.Fields["avatar"].(type) {
	case *domain.RawAsset:
		if avatar != nil {
			summary.AvatarURL = avatar.URL
		}
	case domain.RawAsset:
		summary.AvatarURL = avatar.URL
	case string:
		summary.AvatarURL = avatar
	}
	return summary
}

// Typed accessors over the sanitized map. The validator guarantees types for
// fields it emitted; absent keys yield zero values.

func getString(s map[string]any, key string) string {
	v, _ := s[key].(string)
	return v
}

func getBool(s map[string]any, key string) bool {
	v, _ := s[key].(bool)
	return v
}

func getInt(s map[string]any, key string) int {
	v, _ := s[key].(int)
	return v
}

func getTime(s map[string]any, key string) time.Time {
	v, _ := s[key].(time.Time)
	return v
}

func getStringList(s map[string]any, key string) []string {
	v, _ := s[key].([]string)
	if v == nil {
		return []string{}
	}
	return v
}

func getAsset(s map[string]any, key string) *domain.RawAsset {
	v, _ := s[key].(*domain.RawAsset)
	return v
}

func getAssetList(s map[string]any, key string) []domain.RawAsset {
	v, _ := s[key].([]domain.RawAsset)
	return v
}

func getReference(s map[string]any, key string) *domain.RawReference {
	v, _ := s[key].(*domain.RawReference)
	return v
}

func getSEO(s map[string]any, key string) domain.SEOMetadata {
	v, _ := s[key].(domain.SEOMetadata)
	return v
}
