// Package validation narrows untyped remote entries into sanitized, typed
// field maps. It is the only place raw delivery payloads are trusted to
// become internal data.
package validation

import "github.com/jonesrussell/content-resolver/internal/domain"

// FieldKind describes the expected shape of one schema field.
type FieldKind int

// Field kinds.
const (
	KindString FieldKind = iota
	KindText
	KindBool
	KindNumber
	KindDate
	KindStringList
	KindAsset
	KindAssetList
	KindReference
	KindSEO
	KindSectionList
)

// FieldRule describes one field of a content-type schema.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
}

var schemas = map[domain.ContentType][]FieldRule{
	domain.TypePortfolioEntry: {
		{Name: "title", Kind: KindString, Required: true},
		{Name: "description", Kind: KindText, Required: true},
		{Name: "category", Kind: KindString, Required: true},
		{Name: "slug", Kind: KindString},
		{Name: "images", Kind: KindAssetList},
		{Name: "featuredImage", Kind: KindAsset},
		{Name: "tags", Kind: KindStringList},
		{Name: "featured", Kind: KindBool},
		{Name: "order", Kind: KindNumber},
		{Name: "date", Kind: KindDate},
		{Name: "seo", Kind: KindSEO},
	},
	domain.TypeBlogPost: {
		{Name: "title", Kind: KindString, Required: true},
		{Name: "slug", Kind: KindString, Required: true},
		{Name: "body", Kind: KindText, Required: true},
		{Name: "publishDate", Kind: KindDate, Required: true},
		{Name: "excerpt", Kind: KindText},
		{Name: "author", Kind: KindReference},
		{Name: "coverImage", Kind: KindAsset},
		{Name: "category", Kind: KindString},
		{Name: "tags", Kind: KindStringList},
		{Name: "seo", Kind: KindSEO},
	},
	domain.TypeHomePage: {
		{Name: "headline", Kind: KindString, Required: true},
		{Name: "introText", Kind: KindText, Required: true},
		{Name: "subheadline", Kind: KindString},
		{Name: "heroImage", Kind: KindAsset},
		{Name: "ctaLabel", Kind: KindString},
		{Name: "ctaLink", Kind: KindString},
		{Name: "seo", Kind: KindSEO},
	},
	domain.TypeAboutPage: {
		{Name: "title", Kind: KindString, Required: true},
		{Name: "bio", Kind: KindText, Required: true},
		{Name: "portrait", Kind: KindAsset},
		{Name: "sections", Kind: KindSectionList},
		{Name: "skills", Kind: KindStringList},
		{Name: "seo", Kind: KindSEO},
	},
}

// SchemaFor returns the field rules for a content type.
func SchemaFor(contentType domain.ContentType) ([]FieldRule, bool) {
	rules, ok := schemas[contentType]
	return rules, ok
}

// defaultFor returns the sanitized zero value substituted when an optional
// field is missing or unusable.
func defaultFor(kind FieldKind) any {
	switch kind {
	case KindString, KindText:
		return ""
	case KindBool:
		return false
	case KindNumber:
		return 0
	case KindDate:
		return timeZero
	case KindStringList:
		return []string{}
	case KindAsset:
		return (*domain.RawAsset)(nil)
	case KindAssetList:
		return []domain.RawAsset{}
	case KindReference:
		return (*domain.RawReference)(nil)
	case KindSEO:
		return domain.SEOMetadata{}
	case KindSectionList:
		return []domain.AboutSection{}
	default:
		return nil
	}
}
