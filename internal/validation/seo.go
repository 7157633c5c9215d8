package validation

import (
	"unicode/utf8"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

// SEO character bands. Search engines truncate titles past 60 characters;
// descriptions under 120 waste the snippet, over 160 get cut off.
const (
	seoTitleMaxLen       = 60
	seoDescriptionMinLen = 120
	seoDescriptionMaxLen = 160
	seoMaxKeywords       = 10
)

// checkSEO records warnings for the SEO sub-object. The keyword-count band
// is only checked when the keywords field was actually supplied; an absent
// list is covered by the enclosing object's own missing-field handling.
func (v *Validator) checkSEO(fieldName string, seo domain.SEOMetadata, raw any, res *Result) {
	if titleLen := utf8.RuneCountInString(seo.Title); titleLen > seoTitleMaxLen {
		res.addWarning("field %q: SEO title %d characters exceeds %d", fieldName,
			titleLen, seoTitleMaxLen)
	}

	if seo.Description != "" {
		descLen := utf8.RuneCountInString(seo.Description)
		if descLen < seoDescriptionMinLen {
			res.addWarning("field %q: SEO description %d characters, target is %d-%d", fieldName,
				descLen, seoDescriptionMinLen, seoDescriptionMaxLen)
		} else if descLen > seoDescriptionMaxLen {
			res.addWarning("field %q: SEO description %d characters, target is %d-%d", fieldName,
				descLen, seoDescriptionMinLen, seoDescriptionMaxLen)
		}
	}

	if keywordsSupplied(raw) {
		if len(seo.Keywords) == 0 {
			res.addWarning("field %q: SEO keywords list is empty", fieldName)
		} else if len(seo.Keywords) > seoMaxKeywords {
			res.addWarning("field %q: %d SEO keywords exceeds %d", fieldName,
				len(seo.Keywords), seoMaxKeywords)
		}
	}
}

func keywordsSupplied(raw any) bool {
	switch s := raw.(type) {
	case domain.SEOMetadata:
		return s.Keywords != nil
	case map[string]any:
		_, ok := s["keywords"]
		return ok
	default:
		return false
	}
}
