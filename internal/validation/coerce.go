package validation

import (
	"github.com/jonesrussell/content-resolver/internal/domain"
)

// The coercion helpers below accept both the typed values produced by the
// delivery-envelope decoder and plain JSON shapes (map[string]any, []any),
// so fixtures and webhook payloads validate the same way as live responses.

func asInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func asStringList(raw any) ([]string, bool) {
	switch list := raw.(type) {
	case []string:
		return list, true
	case []any:
		items := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
		return items, true
	default:
		return nil, false
	}
}

func asAsset(raw any) (*domain.RawAsset, bool) {
	switch a := raw.(type) {
	case *domain.RawAsset:
		return a, a != nil
	case domain.RawAsset:
		return &a, true
	case map[string]any:
		asset := assetFromMap(a)
		if asset.URL == "" {
			return nil, false
		}
		return &asset, true
	default:
		return nil, false
	}
}

func asAssetList(raw any) ([]domain.RawAsset, bool) {
	switch list := raw.(type) {
	case []domain.RawAsset:
		return list, true
	case []any:
		assets := make([]domain.RawAsset, 0, len(list))
		for _, item := range list {
			a, ok := asAsset(item)
			if !ok {
				return nil, false
			}
			assets = append(assets, *a)
		}
		return assets, true
	default:
		return nil, false
	}
}

func assetFromMap(m map[string]any) domain.RawAsset {
	asset := domain.RawAsset{}
	if s, ok := m["id"].(string); ok {
		asset.ID = s
	}
	if s, ok := m["url"].(string); ok {
		asset.URL = s
	}
	if s, ok := m["title"].(string); ok {
		asset.Title = s
	}
	if s, ok := m["description"].(string); ok {
		asset.Description = s
	}
	if s, ok := m["content_type"].(string); ok {
		asset.ContentType = s
	}
	if n, ok := asInt(m["size"]); ok {
		asset.Size = int64(n)
	}
	if n, ok := asInt(m["width"]); ok {
		asset.Width = n
	}
	if n, ok := asInt(m["height"]); ok {
		asset.Height = n
	}
	return asset
}

func asReference(raw any) (*domain.RawReference, bool) {
	switch r := raw.(type) {
	case *domain.RawReference:
		return r, r != nil
	case domain.RawReference:
		return &r, true
	case map[string]any:
		ref := domain.RawReference{}
		if s, ok := r["id"].(string); ok {
			ref.ID = s
		}
		if s, ok := r["content_type"].(string); ok {
			ref.ContentType = s
		}
		if f, ok := r["fields"].(map[string]any); ok {
			ref.Fields = f
		}
		if ref.Fields == nil {
			return nil, false
		}
		return &ref, true
	default:
		return nil, false
	}
}

func asSEO(raw any) (domain.SEOMetadata, bool) {
	switch s := raw.(type) {
	case domain.SEOMetadata:
		return s, true
	case map[string]any:
		seo := domain.SEOMetadata{}
		if title, ok := s["title"].(string); ok {
			seo.Title = title
		}
		if desc, ok := s["description"].(string); ok {
			seo.Description = desc
		}
		if kw, ok := s["keywords"]; ok {
			keywords, listOK := asStringList(kw)
			if !listOK {
				return domain.SEOMetadata{}, false
			}
			seo.Keywords = keywords
		}
		return seo, true
	default:
		return domain.SEOMetadata{}, false
	}
}

// asSections returns the well-formed sections and the count of malformed
// items it dropped. A nil first return means the value was not a list at all.
func asSections(raw any) ([]domain.AboutSection, int) {
	switch list := raw.(type) {
	case []domain.AboutSection:
		return list, 0
	case []any:
		sections := make([]domain.AboutSection, 0, len(list))
		dropped := 0
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				dropped++
				continue
			}
			heading, hok := m["heading"].(string)
			body, bok := m["body"].(string)
			if !hok || !bok || heading == "" {
				dropped++
				continue
			}
			sections = append(sections, domain.AboutSection{Heading: heading, Body: body})
		}
		return sections, dropped
	default:
		return nil, 0
	}
}
