package contentful

import (
	"strings"
	"time"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

// envelope is the delivery API response shape for an entries search.
// Linked assets and entries arrive in includes and are stitched back into
// the item fields during resolve.
type envelope struct {
	Total    int        `json:"total"`
	Skip     int        `json:"skip"`
	Limit    int        `json:"limit"`
	Items    []wireItem `json:"items"`
	Includes struct {
		Asset []wireAsset `json:"Asset"`
		Entry []wireItem  `json:"Entry"`
	} `json:"includes"`
}

type wireItem struct {
	Sys    wireSys        `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type wireSys struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Revision    int       `json:"revision"`
	ContentType struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	} `json:"contentType"`
}

type wireAsset struct {
	Sys    wireSys `json:"sys"`
	Fields struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		File        struct {
			URL         string `json:"url"`
			ContentType string `json:"contentType"`
			Details     struct {
				Size  int64 `json:"size"`
				Image struct {
					Width  int `json:"width"`
					Height int `json:"height"`
				} `json:"image"`
			} `json:"details"`
		} `json:"file"`
	} `json:"fields"`
}

// resolve converts the wire items into RawEntry values with every asset and
// entry link replaced by its resolved include. Links pointing at nothing in
// the includes are dropped from the field map.
func (e *envelope) resolve() []domain.RawEntry {
	assets := make(map[string]domain.RawAsset, len(e.Includes.Asset))
	for _, a := range e.Includes.Asset {
		assets[a.Sys.ID] = a.toRawAsset()
	}

	linked := make(map[string]wireItem, len(e.Includes.Entry))
	for _, item := range e.Includes.Entry {
		linked[item.Sys.ID] = item
	}

	entries := make([]domain.RawEntry, 0, len(e.Items))
	for _, item := range e.Items {
		entries = append(entries, domain.RawEntry{
			Sys: domain.EntrySys{
				ID:          item.Sys.ID,
				ContentType: item.Sys.ContentType.Sys.ID,
				CreatedAt:   item.Sys.CreatedAt,
				UpdatedAt:   item.Sys.UpdatedAt,
				Revision:    item.Sys.Revision,
			},
			Fields: resolveFields(item.Fields, assets, linked),
		})
	}
	return entries
}

func (a wireAsset) toRawAsset() domain.RawAsset {
	return domain.RawAsset{
		ID:          a.Sys.ID,
		URL:         absoluteURL(a.Fields.File.URL),
		Title:       a.Fields.Title,
		Description: a.Fields.Description,
		ContentType: a.Fields.File.ContentType,
		Size:        a.Fields.File.Details.Size,
		Width:       a.Fields.File.Details.Image.Width,
		Height:      a.Fields.File.Details.Image.Height,
	}
}

// absoluteURL fixes up the protocol-relative asset URLs the delivery API
// returns.
func absoluteURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func resolveFields(fields map[string]any, assets map[string]domain.RawAsset, linked map[string]wireItem) map[string]any {
	resolved := make(map[string]any, len(fields))
	for key, value := range fields {
		v, ok := resolveValue(value, assets, linked)
		if !ok {
			continue
		}
		resolved[key] = v
	}
	return resolved
}

// resolveValue replaces link maps with their resolved includes. The second
// return is false for dangling links.
func resolveValue(value any, assets map[string]domain.RawAsset, linked map[string]wireItem) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		linkType, id, isLink := linkTarget(v)
		if !isLink {
			return v, true
		}
		switch linkType {
		case "Asset":
			asset, ok := assets[id]
			if !ok {
				return nil, false
			}
			return &asset, true
		case "Entry":
			item, ok := linked[id]
			if !ok {
				return nil, false
			}
			return &domain.RawReference{
				ID:          item.Sys.ID,
				ContentType: item.Sys.ContentType.Sys.ID,
				Fields:      resolveFields(item.Fields, assets, linked),
			}, true
		default:
			return nil, false
		}
	case []any:
		out := make([]any, 0, len(v))
		for _, elem := range v {
			resolved, ok := resolveValue(elem, assets, linked)
			if ok {
				out = append(out, resolved)
			}
		}
		return out, true
	default:
		return value, true
	}
}

// linkTarget inspects a field map for the delivery API link shape:
// {"sys": {"type": "Link", "linkType": "Asset"|"Entry", "id": "..."}}.
func linkTarget(v map[string]any) (linkType, id string, ok bool) {
	sys, hasSys := v["sys"].(map[string]any)
	if !hasSys {
		return "", "", false
	}
	if t, _ := sys["type"].(string); t != "Link" {
		return "", "", false
	}
	linkType, _ = sys["linkType"].(string)
	id, _ = sys["id"].(string)
	return linkType, id, linkType != "" && id != ""
}
