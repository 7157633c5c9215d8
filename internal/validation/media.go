package validation

import (
	"strings"

	"github.com/jonesrussell/content-resolver/internal/domain"
)

// Media asset banding thresholds.
const (
	// optimalAssetBytes is the size under which an asset needs no attention.
	optimalAssetBytes = 2 << 20 // 2 MB
	// oversizeAssetBytes is the size above which a warning is recorded.
	oversizeAssetBytes = 5 << 20 // 5 MB

	// Pixel-dimension bands. Below the minimum the image renders poorly on
	// modern displays; above the maximum it wastes bandwidth.
	minAssetWidth  = 800
	minAssetHeight = 600
	maxAssetWidth  = 4000
	maxAssetHeight = 4000

	bytesPerMB = 1 << 20
)

// checkAsset records warnings for one media asset: MIME category, byte-size
// band, pixel-dimension band, and alt text presence. Media problems never
// invalidate an entry.
func (v *Validator) checkAsset(fieldName string, asset domain.RawAsset, res *Result) {
	if asset.ContentType != "" && !strings.HasPrefix(asset.ContentType, "image/") {
		res.addWarning("field %q: asset is %s, expected image/*", fieldName, asset.ContentType)
	}

	if asset.Size > oversizeAssetBytes {
		res.addWarning("field %q: asset size %.1f MB exceeds 5 MB", fieldName,
			float64(asset.Size)/bytesPerMB)
	}

	if asset.Width > 0 && asset.Height > 0 {
		if asset.Width < minAssetWidth || asset.Height < minAssetHeight {
			res.addWarning("field %q: resolution %dx%d below %dx%d", fieldName,
				asset.Width, asset.Height, minAssetWidth, minAssetHeight)
		}
		if asset.Width > maxAssetWidth || asset.Height > maxAssetHeight {
			res.addWarning("field %q: resolution %dx%d above %dx%d", fieldName,
				asset.Width, asset.Height, maxAssetWidth, maxAssetHeight)
		}
	}

	// Alt text is an accessibility requirement
	if strings.TrimSpace(asset.Description) == "" && strings.TrimSpace(asset.Title) == "" {
		res.addWarning("field %q: missing alt text", fieldName)
	}
}
