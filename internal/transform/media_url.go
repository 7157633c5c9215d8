package transform

import (
	"net/url"
	"strconv"
)

// Image delivery defaults. The delivery CDN accepts width, height, format,
// quality, and fit as query parameters on the asset URL.
const (
	DefaultImageWidth   = 1200
	DefaultImageQuality = 80
	DefaultImageFormat  = "webp"
	DefaultImageFit     = "fill"
)

// ImageOptions parameterizes an optimized asset URL. Zero values fall back
// to the delivery defaults; Height 0 preserves the aspect ratio.
type ImageOptions struct {
	Width   int
	Height  int
	Format  string
	Quality int
	Fit     string
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.Width <= 0 {
		o.Width = DefaultImageWidth
	}
	if o.Quality <= 0 {
		o.Quality = DefaultImageQuality
	}
	if o.Format == "" {
		o.Format = DefaultImageFormat
	}
	if o.Fit == "" {
		o.Fit = DefaultImageFit
	}
	return o
}

// OptimizedImageURL appends delivery parameters to a base asset URL. It is a
// pure string contract: no request is made and the base URL is returned
// unchanged when it cannot be parsed.
func OptimizedImageURL(base string, opts ImageOptions) string {
	if base == "" {
		return ""
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}

	opts = opts.withDefaults()

	q := u.Query()
	q.Set("w", strconv.Itoa(opts.Width))
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
	}
	q.Set("fm", opts.Format)
	q.Set("q", strconv.Itoa(opts.Quality))
	q.Set("fit", opts.Fit)
	u.RawQuery = q.Encode()

	return u.String()
}
