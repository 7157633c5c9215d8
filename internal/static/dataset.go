// Package static provides the bundled fallback dataset. Its content is
// pre-shaped as valid application models and trusted by construction, so it
// bypasses validation entirely.
package static

import (
	"time"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/transform"
)

// DatasetVersion identifies the bundled dataset revision. Bump it when the
// static content changes so operators can tell which fallback build served.
const DatasetVersion = "2025-08-01"

func image(url, alt string, w, h int) domain.ImageRef {
	return domain.ImageRef{
		URL:          url,
		OptimizedURL: transform.OptimizedImageURL(url, transform.ImageOptions{}),
		Alt:          alt,
		Width:        w,
		Height:       h,
	}
}

func imagePtr(url, alt string, w, h int) *domain.ImageRef {
	ref := image(url, alt, w, h)
	return &ref
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var portfolioEntries = []domain.PortfolioEntry{
	{
		ID:          "static-pf-001",
		Slug:        "golden-hour-bridal",
		Title:       "Golden Hour Bridal",
		Description: "Soft glam bridal look with warm champagne tones, designed to photograph beautifully in late-afternoon light.",
		Category:    "Bridal Makeup",
		Images: []domain.ImageRef{
			image("https://images.example.net/static/bridal-01.jpg", "Bride with champagne-toned soft glam makeup", 1920, 1280),
			image("https://images.example.net/static/bridal-02.jpg", "Close-up of shimmering bridal eye look", 1600, 1067),
		},
		FeaturedImage: imagePtr("https://images.example.net/static/bridal-01.jpg", "Bride with champagne-toned soft glam makeup", 1920, 1280),
		Tags:          []string{"bridal", "soft glam", "warm tones"},
		Featured:      true,
		Order:         1,
		Date:          date(2024, time.September, 14),
		SEO: domain.SEOMetadata{
			Title:       "Golden Hour Bridal Makeup",
			Description: "Soft glam bridal makeup with warm champagne tones for golden-hour ceremonies, captured on location in Toronto.",
		},
	},
	{
		ID:          "static-pf-002",
		Slug:        "neon-dreams",
		Title:       "Neon Dreams",
		Description: "UV-reactive festival look layering electric pinks and greens with biodegradable glitter accents.",
		Category:    "Festival Makeup",
		Images: []domain.ImageRef{
			image("https://images.example.net/static/festival-01.jpg", "Model with UV-reactive neon festival makeup", 1920, 1280),
			image("https://images.example.net/static/festival-02.jpg", "Glitter detail across cheekbones under blacklight", 1920, 1280),
			image("https://images.example.net/static/festival-03.jpg", "Full neon look in daylight", 1600, 1067),
		},
		FeaturedImage: imagePtr("https://images.example.net/static/festival-01.jpg", "Model with UV-reactive neon festival makeup", 1920, 1280),
		Tags:          []string{"festival", "uv", "glitter", "neon"},
		Featured:      true,
		Order:         2,
		Date:          date(2024, time.June, 21),
		SEO: domain.SEOMetadata{
			Title:       "Neon Dreams Festival Makeup",
			Description: "UV-reactive festival makeup in electric pink and green with biodegradable glitter, built to last a full day outdoors.",
		},
	},
	{
		ID:          "static-pf-003",
		Slug:        "desert-mirage",
		Title:       "Desert Mirage",
		Description: "Sun-washed festival look with terracotta gradients, gold leaf brow accents, and a dewy finish.",
		Category:    "Festival Makeup",
		Images: []domain.ImageRef{
			image("https://images.example.net/static/festival-04.jpg", "Terracotta gradient festival makeup with gold leaf", 1920, 1280),
		},
		FeaturedImage: imagePtr("https://images.example.net/static/festival-04.jpg", "Terracotta gradient festival makeup with gold leaf", 1920, 1280),
		Tags:          []string{"festival", "gold leaf", "terracotta"},
		Order:         3,
		Date:          date(2024, time.July, 6),
		SEO: domain.SEOMetadata{
			Title:       "Desert Mirage Festival Makeup",
			Description: "Terracotta gradient festival makeup with gold leaf brow accents and a dewy finish, styled for desert festival season.",
		},
	},
	{
		ID:          "static-pf-004",
		Slug:        "monochrome-study",
		Title:       "Monochrome Study",
		Description: "Editorial black-and-white concept exploring graphic liner shapes and matte skin texture.",
		Category:    "Editorial Makeup",
		Images: []domain.ImageRef{
			image("https://images.example.net/static/editorial-01.jpg", "Graphic black liner on matte monochrome base", 2000, 1333),
		},
		FeaturedImage: imagePtr("https://images.example.net/static/editorial-01.jpg", "Graphic black liner on matte monochrome base", 2000, 1333),
		Tags:          []string{"editorial", "graphic liner", "monochrome"},
		Order:         4,
		Date:          date(2024, time.March, 29),
		SEO: domain.SEOMetadata{
			Title:       "Monochrome Study Editorial Makeup",
			Description: "Editorial black-and-white makeup concept with graphic liner shapes and matte skin texture, shot for print.",
		},
	},
	{
		ID:          "static-pf-005",
		Slug:        "porcelain-fracture",
		Title:       "Porcelain Fracture",
		Description: "Special-effects cracked-porcelain illusion built with layered liquid latex and hand-painted shadows.",
		Category:    "SFX Makeup",
		Images: []domain.ImageRef{
			image("https://images.example.net/static/sfx-01.jpg", "Cracked porcelain special effects makeup", 1920, 1280),
			image("https://images.example.net/static/sfx-02.jpg", "Detail of painted fracture lines", 1600, 1067),
		},
		FeaturedImage: imagePtr("https://images.example.net/static/sfx-01.jpg", "Cracked porcelain special effects makeup", 1920, 1280),
		Tags:          []string{"sfx", "illusion", "latex"},
		Order:         5,
		Date:          date(2023, time.October, 28),
		SEO: domain.SEOMetadata{
			Title:       "Porcelain Fracture SFX Makeup",
			Description: "Cracked porcelain special effects makeup illusion built with layered liquid latex and hand-painted fracture shadows.",
		},
	},
	{
		ID:          "static-pf-006",
		Slug:        "midnight-editorial",
		Title:       "Midnight Editorial",
		Description: "High-fashion night shoot pairing wet-look skin with deep sapphire smoke and silver foil details.",
		Category:    "Editorial Makeup",
		Images: []domain.ImageRef{
			image("https://images.example.net/static/editorial-02.jpg", "Sapphire smoky editorial makeup with silver foil", 1920, 1280),
		},
		FeaturedImage: imagePtr("https://images.example.net/static/editorial-02.jpg", "Sapphire smoky editorial makeup with silver foil", 1920, 1280),
		Tags:          []string{"editorial", "smoky", "foil"},
		Featured:      true,
		Order:         6,
		Date:          date(2024, time.January, 18),
		SEO: domain.SEOMetadata{
			Title:       "Midnight Editorial Makeup",
			Description: "High-fashion editorial makeup pairing wet-look skin with deep sapphire smoke and silver foil details for a night shoot.",
		},
	},
}

var blogPosts = []domain.BlogPost{
	{
		ID:      "static-bp-001",
		Slug:    "festival-makeup-that-lasts",
		Title:   "Festival Makeup That Lasts All Day",
		Excerpt: "Priming, setting, and touch-up strategies that keep a look intact from the first set to the encore.",
		Body: "<p>A festival look lives or dies by its base. Start with a gripping primer and give it a full minute to set " +
			"before any color goes on. Cream products outlast powders in heat, so build your look in cream layers and lock " +
			"each one with a fine mist rather than a heavy powder. Glitter belongs on top of a dedicated adhesive, never " +
			"straight onto skin. Pack a minimal touch-up kit: blotting papers, one lip color, and the setting mist. " +
			"Everything else stays home.</p>",
		Author:      domain.AuthorSummary{Name: "Maya Chen", Bio: "Toronto-based makeup artist specializing in festival and editorial work."},
		CoverImage:  imagePtr("https://images.example.net/static/blog-01.jpg", "Touch-up kit laid out beside festival makeup", 1600, 1067),
		Category:    "Tutorials",
		Tags:        []string{"festival", "longwear", "technique"},
		PublishDate: date(2024, time.May, 30),
		ReadingTime: 1,
		SEO: domain.SEOMetadata{
			Title:       "Festival Makeup That Lasts All Day",
			Description: "Priming, setting, and touch-up strategies that keep festival makeup intact through heat, sweat, and twelve-hour days.",
		},
	},
	{
		ID:      "static-bp-002",
		Slug:    "bridal-trial-checklist",
		Title:   "What To Bring To Your Bridal Trial",
		Excerpt: "Photos, fabric swatches, and honest skin history make the difference between a good trial and a great one.",
		Body: "<p>The bridal trial is a working session, not a reveal. Bring inspiration photos of your own face shape where " +
			"possible, a swatch of the dress fabric, and photos of the venue light. Tell your artist about sensitivities and " +
			"what foundation you wear day to day. Wear white or cream to the trial so the look reads in context, and plan to " +
			"keep the makeup on for at least six hours afterward to see how it wears.</p>",
		Author:      domain.AuthorSummary{Name: "Maya Chen", Bio: "Toronto-based makeup artist specializing in festival and editorial work."},
		CoverImage:  imagePtr("https://images.example.net/static/blog-02.jpg", "Bridal inspiration board with fabric swatches", 1600, 1067),
		Category:    "Bridal",
		Tags:        []string{"bridal", "planning"},
		PublishDate: date(2024, time.April, 12),
		ReadingTime: 1,
		SEO: domain.SEOMetadata{
			Title:       "What To Bring To Your Bridal Trial",
			Description: "A working checklist for bridal makeup trials: inspiration photos, fabric swatches, venue light, and honest skin history.",
		},
	},
	{
		ID:      "static-bp-003",
		Slug:    "skin-prep-before-camera",
		Title:   "Skin Prep Before You Step On Camera",
		Excerpt: "The forty-eight hours before a shoot matter more than the hour in the chair.",
		Body: "<p>Great on-camera skin starts two days out. Hydrate relentlessly, skip new actives, and resist the urge to " +
			"exfoliate the night before. Morning of, use a gentle cleanse and a light moisturizer only; rich creams ball up " +
			"under foundation. If a blemish appears, leave it alone and flag it to your artist, who can work around intact " +
			"skin far more easily than a picked spot.</p>",
		Author:      domain.AuthorSummary{Name: "Maya Chen", Bio: "Toronto-based makeup artist specializing in festival and editorial work."},
		CoverImage:  imagePtr("https://images.example.net/static/blog-03.jpg", "Minimal skincare products arranged on a vanity", 1600, 1067),
		Category:    "Tutorials",
		Tags:        []string{"skin prep", "editorial", "technique"},
		PublishDate: date(2024, time.February, 8),
		ReadingTime: 1,
		SEO: domain.SEOMetadata{
			Title:       "Skin Prep Before You Step On Camera",
			Description: "How to prepare skin in the forty-eight hours before a photo shoot so foundation sits clean and lasts the day.",
		},
	},
}

var homepageContent = domain.HomepageContent{
	ID:          "static-home",
	Headline:    "Makeup Artistry For Every Stage",
	Subheadline: "Bridal, festival, editorial, and SFX looks built around you",
	IntroText: "From golden-hour ceremonies to blacklight main stages, I design makeup that holds up in real conditions " +
		"and photographs the way it looks in the mirror.",
	HeroImage: imagePtr("https://images.example.net/static/hero.jpg", "Artist applying festival makeup backstage", 2400, 1600),
	CTALabel:  "View Portfolio",
	CTALink:   "/portfolio",
	SEO: domain.SEOMetadata{
		Title:       "Maya Chen Makeup Artistry",
		Description: "Toronto makeup artist for bridal, festival, editorial, and SFX work. Looks designed to last and photograph true.",
	},
}

var aboutPageContent = domain.AboutPageContent{
	ID:    "static-about",
	Title: "About Maya",
	Bio: "<p>I am a Toronto-based makeup artist with a decade of work across bridal suites, festival grounds, and " +
		"editorial sets. My approach starts with skin, builds in layers, and always leaves room for the person " +
		"underneath the look.</p>",
	Portrait: imagePtr("https://images.example.net/static/portrait.jpg", "Portrait of Maya Chen in her studio", 1200, 1500),
	Sections: []domain.AboutSection{
		{Heading: "Training", Body: "Classically trained at Complections College of Makeup Art and Design, with ongoing SFX coursework."},
		{Heading: "Published Work", Body: "Editorial features in three national print magazines and campaign work for two independent beauty brands."},
		{Heading: "On Set", Body: "Comfortable leading makeup departments on multi-day shoots and keying continuity across looks."},
	},
	Skills: []string{"Bridal", "Festival", "Editorial", "SFX", "Airbrush", "Continuity"},
	SEO: domain.SEOMetadata{
		Title:       "About Maya Chen",
		Description: "Toronto makeup artist with a decade of bridal, festival, editorial, and SFX experience. Training, published work, and on-set practice.",
	},
}
