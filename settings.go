package blogmeta

// SiteConfig describes the site a post collection belongs to.
type SiteConfig struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Locale      string `json:"locale"`
}

// SitemapSettings controls sitemap generation.
type SitemapSettings struct {
	Enabled    bool    `json:"enabled"`
	Priority   float64 `json:"priority"`
	ChangeFreq string  `json:"changefreq"`
}

// SchemaSettings controls structured data output.
type SchemaSettings struct {
	Enabled bool `json:"enabled"`
}

// SEOSettings holds search engine related settings.
type SEOSettings struct {
	Sitemap SitemapSettings `json:"sitemap"`
	Schema  SchemaSettings  `json:"schema"`
}

// DefaultSiteConfig returns the site configuration used when none is stored.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:       "Astro SEO Blog",
		Description: "A modern, SEO-optimized blog template",
		URL:         "https://astroseoblog.com",
		Author:      "Author",
		Locale:      "en",
	}
}

// DefaultSEOSettings returns the SEO settings used when none are stored.
func DefaultSEOSettings() SEOSettings {
	return SEOSettings{
		Sitemap: SitemapSettings{Enabled: true, Priority: 0.5, ChangeFreq: "weekly"},
		Schema:  SchemaSettings{Enabled: true},
	}
}

// SettingsService provides site-wide settings. Implementations fall back to
// the defaults when stored settings are unavailable.
type SettingsService interface {
	SiteConfig() SiteConfig
	SEOSettings() SEOSettings
}
