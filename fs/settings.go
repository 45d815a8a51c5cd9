package fs

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/blogmeta"
)

// Ensure SettingsLoader implements blogmeta.SettingsService at compile time.
var _ blogmeta.SettingsService = (*SettingsLoader)(nil)

// Settings file names inside the settings directory.
const (
	SiteConfigFile  = "site-config.json"
	SEOSettingsFile = "seo-settings.json"
)

// SettingsLoader reads site settings from JSON files in a directory.
// Fields missing from a file keep their default values.
type SettingsLoader struct {
	dir    string
	logger *slog.Logger
}

// NewSettingsLoader creates a new SettingsLoader. A nil logger discards output.
func NewSettingsLoader(dir string, logger *slog.Logger) *SettingsLoader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SettingsLoader{dir: dir, logger: logger}
}

// SiteConfig returns the stored site configuration, or the defaults if the
// file is missing or invalid.
func (l *SettingsLoader) SiteConfig() blogmeta.SiteConfig {
	cfg := blogmeta.DefaultSiteConfig()
	if err := l.load(SiteConfigFile, &cfg); err != nil {
		l.logger.Error("failed to load site config, using defaults", "file", SiteConfigFile, "err", err)
		return blogmeta.DefaultSiteConfig()
	}
	return cfg
}

// SEOSettings returns the stored SEO settings, or the defaults if the file
// is missing or invalid.
func (l *SettingsLoader) SEOSettings() blogmeta.SEOSettings {
	settings := blogmeta.DefaultSEOSettings()
	if err := l.load(SEOSettingsFile, &settings); err != nil {
		l.logger.Error("failed to load SEO settings, using defaults", "file", SEOSettingsFile, "err", err)
		return blogmeta.DefaultSEOSettings()
	}
	return settings
}

func (l *SettingsLoader) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
