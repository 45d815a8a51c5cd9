package mock

import (
	"context"

	"github.com/fwojciec/blogmeta"
)

var _ blogmeta.VocabularyService = (*VocabularyService)(nil)

// VocabularyService is a mock implementation of blogmeta.VocabularyService.
type VocabularyService struct {
	CategoriesFn func(ctx context.Context) []blogmeta.Category
	TagsFn       func(ctx context.Context) []blogmeta.Tag
}

func (s *VocabularyService) Categories(ctx context.Context) []blogmeta.Category {
	return s.CategoriesFn(ctx)
}

func (s *VocabularyService) Tags(ctx context.Context) []blogmeta.Tag {
	return s.TagsFn(ctx)
}

var _ blogmeta.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of blogmeta.SettingsService.
type SettingsService struct {
	SiteConfigFn  func() blogmeta.SiteConfig
	SEOSettingsFn func() blogmeta.SEOSettings
}

func (s *SettingsService) SiteConfig() blogmeta.SiteConfig {
	return s.SiteConfigFn()
}

func (s *SettingsService) SEOSettings() blogmeta.SEOSettings {
	return s.SEOSettingsFn()
}
