package main

import "github.com/fwojciec/blogmeta"

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, deps.Vocabulary.Categories(deps.Ctx))
}

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, orEmpty(deps.Vocabulary.Tags(deps.Ctx)))
}

// SettingsOutput is the result of the settings command.
type SettingsOutput struct {
	Site blogmeta.SiteConfig  `json:"site"`
	SEO  blogmeta.SEOSettings `json:"seo"`
}

// Run executes the settings command.
func (c *SettingsCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, SettingsOutput{
		Site: deps.Settings.SiteConfig(),
		SEO:  deps.Settings.SEOSettings(),
	})
}
