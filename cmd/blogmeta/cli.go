package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/blogmeta"
	"github.com/fwojciec/blogmeta/index"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Parser     blogmeta.FrontMatterParser
	Posts      blogmeta.PostSource
	Vocabulary blogmeta.VocabularyService
	Settings   blogmeta.SettingsService
	Index      blogmeta.PostService
	Indexer    *index.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PostsDir    string `name:"posts-dir" env:"BLOGMETA_POSTS_DIR" default:"public/data/posts" help:"Directory containing Markdown posts"`
	SettingsDir string `name:"settings-dir" env:"BLOGMETA_SETTINGS_DIR" default:"public/data/settings" help:"Directory containing site settings JSON files"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`

	Headings   HeadingsCmd   `cmd:"" help:"Extract h2/h3 headings from a post"`
	FAQ        FAQCmd        `cmd:"" name:"faq" help:"Extract FAQ question/answer pairs from a post"`
	Reviews    ReviewsCmd    `cmd:"" help:"Extract review ratings from a post's score table"`
	Page       PageCmd       `cmd:"" help:"Extract all metadata and structured data for a post"`
	Categories CategoriesCmd `cmd:"" help:"List categories used by posts"`
	Tags       TagsCmd       `cmd:"" help:"List tags used by posts"`
	Settings   SettingsCmd   `cmd:"" help:"Show site configuration and SEO settings"`
	Latest     LatestCmd     `cmd:"" help:"List the newest posts by publish date"`
	Index      IndexCmd      `cmd:"" help:"Index post metadata into the database"`
	Posts      PostsCmd      `cmd:"" help:"List indexed posts"`
	Show       ShowCmd       `cmd:"" help:"Show indexed metadata for a post"`
}

// HeadingsCmd is the "headings" subcommand.
type HeadingsCmd struct {
	File string `arg:"" help:"Markdown file" type:"path"`
	TOC  bool   `help:"Print a Markdown table of contents instead of JSON"`
}

// FAQCmd is the "faq" subcommand.
type FAQCmd struct {
	File   string `arg:"" help:"Markdown file" type:"path"`
	Schema bool   `help:"Print schema.org FAQPage JSON-LD"`
}

// ReviewsCmd is the "reviews" subcommand.
type ReviewsCmd struct {
	File   string `arg:"" help:"Markdown file" type:"path"`
	Schema bool   `help:"Print schema.org Review JSON-LD"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	File string `arg:"" help:"Markdown file" type:"path"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct{}

// SettingsCmd is the "settings" subcommand.
type SettingsCmd struct{}

// LatestCmd is the "latest" subcommand.
type LatestCmd struct {
	Limit  int  `short:"n" default:"10" help:"Maximum number of posts to list (0 for all)"`
	Drafts bool `help:"Include draft posts"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// PostsCmd is the "posts" subcommand.
type PostsCmd struct {
	Category string `short:"c" help:"Only list posts in this category"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug string `arg:"" help:"Post slug"`
}
