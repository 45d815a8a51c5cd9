package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/blogmeta"
	"github.com/fwojciec/blogmeta/fs"
	"github.com/fwojciec/blogmeta/schemaorg"
)

// readPost reads a post file, reporting failures on stderr.
func readPost(deps *Dependencies, file string) (*blogmeta.Post, error) {
	post, err := fs.ReadPost(file, deps.Parser)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmeta.ErrorMessage(err))
		return nil, err
	}
	return post, nil
}

// Run executes the headings command.
func (c *HeadingsCmd) Run(deps *Dependencies) error {
	post, err := readPost(deps, c.File)
	if err != nil {
		return err
	}

	headings := blogmeta.ExtractHeadings(post.Body)
	if c.TOC {
		if outline := blogmeta.FormatOutline(headings); outline != "" {
			fmt.Fprintln(deps.Stdout, outline)
		}
		return nil
	}
	return writeJSON(deps.Stdout, orEmpty(headings))
}

// Run executes the faq command.
func (c *FAQCmd) Run(deps *Dependencies) error {
	post, err := readPost(deps, c.File)
	if err != nil {
		return err
	}

	items := blogmeta.ExtractFAQ(post.Body)
	if c.Schema {
		if page := schemaorg.NewFAQPage(items); page != nil {
			return writeJSON(deps.Stdout, page)
		}
		return nil
	}
	return writeJSON(deps.Stdout, orEmpty(items))
}

// Run executes the reviews command.
func (c *ReviewsCmd) Run(deps *Dependencies) error {
	post, err := readPost(deps, c.File)
	if err != nil {
		return err
	}

	items := blogmeta.ExtractReviews(post.Body)
	if c.Schema {
		if reviews := schemaorg.NewReviews(items); reviews != nil {
			return writeJSON(deps.Stdout, reviews)
		}
		return nil
	}
	return writeJSON(deps.Stdout, orEmpty(items))
}

// PageOutput is the result of the page command.
type PageOutput struct {
	Path        string               `json:"path"`
	Slug        string               `json:"slug"`
	FrontMatter blogmeta.FrontMatter `json:"frontMatter"`
	Meta        blogmeta.PageMeta    `json:"meta"`
	Schema      *PageSchema          `json:"schema,omitempty"`
}

// PageSchema holds the JSON-LD annotations emitted for a page.
type PageSchema struct {
	FAQ         *schemaorg.FAQPage        `json:"faq,omitempty"`
	Reviews     []schemaorg.Review        `json:"reviews,omitempty"`
	Breadcrumbs *schemaorg.BreadcrumbList `json:"breadcrumbs,omitempty"`
}

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	post, err := readPost(deps, c.File)
	if err != nil {
		return err
	}

	meta := blogmeta.ExtractPage(post.Body)
	meta.Headings = orEmpty(meta.Headings)
	meta.FAQ = orEmpty(meta.FAQ)
	meta.Reviews = orEmpty(meta.Reviews)

	out := PageOutput{
		Path:        post.Path,
		Slug:        post.Slug,
		FrontMatter: post.FrontMatter,
		Meta:        meta,
	}

	if deps.Settings.SEOSettings().Schema.Enabled {
		out.Schema = &PageSchema{
			FAQ:     schemaorg.NewFAQPage(meta.FAQ),
			Reviews: schemaorg.NewReviews(meta.Reviews),
		}
		if name := strings.TrimSpace(post.FrontMatter.Category); name != "" {
			out.Schema.Breadcrumbs = schemaorg.NewBreadcrumbs(deps.Settings.SiteConfig(), blogmeta.NewCategory(name))
		}
	}

	return writeJSON(deps.Stdout, out)
}
