package main

import (
	"fmt"

	"github.com/fwojciec/blogmeta"
)

// Run executes the latest command.
func (c *LatestCmd) Run(deps *Dependencies) error {
	scan, err := deps.Posts.ReadPosts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmeta.ErrorMessage(err))
		return err
	}

	var published []*blogmeta.Post
	for _, p := range scan.Posts {
		if p.FrontMatter.Draft && !c.Drafts {
			continue
		}
		published = append(published, p)
	}

	blogmeta.SortPostsByDate(published)
	if c.Limit > 0 && len(published) > c.Limit {
		published = published[:c.Limit]
	}

	if len(published) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found.")
		return nil
	}

	for _, p := range published {
		date := blogmeta.FormatDate(p.FrontMatter.PublishDate)
		if date == "" {
			date = "undated"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", date, p.Slug, p.FrontMatter.Title)
	}

	return nil
}
