package main

import (
	"fmt"

	"github.com/fwojciec/blogmeta"
	"github.com/fwojciec/blogmeta/index"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	progress := func(event index.ProgressEvent) {
		if event.Type == index.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, blogmeta.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Indexer.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed posts: %d created, %d updated, %d unchanged, %d deleted, %d failed\n",
		result.Created, result.Updated, result.Unchanged, result.Deleted, result.Failed)
	return nil
}

// Run executes the posts command.
func (c *PostsCmd) Run(deps *Dependencies) error {
	filter := blogmeta.PostFilter{}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	posts, err := deps.Index.FindPosts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmeta.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found. Use 'blogmeta index' to index the posts directory.")
		return nil
	}

	for _, p := range posts {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.Slug, p.Title, p.Category)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	posts, err := deps.Index.FindPosts(deps.Ctx, blogmeta.PostFilter{Slug: &c.Slug, Limit: 1})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmeta.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintf(deps.Stderr, "error: post %q not found. Use 'blogmeta posts' to see indexed posts.\n", c.Slug)
		return blogmeta.Errorf(blogmeta.ENOTFOUND, "post %q not found", c.Slug)
	}

	return writeJSON(deps.Stdout, posts[0])
}
