package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/blogmeta"
	main "github.com/fwojciec/blogmeta/cmd/blogmeta"
	"github.com/fwojciec/blogmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedPost(slug string, day int, draft bool) *blogmeta.Post {
	fm := blogmeta.FrontMatter{Title: slug, Draft: draft}
	if day > 0 {
		fm.PublishDate = time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
	}
	return &blogmeta.Post{Path: slug + ".md", Slug: slug, FrontMatter: fm}
}

func postSource(posts ...*blogmeta.Post) *mock.PostSource {
	return &mock.PostSource{
		ReadPostsFn: func(_ context.Context) (*blogmeta.PostScan, error) {
			return &blogmeta.PostScan{Posts: posts}, nil
		},
	}
}

func TestLatestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists published posts newest first", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Posts = postSource(
			datedPost("old", 1, false),
			datedPost("draft", 30, true),
			datedPost("new", 20, false),
			datedPost("undated", 0, false),
		)

		err := (&main.LatestCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"March 20, 2024  new  new\n"+
				"March 1, 2024  old  old\n"+
				"undated  undated  undated\n",
			stdout.String())
	})

	t.Run("includes drafts and applies limit", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Posts = postSource(
			datedPost("old", 1, false),
			datedPost("draft", 30, true),
			datedPost("new", 20, false),
		)

		err := (&main.LatestCmd{Limit: 2, Drafts: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"March 30, 2024  draft  draft\n"+
				"March 20, 2024  new  new\n",
			stdout.String())
	})

	t.Run("shows message when there are no posts", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Posts = postSource()

		err := (&main.LatestCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No posts found")
	})

	t.Run("returns error when posts cannot be read", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Posts = &mock.PostSource{
			ReadPostsFn: func(_ context.Context) (*blogmeta.PostScan, error) {
				return nil, blogmeta.Errorf(blogmeta.ENOTFOUND, "posts directory not found")
			},
		}

		err := (&main.LatestCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: posts directory not found")
	})
}
