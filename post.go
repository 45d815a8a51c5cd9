package blogmeta

import (
	"context"
	"sort"
	"time"
)

// FrontMatter holds the metadata block at the top of a post.
type FrontMatter struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	PublishDate time.Time `json:"publishDate,omitempty"`
	Draft       bool      `json:"draft,omitempty"`
}

// Post represents a Markdown or MDX post read from the content directory.
type Post struct {
	Path        string      `json:"path"`
	Slug        string      `json:"slug"`
	FrontMatter FrontMatter `json:"frontMatter"`
	Body        string      `json:"body"` // Markdown without front matter
}

// FrontMatterParser splits a document into its front matter and body.
type FrontMatterParser interface {
	// Parse returns the parsed front matter and the remaining body.
	// A document without front matter yields an empty FrontMatter and the
	// whole content as body.
	Parse(content string) (*FrontMatter, string, error)
}

// PostScan is the result of reading a post collection.
type PostScan struct {
	Posts []*Post

	// Skipped lists post files that exist but could not be read or parsed.
	Skipped []SkippedPost
}

// SkippedPost names a post file left out of a scan and why.
type SkippedPost struct {
	Path string
	Err  error
}

// PostSource lists the posts of a content collection.
type PostSource interface {
	// ReadPosts reads every post in the collection. Posts that cannot be
	// read or parsed are reported in Skipped. An error is returned only
	// when the collection itself is unavailable.
	ReadPosts(ctx context.Context) (*PostScan, error)
}

// SortPostsByDate sorts posts newest first, in place, and returns them.
func SortPostsByDate(posts []*Post) []*Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].FrontMatter.PublishDate.After(posts[j].FrontMatter.PublishDate)
	})
	return posts
}

// DateLayout is the display format used by FormatDate.
const DateLayout = "January 2, 2006"

// FormatDate renders t for display, e.g. "March 5, 2024". The zero time
// renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
