package blogmeta

import (
	"context"
	"time"
)

// IndexedPost is a post together with its extracted metadata, as stored in
// the index.
type IndexedPost struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ContentHash string    `json:"contentHash"`
	Meta        PageMeta  `json:"meta"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Validate returns an error if the post contains invalid fields.
func (p *IndexedPost) Validate() error {
	if p.Path == "" {
		return Errorf(EINVALID, "post path required")
	}
	if p.Slug == "" {
		return Errorf(EINVALID, "post slug required")
	}
	return nil
}

// PostService represents a service for managing indexed posts.
type PostService interface {
	// CreatePost stores a new post.
	CreatePost(ctx context.Context, post *IndexedPost) error

	// FindPostByID retrieves a post by ID.
	// Returns ENOTFOUND if post does not exist.
	FindPostByID(ctx context.Context, id string) (*IndexedPost, error)

	// FindPosts retrieves posts matching the filter.
	FindPosts(ctx context.Context, filter PostFilter) ([]*IndexedPost, error)

	// UpdatePost updates an existing post.
	// Returns ENOTFOUND if post does not exist.
	UpdatePost(ctx context.Context, id string, upd PostUpdate) (*IndexedPost, error)

	// DeletePost permanently removes a post.
	// Returns ENOTFOUND if post does not exist.
	DeletePost(ctx context.Context, id string) error
}

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	ID       *string `json:"id"`
	Path     *string `json:"path"`
	Slug     *string `json:"slug"`
	Category *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PostUpdate represents fields that can be updated on an indexed post.
type PostUpdate struct {
	Slug        *string   `json:"slug"`
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Tags        []string  `json:"tags"`
	ContentHash *string   `json:"contentHash"`
	Meta        *PageMeta `json:"meta"`
}
