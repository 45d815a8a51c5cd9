package mock

import (
	"context"

	"github.com/fwojciec/blogmeta"
)

var _ blogmeta.PostService = (*PostService)(nil)

// PostService is a mock implementation of blogmeta.PostService.
type PostService struct {
	CreatePostFn   func(ctx context.Context, post *blogmeta.IndexedPost) error
	FindPostByIDFn func(ctx context.Context, id string) (*blogmeta.IndexedPost, error)
	FindPostsFn    func(ctx context.Context, filter blogmeta.PostFilter) ([]*blogmeta.IndexedPost, error)
	UpdatePostFn   func(ctx context.Context, id string, upd blogmeta.PostUpdate) (*blogmeta.IndexedPost, error)
	DeletePostFn   func(ctx context.Context, id string) error
}

func (s *PostService) CreatePost(ctx context.Context, post *blogmeta.IndexedPost) error {
	return s.CreatePostFn(ctx, post)
}

func (s *PostService) FindPostByID(ctx context.Context, id string) (*blogmeta.IndexedPost, error) {
	return s.FindPostByIDFn(ctx, id)
}

func (s *PostService) FindPosts(ctx context.Context, filter blogmeta.PostFilter) ([]*blogmeta.IndexedPost, error) {
	return s.FindPostsFn(ctx, filter)
}

func (s *PostService) UpdatePost(ctx context.Context, id string, upd blogmeta.PostUpdate) (*blogmeta.IndexedPost, error) {
	return s.UpdatePostFn(ctx, id, upd)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.DeletePostFn(ctx, id)
}
