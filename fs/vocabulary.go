package fs

import (
	"context"
	"log/slog"

	"github.com/fwojciec/blogmeta"
)

// Ensure VocabularyService implements blogmeta.VocabularyService at compile time.
var _ blogmeta.VocabularyService = (*VocabularyService)(nil)

// VocabularyService builds categories and tags from a post collection.
// Every call rescans the collection.
type VocabularyService struct {
	posts  blogmeta.PostSource
	logger *slog.Logger
}

// NewVocabularyService creates a new VocabularyService. A nil logger
// discards output.
func NewVocabularyService(posts blogmeta.PostSource, logger *slog.Logger) *VocabularyService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &VocabularyService{posts: posts, logger: logger}
}

// Categories returns the categories declared by posts. When the collection
// cannot be read, or declares none, the default categories are returned.
func (s *VocabularyService) Categories(ctx context.Context) []blogmeta.Category {
	scan, err := s.posts.ReadPosts(ctx)
	if err != nil {
		s.logger.Error("failed to load categories, using defaults", "err", err)
		return blogmeta.DefaultCategories()
	}
	return blogmeta.CollectCategories(scan.Posts)
}

// Tags returns the tags declared by posts. When the collection cannot be
// read the result is empty.
func (s *VocabularyService) Tags(ctx context.Context) []blogmeta.Tag {
	scan, err := s.posts.ReadPosts(ctx)
	if err != nil {
		s.logger.Error("failed to load tags", "err", err)
		return []blogmeta.Tag{}
	}
	return blogmeta.CollectTags(scan.Posts)
}
