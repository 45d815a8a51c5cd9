package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogmeta"
)

// Ensure LoggingVocabularyService implements blogmeta.VocabularyService.
var _ blogmeta.VocabularyService = (*LoggingVocabularyService)(nil)

// LoggingVocabularyService wraps a VocabularyService with logging.
type LoggingVocabularyService struct {
	next   blogmeta.VocabularyService
	logger *slog.Logger
}

// NewLoggingVocabularyService creates a new LoggingVocabularyService.
func NewLoggingVocabularyService(next blogmeta.VocabularyService, logger *slog.Logger) *LoggingVocabularyService {
	return &LoggingVocabularyService{next: next, logger: logger}
}

// Categories delegates to the wrapped service and logs the operation.
func (s *LoggingVocabularyService) Categories(ctx context.Context) (categories []blogmeta.Category) {
	defer func(begin time.Time) {
		s.logger.Info("categories",
			"count", len(categories),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Categories(ctx)
}

// Tags delegates to the wrapped service and logs the operation.
func (s *LoggingVocabularyService) Tags(ctx context.Context) (tags []blogmeta.Tag) {
	defer func(begin time.Time) {
		s.logger.Info("tags",
			"count", len(tags),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Tags(ctx)
}
