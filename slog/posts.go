package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogmeta"
)

// Ensure LoggingPostSource implements blogmeta.PostSource.
var _ blogmeta.PostSource = (*LoggingPostSource)(nil)

// LoggingPostSource wraps a PostSource with debug logging.
type LoggingPostSource struct {
	next   blogmeta.PostSource
	logger *slog.Logger
}

// NewLoggingPostSource creates a new LoggingPostSource.
func NewLoggingPostSource(next blogmeta.PostSource, logger *slog.Logger) *LoggingPostSource {
	return &LoggingPostSource{next: next, logger: logger}
}

// ReadPosts delegates to the wrapped source and logs the scan.
func (s *LoggingPostSource) ReadPosts(ctx context.Context) (scan *blogmeta.PostScan, err error) {
	defer func(begin time.Time) {
		var count, skipped int
		if scan != nil {
			count, skipped = len(scan.Posts), len(scan.Skipped)
		}
		s.logger.Debug("post scan",
			"count", count,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadPosts(ctx)
}
