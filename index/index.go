// Package index keeps a PostService in sync with a post collection.
// It extracts page metadata for every post and only rewrites posts whose
// content changed since the last run.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/blogmeta"
)

// Indexer extracts metadata from posts and stores it.
type Indexer struct {
	Source blogmeta.PostSource
	Posts  blogmeta.PostService
	Logger *slog.Logger
}

// Result holds the outcome of an index run.
type Result struct {
	Created   int
	Updated   int
	Unchanged int
	Deleted   int
	Failed    int
}

// ProgressEvent reports what happened to a single post.
type ProgressEvent struct {
	Type  ProgressType
	Path  string
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressCreated ProgressType = iota
	ProgressUpdated
	ProgressUnchanged
	ProgressDeleted
	ProgressFailed
)

// String returns a lowercase label for the event type.
func (t ProgressType) String() string {
	switch t {
	case ProgressCreated:
		return "created"
	case ProgressUpdated:
		return "updated"
	case ProgressUnchanged:
		return "unchanged"
	case ProgressDeleted:
		return "deleted"
	case ProgressFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProgressFunc is a callback for reporting index progress.
type ProgressFunc func(event ProgressEvent)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// fingerprint returns the hash of everything the index stores about post.
func fingerprint(post *blogmeta.Post) string {
	fm := post.FrontMatter
	return ComputeHash(strings.Join([]string{
		post.Slug,
		fm.Title,
		fm.Category,
		strings.Join(fm.Tags, "\x1e"),
		post.Body,
	}, "\x1f"))
}

// Run indexes every post in Source. Posts that are new are created, posts
// whose content changed are updated, and indexed posts whose file is gone
// are deleted. Posts the source skipped count as failed and stay indexed.
// Failures on individual posts are counted and logged; Run only returns an
// error when the source or the existing index cannot be read.
func (ix *Indexer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := ix.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	report := func(typ ProgressType, path string, err error) {
		if progress != nil {
			progress(ProgressEvent{Type: typ, Path: path, Error: err})
		}
	}

	scan, err := ix.Source.ReadPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}

	existing, err := ix.Posts.FindPosts(ctx, blogmeta.PostFilter{})
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	byPath := make(map[string]*blogmeta.IndexedPost, len(existing))
	for _, p := range existing {
		byPath[p.Path] = p
	}

	var result Result
	seen := make(map[string]bool, len(scan.Posts)+len(scan.Skipped))

	// A post that exists but cannot be parsed keeps its last indexed
	// metadata; only posts whose file is gone are deleted.
	for _, skipped := range scan.Skipped {
		seen[skipped.Path] = true
		result.Failed++
		logger.Warn("failed to read post", "file", skipped.Path, "err", skipped.Err)
		report(ProgressFailed, skipped.Path, skipped.Err)
	}

	for _, post := range scan.Posts {
		seen[post.Path] = true
		hash := fingerprint(post)

		indexed, ok := byPath[post.Path]
		if ok && indexed.ContentHash == hash {
			result.Unchanged++
			report(ProgressUnchanged, post.Path, nil)
			continue
		}

		meta := blogmeta.ExtractPage(post.Body)
		fm := post.FrontMatter
		category := strings.TrimSpace(fm.Category)
		tags := fm.Tags
		if tags == nil {
			tags = []string{}
		}

		if !ok {
			err = ix.Posts.CreatePost(ctx, &blogmeta.IndexedPost{
				Path:        post.Path,
				Slug:        post.Slug,
				Title:       fm.Title,
				Category:    category,
				Tags:        tags,
				ContentHash: hash,
				Meta:        meta,
			})
			if err == nil {
				result.Created++
				report(ProgressCreated, post.Path, nil)
				continue
			}
		} else {
			_, err = ix.Posts.UpdatePost(ctx, indexed.ID, blogmeta.PostUpdate{
				Slug:        &post.Slug,
				Title:       &fm.Title,
				Category:    &category,
				Tags:        tags,
				ContentHash: &hash,
				Meta:        &meta,
			})
			if err == nil {
				result.Updated++
				report(ProgressUpdated, post.Path, nil)
				continue
			}
		}

		result.Failed++
		logger.Warn("failed to index post", "file", post.Path, "err", err)
		report(ProgressFailed, post.Path, err)
	}

	for _, indexed := range existing {
		if seen[indexed.Path] {
			continue
		}
		if err := ix.Posts.DeletePost(ctx, indexed.ID); err != nil {
			result.Failed++
			logger.Warn("failed to remove post from index", "file", indexed.Path, "err", err)
			report(ProgressFailed, indexed.Path, err)
			continue
		}
		result.Deleted++
		report(ProgressDeleted, indexed.Path, nil)
	}

	logger.Info("index complete",
		"created", result.Created,
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"deleted", result.Deleted,
		"failed", result.Failed,
	)

	return &result, nil
}
