// Package fs provides file-based access to post collections and site settings.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/blogmeta"
	"golang.org/x/sync/errgroup"
)

// Ensure Corpus implements blogmeta.PostSource at compile time.
var _ blogmeta.PostSource = (*Corpus)(nil)

// DefaultConcurrency is the number of files read in parallel when
// Corpus.Concurrency is not set.
const DefaultConcurrency = 8

// IsPostFile reports whether filename has a post extension (.md or .mdx).
func IsPostFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

// Corpus reads the posts stored directly in a directory.
// Subdirectories are not scanned.
type Corpus struct {
	dir    string
	parser blogmeta.FrontMatterParser
	logger *slog.Logger

	// Concurrency limits parallel file reads.
	Concurrency int
}

// NewCorpus creates a new Corpus over dir. A nil logger discards output.
func NewCorpus(dir string, parser blogmeta.FrontMatterParser, logger *slog.Logger) *Corpus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Corpus{
		dir:         dir,
		parser:      parser,
		logger:      logger,
		Concurrency: DefaultConcurrency,
	}
}

// Dir returns the directory the corpus reads from.
func (c *Corpus) Dir() string {
	return c.dir
}

// ReadPosts reads and parses every post file in the directory, in file name
// order. Files that fail to read or parse are logged and reported as
// skipped.
func (c *Corpus) ReadPosts(ctx context.Context) (*blogmeta.PostScan, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsPostFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Each worker owns one slot, so results keep directory order.
	results := make([]*blogmeta.Post, len(files))
	failures := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			post, err := c.readPost(name)
			if err != nil {
				c.logger.Warn("skipping post", "file", name, "err", err)
				failures[i] = err
				return nil
			}
			results[i] = post
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	scan := &blogmeta.PostScan{Posts: make([]*blogmeta.Post, 0, len(results))}
	for i, post := range results {
		if post != nil {
			scan.Posts = append(scan.Posts, post)
			continue
		}
		if failures[i] != nil {
			scan.Skipped = append(scan.Skipped, blogmeta.SkippedPost{Path: files[i], Err: failures[i]})
		}
	}

	return scan, nil
}

func (c *Corpus) readPost(name string) (*blogmeta.Post, error) {
	return ReadPost(filepath.Join(c.dir, name), c.parser)
}

// ReadPost reads and parses a single post file. The post's Path is the
// file's base name and its Slug is derived from that name. Returns
// ENOTFOUND if the file does not exist.
func ReadPost(path string, parser blogmeta.FrontMatterParser) (*blogmeta.Post, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, blogmeta.Errorf(blogmeta.ENOTFOUND, "post file %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	fm, body, err := parser.Parse(string(data))
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	return &blogmeta.Post{
		Path:        name,
		Slug:        blogmeta.Slugify(strings.TrimSuffix(name, filepath.Ext(name))),
		FrontMatter: *fm,
		Body:        body,
	}, nil
}
