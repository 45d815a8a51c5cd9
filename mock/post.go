package mock

import (
	"context"

	"github.com/fwojciec/blogmeta"
)

var _ blogmeta.PostSource = (*PostSource)(nil)

// PostSource is a mock implementation of blogmeta.PostSource.
type PostSource struct {
	ReadPostsFn func(ctx context.Context) (*blogmeta.PostScan, error)
}

func (s *PostSource) ReadPosts(ctx context.Context) (*blogmeta.PostScan, error) {
	return s.ReadPostsFn(ctx)
}

var _ blogmeta.FrontMatterParser = (*FrontMatterParser)(nil)

// FrontMatterParser is a mock implementation of blogmeta.FrontMatterParser.
type FrontMatterParser struct {
	ParseFn func(content string) (*blogmeta.FrontMatter, string, error)
}

func (p *FrontMatterParser) Parse(content string) (*blogmeta.FrontMatter, string, error) {
	return p.ParseFn(content)
}
