package fs_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blogmeta"
	"github.com/fwojciec/blogmeta/frontmatter"
	"github.com/fwojciec/blogmeta/fs"
	"github.com/fwojciec/blogmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePosts writes files into a fresh temporary directory.
func writePosts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestIsPostFile(t *testing.T) {
	t.Parallel()

	assert.True(t, fs.IsPostFile("hello.md"))
	assert.True(t, fs.IsPostFile("hello.mdx"))
	assert.True(t, fs.IsPostFile("HELLO.MD"))
	assert.False(t, fs.IsPostFile("hello.markdown"))
	assert.False(t, fs.IsPostFile("hello.json"))
	assert.False(t, fs.IsPostFile("md"))
}

func TestCorpus_ReadPosts(t *testing.T) {
	t.Parallel()

	t.Run("reads md and mdx posts in file name order", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"b-second.mdx": "---\ntitle: Second\ncategory: Guides\n---\n## Body B",
			"a-first.md":   "---\ntitle: First\ntags: [Go]\n---\n## Body A",
		})
		corpus := fs.NewCorpus(dir, frontmatter.NewParser(), nil)

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, scan.Posts, 2)
		assert.Equal(t, "a-first.md", scan.Posts[0].Path)
		assert.Equal(t, "a-first", scan.Posts[0].Slug)
		assert.Equal(t, "First", scan.Posts[0].FrontMatter.Title)
		assert.Equal(t, []string{"Go"}, scan.Posts[0].FrontMatter.Tags)
		assert.Contains(t, scan.Posts[0].Body, "## Body A")
		assert.Equal(t, "b-second.mdx", scan.Posts[1].Path)
		assert.Equal(t, "Guides", scan.Posts[1].FrontMatter.Category)
	})

	t.Run("ignores other extensions and subdirectories", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"post.md":           "Body",
			"notes.txt":         "---\ncategory: Hidden\n---\n",
			"drafts/draft.md":   "---\ncategory: Nested\n---\n",
			"images/photo.json": "{}",
		})
		corpus := fs.NewCorpus(dir, frontmatter.NewParser(), nil)

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, scan.Posts, 1)
		assert.Equal(t, "post.md", scan.Posts[0].Path)
	})

	t.Run("skips malformed posts and logs them", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"broken.md": ";;;\n{\"tags\": [\"SEO\", \n;;;\nBody",
			"good.md":   "---\ncategory: Guides\n---\nBody",
		})
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		corpus := fs.NewCorpus(dir, frontmatter.NewParser(), logger)

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, scan.Posts, 1)
		assert.Equal(t, "good.md", scan.Posts[0].Path)
		require.Len(t, scan.Skipped, 1)
		assert.Equal(t, "broken.md", scan.Skipped[0].Path)
		assert.Equal(t, blogmeta.EINVALID, blogmeta.ErrorCode(scan.Skipped[0].Err))
		assert.Contains(t, buf.String(), "skipping post")
		assert.Contains(t, buf.String(), "file=broken.md")
	})

	t.Run("skips unreadable posts", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{"good.md": "Body"})
		require.NoError(t, os.Symlink(filepath.Join(dir, "missing-target"), filepath.Join(dir, "dangling.md")))
		corpus := fs.NewCorpus(dir, frontmatter.NewParser(), nil)

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, scan.Posts, 1)
		assert.Equal(t, "good.md", scan.Posts[0].Path)
		require.Len(t, scan.Skipped, 1)
		assert.Equal(t, "dangling.md", scan.Skipped[0].Path)
		assert.Error(t, scan.Skipped[0].Err)
	})

	t.Run("reads many posts with limited concurrency", func(t *testing.T) {
		t.Parallel()

		files := make(map[string]string)
		for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
			files[name+".md"] = "---\ncategory: " + name + "\n---\nBody"
		}
		dir := writePosts(t, files)
		corpus := fs.NewCorpus(dir, frontmatter.NewParser(), nil)
		corpus.Concurrency = 2

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, scan.Posts, 10)
		for i, post := range scan.Posts {
			assert.Equal(t, string(rune('a'+i))+".md", post.Path)
		}
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()

		corpus := fs.NewCorpus(filepath.Join(t.TempDir(), "nope"), frontmatter.NewParser(), nil)

		_, err := corpus.ReadPosts(context.Background())

		require.Error(t, err)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{"a.md": "Body", "b.md": "Body"})
		corpus := fs.NewCorpus(dir, frontmatter.NewParser(), nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := corpus.ReadPosts(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("hands raw file content to the parser", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{"a.md": "raw A", "b.md": "raw B"})
		parser := &mock.FrontMatterParser{
			ParseFn: func(content string) (*blogmeta.FrontMatter, string, error) {
				if content == "raw B" {
					return nil, "", blogmeta.Errorf(blogmeta.EINVALID, "bad")
				}
				return &blogmeta.FrontMatter{Title: "parsed"}, "body of " + content, nil
			},
		}
		corpus := fs.NewCorpus(dir, parser, nil)

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		require.Len(t, scan.Posts, 1)
		assert.Equal(t, "parsed", scan.Posts[0].FrontMatter.Title)
		assert.Equal(t, "body of raw A", scan.Posts[0].Body)
		require.Len(t, scan.Skipped, 1)
		assert.Equal(t, "b.md", scan.Skipped[0].Path)
	})

	t.Run("returns empty scan for empty directory", func(t *testing.T) {
		t.Parallel()

		corpus := fs.NewCorpus(t.TempDir(), frontmatter.NewParser(), nil)

		scan, err := corpus.ReadPosts(context.Background())

		require.NoError(t, err)
		assert.Empty(t, scan.Posts)
		assert.Empty(t, scan.Skipped)
	})
}

func TestReadPost(t *testing.T) {
	t.Parallel()

	t.Run("parses front matter and derives slug from file name", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"My First Post.md": "---\ntitle: Hello\ncategory: Tutorials\n---\n## Intro\n",
		})

		post, err := fs.ReadPost(filepath.Join(dir, "My First Post.md"), frontmatter.NewParser())

		require.NoError(t, err)
		assert.Equal(t, "My First Post.md", post.Path)
		assert.Equal(t, "my-first-post", post.Slug)
		assert.Equal(t, "Hello", post.FrontMatter.Title)
		assert.Equal(t, "Tutorials", post.FrontMatter.Category)
		assert.Contains(t, post.Body, "## Intro")
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadPost(filepath.Join(t.TempDir(), "missing.md"), frontmatter.NewParser())

		assert.Equal(t, blogmeta.ENOTFOUND, blogmeta.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed front matter", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{"bad.md": "+++\ntitle = [unclosed\n+++\nBody\n"})

		_, err := fs.ReadPost(filepath.Join(dir, "bad.md"), frontmatter.NewParser())

		assert.Equal(t, blogmeta.EINVALID, blogmeta.ErrorCode(err))
	})
}
