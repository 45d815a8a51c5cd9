package fs_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blogmeta"
	"github.com/fwojciec/blogmeta/frontmatter"
	"github.com/fwojciec/blogmeta/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVocabulary(dir string, logger *slog.Logger) *fs.VocabularyService {
	return fs.NewVocabularyService(fs.NewCorpus(dir, frontmatter.NewParser(), logger), logger)
}

func TestVocabularyService_Categories(t *testing.T) {
	t.Parallel()

	t.Run("returns categories declared by posts", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"a.md":  "---\ncategory: Web Development\n---\nBody",
			"b.mdx": "---\ncategory: \"SEO\"\n---\nBody",
			"c.md":  "---\ncategory: Web Development\n---\nBody",
		})

		categories := newVocabulary(dir, nil).Categories(context.Background())

		assert.Equal(t, []blogmeta.Category{
			{ID: "web-development", Name: "Web Development", Slug: "web-development"},
			{ID: "seo", Name: "SEO", Slug: "seo"},
		}, categories)
	})

	t.Run("returns defaults when no post declares a category", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"a.md": "---\ntitle: No Category\n---\nBody",
			"b.md": "Plain body",
		})

		categories := newVocabulary(dir, nil).Categories(context.Background())

		require.Len(t, categories, 3)
		assert.Equal(t, "getting-started", categories[0].Slug)
		assert.Equal(t, "tutorials", categories[1].Slug)
		assert.Equal(t, "technology", categories[2].Slug)
	})

	t.Run("returns defaults and logs when directory is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		categories := newVocabulary(filepath.Join(t.TempDir(), "missing"), logger).Categories(context.Background())

		assert.Equal(t, blogmeta.DefaultCategories(), categories)
		assert.Contains(t, buf.String(), "failed to load categories")
	})

	t.Run("keeps posts with loosely written YAML", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"a.md": "---\ntitle: Astro SEO: A Complete Guide\ncategory: Guides\n---\nBody",
			"b.md": "---\ncategory: yes\n---\nBody",
			"c.md": "---\ncategory: 2025.10\n---\nBody",
		})

		categories := newVocabulary(dir, nil).Categories(context.Background())

		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Guides", "yes", "2025.10"}, names)
	})

	t.Run("skips unparsable posts without losing the rest", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"bad.md":  ";;;\n{\"category\": \n;;;\nBody",
			"good.md": "---\ncategory: Tutorials\n---\nBody",
		})

		categories := newVocabulary(dir, nil).Categories(context.Background())

		require.Len(t, categories, 1)
		assert.Equal(t, "Tutorials", categories[0].Name)
	})
}

func TestVocabularyService_Tags(t *testing.T) {
	t.Parallel()

	t.Run("treats differently cased tags as distinct", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"a.md": "---\ntags: [SEO, Guides]\n---\nBody",
			"b.md": "---\ntags: [seo, Reviews]\n---\nBody",
		})

		tags := newVocabulary(dir, nil).Tags(context.Background())

		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		assert.ElementsMatch(t, []string{"SEO", "seo", "Guides", "Reviews"}, names)
	})

	t.Run("keeps tags written as YAML booleans and decimals", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{
			"a.md": "---\ntitle: Release Notes: October\ntags: [no, 2025.10]\n---\nBody",
		})

		tags := newVocabulary(dir, nil).Tags(context.Background())

		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		assert.ElementsMatch(t, []string{"no", "2025.10"}, names)
	})

	t.Run("returns empty slice when no post has tags", func(t *testing.T) {
		t.Parallel()

		dir := writePosts(t, map[string]string{"a.md": "---\ncategory: Guides\n---\nBody"})

		tags := newVocabulary(dir, nil).Tags(context.Background())

		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("returns empty slice and logs when directory is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		tags := newVocabulary(filepath.Join(t.TempDir(), "missing"), logger).Tags(context.Background())

		assert.Empty(t, tags)
		assert.Contains(t, buf.String(), "failed to load tags")
	})
}
