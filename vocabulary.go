package blogmeta

import (
	"context"
	"strings"
)

// Category groups posts by topic.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Tag is a free-form label attached to posts.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewCategory returns the category named name. ID and slug are both the
// slugified name.
func NewCategory(name string) Category {
	slug := Slugify(name)
	return Category{ID: slug, Name: name, Slug: slug}
}

// NewTag returns the tag named name. ID and slug are both the slugified name.
func NewTag(name string) Tag {
	slug := Slugify(name)
	return Tag{ID: slug, Name: name, Slug: slug}
}

// DefaultCategories returns the categories used when no post declares one.
func DefaultCategories() []Category {
	return []Category{
		NewCategory("Getting Started"),
		NewCategory("Tutorials"),
		NewCategory("Technology"),
	}
}

// VocabularyService provides the categories and tags of a post collection.
// Both methods are best-effort and never fail; problems are logged by the
// implementation.
type VocabularyService interface {
	// Categories returns the distinct categories declared by posts, or
	// DefaultCategories when there are none.
	Categories(ctx context.Context) []Category

	// Tags returns the distinct tags declared by posts. The result may be empty.
	Tags(ctx context.Context) []Tag
}

// CollectCategories returns the distinct categories of posts in first-seen
// order. Names are compared after trimming, case-sensitively. Falls back to
// DefaultCategories when no post declares a category.
func CollectCategories(posts []*Post) []Category {
	var categories []Category
	seen := make(map[string]bool)

	for _, post := range posts {
		name := strings.TrimSpace(post.FrontMatter.Category)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, NewCategory(name))
	}

	if len(categories) == 0 {
		return DefaultCategories()
	}
	return categories
}

// CollectTags returns the distinct tags of posts in first-seen order. Names
// are compared after trimming, case-sensitively.
func CollectTags(posts []*Post) []Tag {
	tags := []Tag{}
	seen := make(map[string]bool)

	for _, post := range posts {
		for _, name := range post.FrontMatter.Tags {
			name = strings.TrimSpace(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, NewTag(name))
		}
	}

	return tags
}
