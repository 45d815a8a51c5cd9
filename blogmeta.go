// Package blogmeta recovers structured metadata from blog posts written in
// Markdown/MDX: heading outlines, FAQ entries, comparison table ratings and
// the category/tag vocabulary of a post collection.
//
// The extractors are best-effort pattern matchers over loosely structured
// prose. They never fail: absence of data is an empty result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, frontmatter/, fs/).
package blogmeta
