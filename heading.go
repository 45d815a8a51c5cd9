package blogmeta

import (
	"regexp"
	"strings"
)

// Heading represents an entry in a post's outline.
type Heading struct {
	Depth int    `json:"depth"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

// headingRe matches level-2 and level-3 headings. Level 1 is the page title
// and deeper levels are not part of the outline.
var headingRe = regexp.MustCompile(`(?m)^(#{2,3})\s+(.+)$`)

// ExtractHeadings returns the H2 and H3 headings of markdown in document order.
// Slugs are not deduplicated.
func ExtractHeadings(markdown string) []Heading {
	matches := headingRe.FindAllStringSubmatch(markdown, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, match := range matches {
		text := strings.TrimSpace(match[2])
		headings = append(headings, Heading{
			Depth: len(match[1]),
			Text:  text,
			Slug:  Slugify(text),
		})
	}

	return headings
}
