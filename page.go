package blogmeta

import (
	"math"
	"strings"
)

// PageMeta bundles everything extracted from a single post body.
type PageMeta struct {
	Headings    []Heading    `json:"headings"`
	FAQ         []FAQItem    `json:"faq"`
	Reviews     []ReviewItem `json:"reviews"`
	ReadingTime int          `json:"readingTime"` // minutes
}

// ExtractPage runs every single-document extractor over markdown.
func ExtractPage(markdown string) PageMeta {
	return PageMeta{
		Headings:    ExtractHeadings(markdown),
		FAQ:         ExtractFAQ(markdown),
		Reviews:     ExtractReviews(markdown),
		ReadingTime: ReadingTime(markdown),
	}
}

// WordsPerMinute is the reading speed assumed by ReadingTime.
const WordsPerMinute = 200

// ReadingTime estimates the minutes needed to read content. Words are runs
// of non-whitespace, so empty content reads in 0 minutes and leading or
// trailing whitespace never counts as a word.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
