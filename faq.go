package blogmeta

import (
	"regexp"
	"strings"
)

// FAQItem is a question/answer pair recovered from a post's FAQ section.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var (
	// faqHeadingRe matches the level-2 heading that opens an FAQ section.
	faqHeadingRe = regexp.MustCompile(`(?im)^##\s+(?:FAQ|Frequently Asked Questions|Common Questions)`)

	// sectionHeadingRe matches any level-2 heading.
	sectionHeadingRe = regexp.MustCompile(`(?m)^##\s+`)

	// faqPairRe matches a bold question ending in "?", a blank line, and an
	// answer paragraph. Answer lines may not contain "*", so a line opening
	// the next bold question ends the paragraph.
	faqPairRe = regexp.MustCompile(`\*\*([^*]+\?)\*\*\s*\n\n([^\n*]+(?:\n[^\n*]+)*)`)
)

// ExtractFAQ returns the question/answer pairs of the first FAQ section in
// markdown. The section runs from its heading to the next level-2 heading.
// Returns an empty slice when there is no FAQ section; malformed pairs are
// skipped.
func ExtractFAQ(markdown string) []FAQItem {
	loc := faqHeadingRe.FindStringIndex(markdown)
	if loc == nil {
		return nil
	}

	section := faqSection(markdown[loc[0]:])

	var items []FAQItem
	for _, match := range faqPairRe.FindAllStringSubmatch(section, -1) {
		question := strings.TrimSpace(match[1])
		answer := strings.TrimSpace(match[2])
		if question == "" || answer == "" {
			continue
		}
		items = append(items, FAQItem{Question: question, Answer: answer})
	}

	return items
}

// faqSection cuts s, which starts at the FAQ heading, at the next level-2
// heading.
func faqSection(s string) string {
	// Skip the first byte so the FAQ heading itself does not match.
	loc := sectionHeadingRe.FindStringIndex(s[1:])
	if loc == nil {
		return s
	}
	return s[:loc[0]+1]
}
