package blogmeta

import "strings"

// FormatOutline renders headings as a nested Markdown list of anchor links.
// H3 entries are indented one level under the preceding H2.
func FormatOutline(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	lines := make([]string, 0, len(headings))
	for _, h := range headings {
		indent := ""
		if h.Depth > 2 {
			indent = strings.Repeat("  ", h.Depth-2)
		}
		lines = append(lines, indent+"- ["+h.Text+"](#"+h.Slug+")")
	}

	return strings.Join(lines, "\n")
}
