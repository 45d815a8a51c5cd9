package blogmeta

import (
	"strings"
	"unicode"
)

// Slugify creates a URL-safe identifier from free text.
// Converts to lowercase, drops everything except letters, digits,
// underscores, whitespace and hyphens, then joins the remaining words with
// single hyphens. Leading and trailing hyphens are trimmed.
func Slugify(text string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
