package blogmeta

import (
	"regexp"
	"strconv"
	"strings"
)

// ReviewItem is a rating recovered from a comparison table.
type ReviewItem struct {
	ItemName    string  `json:"itemName"`
	RatingValue float64 `json:"ratingValue"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
	ReviewBody  string  `json:"reviewBody,omitempty"`
}

// WorstRating is the lower bound of every recovered rating. Tables only
// state the upper bound.
const WorstRating = 1

// scoreRowLabel labels the table row holding the overall ratings.
const scoreRowLabel = "Overall Quality Score"

// headerLookback bounds how many lines above the score row are searched for
// the table header.
const headerLookback = 10

// rowPrefix matches what may precede a table row: indentation, blockquote
// markers and a single list bullet.
const rowPrefix = `[ \t]*(?:>[ \t]*)*(?:[-*+][ \t]+)?`

var (
	scoreRowRe  = regexp.MustCompile(`(?im)^` + rowPrefix + `\|[ \t]*` + scoreRowLabel + `[ \t]*\|([^\n]*)$`)
	rowPrefixRe = regexp.MustCompile(`^` + rowPrefix)
	ratingRe    = regexp.MustCompile(`([\d.]+)/(\d+)`)
)

// ExtractReviews returns per-item ratings from the first comparison table
// in markdown whose row is labeled "Overall Quality Score". Item names come
// from the nearest table header row above it. Columns without an "X/Y"
// rating are skipped. Tables may be quoted or nested in a list item.
// Returns an empty slice when no such table exists.
func ExtractReviews(markdown string) []ReviewItem {
	loc := scoreRowRe.FindStringSubmatchIndex(markdown)
	if loc == nil {
		return nil
	}

	header, ok := findHeaderRow(markdown[:loc[0]])
	if !ok {
		return nil
	}

	names := splitRow(rowPrefixRe.ReplaceAllString(header, ""))
	if len(names) > 0 {
		names = names[1:]
	}
	scores := splitRow(markdown[loc[2]:loc[3]])

	var items []ReviewItem
	for i := 0; i < min(len(names), len(scores)); i++ {
		value, best, ok := parseRating(scores[i])
		if !ok {
			continue
		}

		items = append(items, ReviewItem{
			ItemName:    names[i],
			RatingValue: value,
			BestRating:  best,
			WorstRating: WorstRating,
			ReviewBody:  findReviewBody(markdown, names[i]),
		})
	}

	return items
}

// findHeaderRow returns the nearest table row in the last headerLookback
// lines of before that is neither a rule line nor a score row.
func findHeaderRow(before string) (string, bool) {
	lines := strings.Split(strings.TrimSuffix(before, "\n"), "\n")

	for i := len(lines) - 1; i >= max(0, len(lines)-headerLookback); i-- {
		line := lines[i]
		if !strings.Contains(line, "|") || isRuleLine(line) {
			continue
		}
		if strings.Contains(strings.ToLower(line), strings.ToLower(scoreRowLabel)) {
			continue
		}
		return line, true
	}

	return "", false
}

// isRuleLine reports whether line separates a table header from its body,
// such as "|---|:---:|" or "| :-: | -- |".
func isRuleLine(line string) bool {
	if strings.Contains(line, "---") {
		return true
	}
	return strings.Trim(line, "|-: \t\r") == "" && strings.Contains(line, "-")
}

// splitRow splits a table row into trimmed, non-empty cells.
func splitRow(row string) []string {
	var cells []string
	for _, cell := range strings.Split(row, "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// parseRating parses the first "X/Y" or "X.X/Y" token in cell.
func parseRating(cell string) (float64, int, bool) {
	match := ratingRe.FindStringSubmatch(cell)
	if match == nil {
		return 0, 0, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, 0, false
	}
	best, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}

	return value, best, true
}

// findReviewBody returns the first bold run starting with name together with
// the rest of its sentence, with emphasis markers removed. Returns an empty
// string when name is never emphasized.
func findReviewBody(markdown, name string) string {
	re, err := regexp.Compile(`(?i)\*\*` + regexp.QuoteMeta(name) + `[^*]*\*\*[^.]*\.`)
	if err != nil {
		return ""
	}

	match := re.FindString(markdown)
	if match == "" {
		return ""
	}

	return strings.TrimSpace(strings.ReplaceAll(match, "**", ""))
}
