package llmscrape

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultCharLimit is the default character budget for sample content.
const DefaultCharLimit = 2000

// TruncationMarker is appended to content cut at the character limit.
const TruncationMarker = "..."

// whitespace matches the characters treated as whitespace when collapsing
// blank lines: ASCII whitespace, vertical tab, the information separators
// and every Unicode separator (e.g. the non-breaking space left by &nbsp;).
const whitespace = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	blankLinesRe = regexp.MustCompile(`\n` + whitespace + `*\n+`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes extracted page text. Runs of blank lines collapse
// into a single newline, runs of spaces and tabs into a single space, and
// every line is trimmed with empty lines dropped.
//
// Blank lines must be collapsed before the text is split, otherwise the
// whitespace between them survives as separate lines. CleanText is
// idempotent.
func CleanText(text string) string {
	text = blankLinesRe.ReplaceAllString(text, "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimFunc(line, isSpace)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Truncate limits text to limit characters, counted as Unicode code points.
// Longer text keeps its first limit characters followed by TruncationMarker,
// so the result is exactly limit+3 characters. The cut is not aligned to
// word boundaries. A negative limit is treated as zero.
func Truncate(text string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i] + TruncationMarker
		}
		n++
	}
	return text
}
