package ui

import "strings"

// Wrap splits text into chunks of at most width-indent runes and joins them
// with a newline followed by indent spaces. Chunking ignores word boundaries
// so a wrapped message never overflows the terminal.
//
// When width-indent leaves no room the text is returned as a single chunk.
func Wrap(text string, indent, width int) string {
	if text == "" {
		return ""
	}
	limit := width - indent
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}

	sep := "\n" + spaces(indent)
	var b strings.Builder
	b.Grow(len(text) + (len(runes)/limit)*len(sep))
	for pos := 0; pos < len(runes); pos += limit {
		if pos > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(runes[pos:min(pos+limit, len(runes))]))
	}
	return b.String()
}
