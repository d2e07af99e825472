package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Align selects how Format justifies a field.
type Align int

const (
	// AlignLeft leaves the text unpadded. Only center and right alignment
	// fill the field, so left-aligned cells are as wide as their text.
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Painter decorates text with terminal escapes. lipgloss.Style satisfies it.
type Painter interface {
	Render(strs ...string) string
}

// Format justifies text to width visible cells and paints it when p is
// non-nil. Escape sequences added by p do not count toward width. Text wider
// than width is never truncated. Control characters are shown as spaces so
// they cannot change the field's width.
func Format(text string, width int, p Painter, align Align) string {
	text = flatten(text)
	switch align {
	case AlignCenter:
		text = center(text, width)
	case AlignRight:
		text = justifyRight(text, width)
	}
	if p != nil {
		text = p.Render(text)
	}
	return text
}

// center splits odd padding the way Python's str.center does, so columns line
// up with the classic coloredlogcat output.
func center(text string, width int) string {
	pad := width - ansi.StringWidth(text)
	if pad <= 0 {
		return text
	}
	left := pad/2 + (pad & width & 1)
	return spaces(left) + text + spaces(pad-left)
}

func justifyRight(text string, width int) string {
	pad := width - ansi.StringWidth(text)
	if pad <= 0 {
		return text
	}
	return spaces(pad) + text
}

func flatten(text string) string {
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
