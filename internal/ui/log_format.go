package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lcat/internal/logcat"
)

// Default column widths.
const (
	DefaultTimestampWidth = 12
	DefaultPIDWidth       = 7
	DefaultTagWidth       = 25
	DefaultLevelWidth     = 3
	DefaultWidth          = 80
)

// Layout fixes the terminal width and column widths for a run.
type Layout struct {
	Width          int
	TimestampWidth int
	PIDWidth       int
	TagWidth       int
	LevelWidth     int
}

// DefaultLayout returns the standard columns for a terminal width columns wide.
func DefaultLayout(width int) Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	return Layout{
		Width:          width,
		TimestampWidth: DefaultTimestampWidth,
		PIDWidth:       DefaultPIDWidth,
		TagWidth:       DefaultTagWidth,
		LevelWidth:     DefaultLevelWidth,
	}
}

// HeaderSize is the width of the four fixed columns and their separators.
func (l Layout) HeaderSize() int {
	return l.TimestampWidth + 1 + l.PIDWidth + 1 + l.TagWidth + 1 + l.LevelWidth + 1
}

// MessageIndent is the left indent of wrapped message continuation lines.
func (l Layout) MessageIndent() int {
	return l.HeaderSize() + 1
}

// Renderer turns records into colored, aligned terminal lines.
type Renderer struct {
	layout Layout
	styles Styles
	colors *ColorAllocator
	lg     *lipgloss.Renderer
}

// NewRenderer builds a Renderer. A nil lipgloss renderer uses the default one.
func NewRenderer(layout Layout, theme Theme, colors *ColorAllocator, lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	if colors == nil {
		colors = NewColorAllocator(theme.TagPalette)
	}
	return &Renderer{
		layout: layout,
		styles: theme.Styles(lg),
		colors: colors,
		lg:     lg,
	}
}

// Layout returns the layout the renderer was built with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render formats rec as one line. Long messages wrap onto continuation lines
// indented past the fixed columns.
func (r *Renderer) Render(rec logcat.Record) string {
	tagStyle := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion).Foreground(r.colors.Color(rec.Tag))

	var b strings.Builder
	b.WriteString(Format(rec.Time, r.layout.TimestampWidth, r.styles.Timestamp, AlignCenter))
	b.WriteByte(' ')
	b.WriteString(Format(rec.PID, r.layout.PIDWidth, r.styles.Process, AlignCenter))
	b.WriteByte(' ')
	b.WriteString(Format(lastRunes(rec.Tag, r.layout.TagWidth), r.layout.TagWidth, tagStyle, AlignRight))
	b.WriteByte(' ')
	b.WriteString(Format(rec.Level.String(), r.layout.LevelWidth, r.styles.LevelStyle(rec.Level), AlignCenter))
	b.WriteByte(' ')
	b.WriteString(Wrap(rec.Message, r.layout.MessageIndent(), r.layout.Width))
	return b.String()
}

// RenderRaw returns a line that did not parse as a record, without decoration.
func (r *Renderer) RenderRaw(line string) string {
	return strings.TrimRight(line, "\r\n")
}
