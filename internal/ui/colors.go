package ui

import "github.com/charmbracelet/lipgloss"

// ColorAllocator hands out a stable palette color per tag. Tags get colors in
// the order they are first seen; once the palette is exhausted colors repeat
// in palette order. Assignments live as long as the allocator.
//
// A ColorAllocator is not safe for concurrent use.
type ColorAllocator struct {
	palette []lipgloss.Color
	cache   map[string]lipgloss.Color
	next    int
}

// NewColorAllocator builds an allocator over palette. An empty palette falls
// back to ReferencePalette.
func NewColorAllocator(palette []string) *ColorAllocator {
	if len(palette) == 0 {
		palette = ReferencePalette()
	}
	colors := make([]lipgloss.Color, 0, len(palette))
	for _, c := range palette {
		colors = append(colors, lipgloss.Color(c))
	}
	return &ColorAllocator{
		palette: colors,
		cache:   make(map[string]lipgloss.Color),
	}
}

// Color returns the color assigned to tag, assigning the next palette entry
// the first time tag is seen.
func (a *ColorAllocator) Color(tag string) lipgloss.Color {
	if c, ok := a.cache[tag]; ok {
		return c
	}
	c := a.palette[a.next]
	a.next = (a.next + 1) % len(a.palette)
	a.cache[tag] = c
	return c
}

// Seen returns the number of distinct tags assigned so far.
func (a *ColorAllocator) Seen() int {
	return len(a.cache)
}
