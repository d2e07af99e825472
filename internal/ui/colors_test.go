package ui

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorAllocator_SameTagSameColor(t *testing.T) {
	a := NewColorAllocator(nil)
	first := a.Color("ActivityManager")
	a.Color("dalvikvm")
	if got := a.Color("ActivityManager"); got != first {
		t.Fatalf("Color(ActivityManager) = %q on second call, want %q", got, first)
	}
	if a.Seen() != 2 {
		t.Fatalf("Seen() = %d, want 2", a.Seen())
	}
}

func TestColorAllocator_DistinctUntilPaletteExhausted(t *testing.T) {
	palette := ReferencePalette()
	a := NewColorAllocator(palette)

	seen := make(map[lipgloss.Color]string)
	for i := range palette {
		tag := fmt.Sprintf("tag-%d", i)
		c := a.Color(tag)
		if prev, ok := seen[c]; ok {
			t.Fatalf("Color(%q) = %q, already given to %q", tag, c, prev)
		}
		if c != lipgloss.Color(palette[i]) {
			t.Fatalf("Color(%q) = %q, want palette[%d] = %q", tag, c, i, palette[i])
		}
		seen[c] = tag
	}

	if got := a.Color("one-more"); got != lipgloss.Color(palette[0]) {
		t.Fatalf("Color after wraparound = %q, want %q", got, palette[0])
	}
	if got := a.Color("and-another"); got != lipgloss.Color(palette[1]) {
		t.Fatalf("second color after wraparound = %q, want %q", got, palette[1])
	}
}

func TestColorAllocator_KeysOnExactTag(t *testing.T) {
	a := NewColorAllocator([]string{"1", "2"})
	if a.Color("Tag") == a.Color("Tag  ") {
		t.Fatalf("padded and unpadded tags share a color, want distinct assignments")
	}
}

func TestColorAllocator_EmptyPaletteUsesReference(t *testing.T) {
	a := NewColorAllocator([]string{})
	if got := a.Color("x"); got != lipgloss.Color(ReferencePalette()[0]) {
		t.Fatalf("Color = %q, want %q", got, ReferencePalette()[0])
	}
}
