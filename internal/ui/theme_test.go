package ui

import (
	"io"
	"testing"

	"github.com/five82/lcat/internal/logcat"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Classic" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Classic Slate]", names)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Classic" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Classic (fallback)", got)
	}
}

func TestThemes_CoverEveryLevel(t *testing.T) {
	levels := []logcat.Level{logcat.LevelVerbose, logcat.LevelDebug, logcat.LevelInfo, logcat.LevelWarn, logcat.LevelError}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, level := range levels {
			if _, ok := th.Levels[level]; !ok {
				t.Fatalf("theme %s has no colors for level %s", name, level)
			}
		}
		if len(th.TagPalette) != 15 {
			t.Fatalf("theme %s palette has %d colors, want 15", name, len(th.TagPalette))
		}
	}
}

func TestStyles_LevelStyleFallback(t *testing.T) {
	s := GetTheme("Classic").Styles(NewLipglossRenderer(io.Discard, ColorNever))
	if got := s.LevelStyle(logcat.Level('?')).Render("?"); got != "?" {
		t.Fatalf("LevelStyle(?) rendered %q, want plain text under ascii profile", got)
	}
}
