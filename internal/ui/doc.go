// Package ui renders logcat records for a fixed-width terminal.
//
// A rendered line has four fixed columns followed by the message:
//
//	 10:22:01.123    123                       MyTag  D   hello world
//	 └ timestamp ┘ └ pid ┘ └──────── tag ────────┘ └L┘ └ message …
//
// Timestamp, pid and level are centered; the tag is right aligned and keeps
// its last TagWidth characters. Messages longer than the space left on the
// line are cut into fixed-size chunks, each continuation indented to start
// one column past the header (see Wrap).
//
// # Colors
//
// Column colors come from a Theme. Tags get a color from the theme's tag
// palette through a ColorAllocator: first come, first served, wrapping around
// once the palette is used up, stable for the life of the allocator.
//
// Escapes are produced by lipgloss. The lipgloss renderer's color profile
// decides what reaches the terminal; NewLipglossRenderer maps ColorMode onto
// a profile (always → 256 colors, never → plain text, auto → detected).
//
// # Field formatting
//
// Format pads center and right aligned fields to the exact column width,
// measured in terminal cells with escapes excluded. Left alignment does not
// pad. Nothing in the record line uses it, but callers that do get the text
// back as-is.
package ui
