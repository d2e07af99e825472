package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lcat/internal/logcat"
)

// ColorPair is a foreground/background combination. Empty fields leave the
// terminal default in place.
type ColorPair struct {
	Fg string
	Bg string
}

// Theme defines the colors used for each rendered column.
type Theme struct {
	Name string

	Timestamp ColorPair
	Process   ColorPair
	Levels    map[logcat.Level]ColorPair

	// TagPalette is cycled as new tags are seen.
	TagPalette []string
}

// Styles holds lipgloss styles built from a Theme for one renderer.
type Styles struct {
	Timestamp lipgloss.Style
	Process   lipgloss.Style
	Levels    map[logcat.Level]lipgloss.Style
	Level     lipgloss.Style // unknown levels
}

// Styles builds the lipgloss styles for t bound to r.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := Styles{
		Timestamp: pairStyle(r, t.Timestamp),
		Process:   pairStyle(r, t.Process),
		Levels:    make(map[logcat.Level]lipgloss.Style, len(t.Levels)),
		Level:     r.NewStyle().TabWidth(lipgloss.NoTabConversion).Reverse(true),
	}
	for level, pair := range t.Levels {
		s.Levels[level] = pairStyle(r, pair)
	}
	return s
}

// LevelStyle returns the style for level, falling back to reverse video.
func (s Styles) LevelStyle(level logcat.Level) lipgloss.Style {
	if st, ok := s.Levels[level]; ok {
		return st
	}
	return s.Level
}

func pairStyle(r *lipgloss.Renderer, p ColorPair) lipgloss.Style {
	st := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if p.Fg != "" {
		st = st.Foreground(lipgloss.Color(p.Fg))
	}
	if p.Bg != "" {
		st = st.Background(lipgloss.Color(p.Bg))
	}
	return st
}

// Theme definitions

var themes = map[string]Theme{
	"Classic": classicTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Classic", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return classicTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// ReferencePalette is the xterm-256 tag palette of the Classic theme.
func ReferencePalette() []string {
	return []string{"226", "220", "213", "203", "199", "195", "190", "160", "105", "87", "75", "39", "13", "11", "10"}
}

func classicTheme() Theme {
	// xterm-256 codes, tuned for dark terminals.
	return Theme{
		Name: "Classic",

		Timestamp: ColorPair{Fg: "235"},
		Process:   ColorPair{Fg: "244", Bg: "236"},
		Levels: map[logcat.Level]ColorPair{
			logcat.LevelVerbose: {Fg: "225", Bg: "8"},
			logcat.LevelDebug:   {Fg: "0", Bg: "45"},
			logcat.LevelInfo:    {Fg: "0", Bg: "119"},
			logcat.LevelWarn:    {Fg: "0", Bg: "229"},
			logcat.LevelError:   {Fg: "225", Bg: "196"},
		},

		TagPalette: ReferencePalette(),
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Timestamp: ColorPair{Fg: "#64748b"},                // slate-500
		Process:   ColorPair{Fg: "#94a3b8", Bg: "#1e293b"}, // slate-400 on slate-800
		Levels: map[logcat.Level]ColorPair{
			logcat.LevelVerbose: {Fg: "#f1f5f9", Bg: "#334155"}, // slate-100 on slate-700
			logcat.LevelDebug:   {Fg: "#020617", Bg: "#38bdf8"}, // sky-400
			logcat.LevelInfo:    {Fg: "#020617", Bg: "#22c55e"}, // green-500
			logcat.LevelWarn:    {Fg: "#020617", Bg: "#f59e0b"}, // amber-500
			logcat.LevelError:   {Fg: "#f8fafc", Bg: "#dc2626"}, // red-600
		},

		TagPalette: []string{
			"#facc15", // yellow-400
			"#fbbf24", // amber-400
			"#e879f9", // fuchsia-400
			"#f87171", // red-400
			"#f472b6", // pink-400
			"#a5f3fc", // cyan-200
			"#a3e635", // lime-400
			"#dc2626", // red-600
			"#818cf8", // indigo-400
			"#22d3ee", // cyan-400
			"#60a5fa", // blue-400
			"#0ea5e9", // sky-500
			"#c084fc", // purple-400
			"#fde047", // yellow-300
			"#4ade80", // green-400
		},
	}
}
