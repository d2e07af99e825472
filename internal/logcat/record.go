package logcat

import (
	"fmt"
	"strings"
)

// Level is the single-letter priority logcat prints before the tag.
type Level byte

const (
	LevelVerbose Level = 'V'
	LevelDebug   Level = 'D'
	LevelInfo    Level = 'I'
	LevelWarn    Level = 'W'
	LevelError   Level = 'E'
)

var levelRank = map[Level]int{
	LevelVerbose: 0,
	LevelDebug:   1,
	LevelInfo:    2,
	LevelWarn:    3,
	LevelError:   4,
}

// String returns the letter form of the level.
func (l Level) String() string {
	return string(rune(l))
}

// Rank orders levels from verbose (0) to error (4). Unknown levels rank below verbose.
func (l Level) Rank() int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether l is as severe as min.
func (l Level) AtLeast(min Level) bool {
	return l.Rank() >= min.Rank()
}

// ParseLevel accepts a level letter or its long name ("warn", "error", ...).
// Fatal and assert priorities fold into error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "V", "VERBOSE":
		return LevelVerbose, nil
	case "D", "DEBUG":
		return LevelDebug, nil
	case "I", "INFO":
		return LevelInfo, nil
	case "W", "WARN", "WARNING":
		return LevelWarn, nil
	case "E", "ERROR", "F", "FATAL", "A", "ASSERT":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// Record is one parsed `logcat -v time` line.
type Record struct {
	Date    string // MM-DD
	Time    string // HH:MM:SS.mmm
	Level   Level
	Tag     string // as captured, may carry padding
	PID     string // digits only
	Message string // everything after "):", leading space included
}
