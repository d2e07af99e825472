package ui

import "strings"

// lastRunes trims value and keeps at most its final limit runes. Tags are
// cut from the left because the distinguishing part of a long tag is usually
// its end.
func lastRunes(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[len(runes)-limit:])
}
