package logcat

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoMatch is returned by Parse for lines that are not logcat records.
// It is an expected outcome (banners, "--------- beginning of main", blank lines).
var ErrNoMatch = errors.New("line is not a logcat record")

// recordPattern matches the `adb logcat -v time` layout:
//
//	MM-DD HH:MM:SS.mmm L/TAG(  PID): MESSAGE
var recordPattern = regexp.MustCompile(`^(\d{2}-\d{2}) (\d{2}:\d{2}:\d{2}\.\d{3}) ([VDIWE])/(.*?)\(\s*(\d+)\):(.*)$`)

// Parse extracts a Record from raw. Trailing line terminators are ignored.
func Parse(raw string) (Record, error) {
	line := strings.TrimRight(raw, "\r\n")
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, ErrNoMatch
	}
	return Record{
		Date:    m[1],
		Time:    m[2],
		Level:   Level(m[3][0]),
		Tag:     m[4],
		PID:     m[5],
		Message: m[6],
	}, nil
}
