package adb

import "strings"

// Process is one row of `adb shell ps` output.
type Process struct {
	User string
	PID  string
	PPID string
	Name string // last column
	Raw  string // the whole row, trimmed
}

// ParseProcessList parses `ps` output. The header row and rows without a
// numeric PID column are skipped. Both the legacy toolbox layout and the
// toybox layout put USER and PID in the first two columns.
func ParseProcessList(output string) []Process {
	var procs []Process
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) < 2 || !isDigits(fields[1]) {
			continue
		}
		p := Process{
			User: fields[0],
			PID:  fields[1],
			Name: fields[len(fields)-1],
			Raw:  line,
		}
		if len(fields) > 2 && isDigits(fields[2]) {
			p.PPID = fields[2]
		}
		procs = append(procs, p)
	}
	return procs
}

// FindProcess returns the process whose name equals name, or failing that
// the first whose row contains name.
func FindProcess(procs []Process, name string) (Process, bool) {
	for _, p := range procs {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range procs {
		if strings.Contains(p.Raw, name) {
			return p, true
		}
	}
	return Process{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
