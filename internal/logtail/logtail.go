package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	initialBuffer = 64 * 1024
	maxLineLength = 1024 * 1024
)

// Reader yields lines from a log stream one at a time.
type Reader struct {
	scanner *bufio.Scanner
	lines   int
}

// NewReader wraps r. Lines may be terminated by "\n" or "\r\n"; the final
// line does not need a terminator.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBuffer), maxLineLength)
	return &Reader{scanner: scanner}
}

// Next blocks until a full line is available and returns it without its
// terminator. It returns io.EOF once the stream is exhausted. Any other
// error is wrapped; errors.Is(err, bufio.ErrTooLong) reports a line over
// the 1 MiB limit.
func (r *Reader) Next() (string, error) {
	if r.scanner.Scan() {
		r.lines++
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	return "", io.EOF
}

// Lines returns how many lines Next has returned.
func (r *Reader) Lines() int {
	return r.lines
}

// IsEnd reports whether err marks the normal end of a stream.
func IsEnd(err error) bool {
	return errors.Is(err, io.EOF)
}
