package logtail

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.Next()
		if IsEnd(err) {
			return lines
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
}

func TestReader_Lines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "terminated",
			input:    "a\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "final line without terminator",
			input:    "a\nb",
			expected: []string{"a", "b"},
		},
		{
			name:     "crlf",
			input:    "a\r\nb\r\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "blank lines kept",
			input:    "a\n\nb\n",
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(iotest.OneByteReader(strings.NewReader(tt.input)))
			got := readAll(t, r)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
			if r.Lines() != len(tt.expected) {
				t.Errorf("Lines() = %d, want %d", r.Lines(), len(tt.expected))
			}
		})
	}
}

func TestReader_EOFIsSticky(t *testing.T) {
	r := NewReader(strings.NewReader("only\n"))
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("Next() after end = %v, want io.EOF", err)
		}
	}
}

func TestReader_WrapsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom))
	_, err := r.Next()
	if !errors.Is(err, boom) {
		t.Fatalf("Next() error = %v, want wrapped boom", err)
	}
	if IsEnd(err) {
		t.Fatalf("IsEnd(%v) = true, want false", err)
	}
	if !strings.Contains(err.Error(), "read log") {
		t.Fatalf("Next() error = %q, want it to mention read log", err.Error())
	}
}

func TestReader_LineTooLong(t *testing.T) {
	r := NewReader(strings.NewReader(strings.Repeat("x", maxLineLength+1) + "\n"))
	if _, err := r.Next(); !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("Next() error = %v, want bufio.ErrTooLong", err)
	}
}
