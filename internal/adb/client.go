package adb

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrProcessNotFound is returned by ResolvePID when no device process matches.
	ErrProcessNotFound = errors.New("process not found")
	// ErrSpawnFailed is returned by Logcat when adb cannot be started.
	ErrSpawnFailed = errors.New("spawn log source")
)

// PIDResolver looks up the device PID of a process by package name.
// This interface is implemented by *Client and can be used for testing.
type PIDResolver interface {
	ResolvePID(ctx context.Context, name string) (string, error)
}

// Ensure Client implements PIDResolver at compile time.
var _ PIDResolver = (*Client)(nil)

const (
	defaultPath   = "adb"
	lookupTimeout = 10 * time.Second
)

// DefaultLogcatArgs produces the `-v time` layout the record parser expects.
func DefaultLogcatArgs() []string {
	return []string{"logcat", "-v", "time"}
}

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client runs adb commands.
type Client struct {
	path string
	run  runFunc
}

// NewClient builds a Client for the adb binary at path ("adb" when empty).
func NewClient(path string) *Client {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPath
	}
	return &Client{path: path, run: runOutput}
}

// Path returns the adb binary the client invokes.
func (c *Client) Path() string {
	return c.path
}

// ResolvePID lists device processes with `adb shell ps` and returns the PID
// of the process named name. An exact name match wins; otherwise the first
// row containing name is used.
func (c *Client) ResolvePID(ctx context.Context, name string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("process name required")
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	out, err := c.run(ctx, c.path, "shell", "ps")
	if err != nil {
		return "", fmt.Errorf("list processes: %w", err)
	}
	if p, ok := FindProcess(ParseProcessList(string(out)), name); ok {
		return p.PID, nil
	}
	return "", fmt.Errorf("%w: %s", ErrProcessNotFound, name)
}

func runOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
