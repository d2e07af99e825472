package adb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"
)

// killDelay is how long a log process gets to exit after an interrupt.
const killDelay = 2 * time.Second

// Stream is the stdout of a running log process.
type Stream struct {
	ctx    context.Context
	cmd    *exec.Cmd
	stdout io.ReadCloser
	eof    atomic.Bool

	once sync.Once
	err  error
}

// Logcat starts `adb <args>` (DefaultLogcatArgs when args is empty) and
// returns its stdout. Cancelling ctx interrupts the process, which ends the
// stream. Errors starting the process wrap ErrSpawnFailed.
func (c *Client) Logcat(ctx context.Context, args ...string) (*Stream, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(args) == 0 {
		args = DefaultLogcatArgs()
	}

	cmd := exec.CommandContext(ctx, c.path, args...)
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = killDelay
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, c.path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, c.path, err)
	}
	return &Stream{ctx: ctx, cmd: cmd, stdout: stdout}, nil
}

// Read reads from the process's stdout.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.stdout.Read(p)
	if errors.Is(err, io.EOF) {
		s.eof.Store(true)
	}
	return n, err
}

// Close asks the process to terminate, killing it if it has not exited
// within killDelay, and waits for it. Exit caused by that request or by
// context cancellation is not an error. Once the stream has reached EOF the
// process is not signalled, so a failing exit status is reported. Close is
// safe to call more than once.
func (s *Stream) Close() error {
	s.once.Do(func() {
		requested := !s.eof.Load() && s.cmd.Process.Signal(os.Interrupt) == nil
		timer := time.AfterFunc(killDelay, func() { _ = s.cmd.Process.Kill() })
		defer timer.Stop()
		_ = s.stdout.Close()

		err := s.cmd.Wait()
		var exitErr *exec.ExitError
		if err != nil && !(requested && errors.As(err, &exitErr)) && s.ctx.Err() == nil {
			s.err = fmt.Errorf("wait for %s: %w", s.cmd.Path, err)
		}
	})
	return s.err
}
