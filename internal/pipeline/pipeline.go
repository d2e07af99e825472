package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/five82/lcat/internal/logcat"
	"github.com/five82/lcat/internal/logtail"
	"github.com/five82/lcat/internal/state"
	"github.com/five82/lcat/internal/ui"
)

// State is the lifecycle state of a Pipeline.
type State int

const (
	StateActive State = iota
	StateTerminated
)

// Reason says why Run returned.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonInputClosed: the source reached end of stream.
	ReasonInputClosed
	// ReasonInterrupted: the context was cancelled.
	ReasonInterrupted
	// ReasonFailed: a read or write error ended the loop.
	ReasonFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonInputClosed:
		return "input closed"
	case ReasonInterrupted:
		return "interrupted"
	case ReasonFailed:
		return "failed"
	default:
		return "none"
	}
}

// Result summarises a finished Run.
type Result struct {
	Reason Reason
	Stats  state.Snapshot
}

// Options configure filtering and bookkeeping.
type Options struct {
	// PID keeps only records from this process. Empty disables the filter.
	PID string
	// MinLevel hides records below this priority. Zero shows everything.
	MinLevel logcat.Level
	// PassUnmatched writes non-record lines through instead of dropping them.
	PassUnmatched bool

	Logger *zap.Logger
	Stats  *state.Store
	Now    func() time.Time
}

// Pipeline reads lines, renders the records among them and writes one
// output line per rendered record.
type Pipeline struct {
	in       *logtail.Reader
	out      io.Writer
	renderer *ui.Renderer
	opts     Options
	state    State
}

// New builds a Pipeline reading from in and writing to out.
func New(in io.Reader, out io.Writer, renderer *ui.Renderer, opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Stats == nil {
		opts.Stats = &state.Store{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Pipeline{
		in:       logtail.NewReader(in),
		out:      out,
		renderer: renderer,
		opts:     opts,
		state:    StateActive,
	}
}

// State returns the pipeline's lifecycle state.
func (p *Pipeline) State() State {
	return p.state
}

// Run processes lines until the input ends, ctx is cancelled or an I/O error
// occurs. Cancellation is checked between lines: a line is either written in
// full or not at all. End of input and cancellation return a nil error.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if p.state == StateTerminated {
		return Result{}, errors.New("pipeline already terminated")
	}
	p.opts.Stats.Start(p.opts.Now())
	p.opts.Logger.Debug("pipeline started",
		zap.String("pid_filter", p.opts.PID),
		zap.Stringer("min_level", p.opts.MinLevel),
		zap.Bool("pass_unmatched", p.opts.PassUnmatched),
	)

	for {
		if ctx.Err() != nil {
			return p.terminate(ReasonInterrupted), nil
		}

		line, err := p.in.Next()
		switch {
		case err != nil && ctx.Err() != nil:
			return p.terminate(ReasonInterrupted), nil
		case logtail.IsEnd(err):
			return p.terminate(ReasonInputClosed), nil
		case err != nil:
			return p.terminate(ReasonFailed), err
		}

		// The read may have unblocked because of an interrupt; drop the line.
		if ctx.Err() != nil {
			return p.terminate(ReasonInterrupted), nil
		}

		if err := p.process(line); err != nil {
			return p.terminate(ReasonFailed), fmt.Errorf("write output: %w", err)
		}
	}
}

func (p *Pipeline) process(line string) error {
	now := p.opts.Now()

	rec, err := logcat.Parse(line)
	if err != nil {
		if !p.opts.PassUnmatched {
			p.opts.Stats.Record(state.OutcomeUnmatched, now)
			return nil
		}
		if err := p.write(p.renderer.RenderRaw(line)); err != nil {
			return err
		}
		p.opts.Stats.Record(state.OutcomePassed, now)
		return nil
	}

	if !p.accept(rec) {
		p.opts.Stats.Record(state.OutcomeFiltered, now)
		return nil
	}
	if err := p.write(p.renderer.Render(rec)); err != nil {
		return err
	}
	p.opts.Stats.Record(state.OutcomeRendered, now)
	return nil
}

func (p *Pipeline) accept(rec logcat.Record) bool {
	if p.opts.PID != "" && rec.PID != p.opts.PID {
		return false
	}
	if p.opts.MinLevel != 0 && !rec.Level.AtLeast(p.opts.MinLevel) {
		return false
	}
	return true
}

// write emits s and its newline with a single Write call.
func (p *Pipeline) write(s string) error {
	_, err := io.WriteString(p.out, s+"\n")
	return err
}

func (p *Pipeline) terminate(reason Reason) Result {
	p.state = StateTerminated
	res := Result{Reason: reason, Stats: p.opts.Stats.Snapshot()}
	p.opts.Logger.Debug("pipeline stopped",
		zap.Stringer("reason", reason),
		zap.Int("read", res.Stats.Read),
		zap.Int("rendered", res.Stats.Rendered),
		zap.Int("filtered", res.Stats.Filtered),
		zap.Int("unmatched", res.Stats.Unmatched),
	)
	return res
}
