package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/five82/lcat/internal/adb"
	"github.com/five82/lcat/internal/config"
	"github.com/five82/lcat/internal/logging"
	"github.com/five82/lcat/internal/pipeline"
	"github.com/five82/lcat/internal/ui"
)

// Terminal reports the size of the output terminal.
type Terminal interface {
	Size() (width, height int, err error)
}

// LogSource starts the live log producer used when nothing is piped in.
type LogSource interface {
	Logcat(ctx context.Context, args ...string) (io.ReadCloser, error)
}

// Options configure an lcat run. Zero values use the process's real
// stdin/stdout/stderr, terminal and adb binary.
type Options struct {
	ConfigPath string
	Package    string // optional; resolved to a pid filter

	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer

	// Interactive reports whether stdin is a terminal, i.e. nothing is piped in.
	Interactive func() bool
	Terminal    Terminal
	Resolver    adb.PIDResolver
	Source      LogSource
}

// Run renders log records until the input ends or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts = opts.withDefaults(cfg)

	logger, err := logging.New(cfg.LogLevel, opts.Stderr, cfg.Color != ui.ColorNever && isTerminal(opts.Stderr))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if !slices.Contains(ui.ThemeNames(), cfg.Theme) {
		logger.Warn("unknown theme, using Classic", zap.String("theme", cfg.Theme), zap.Strings("available", ui.ThemeNames()))
	}

	width := terminalWidth(opts.Terminal, cfg.FallbackWidth, logger)
	pid := resolvePID(ctx, opts.Resolver, opts.Package, logger)

	input, err := openInput(ctx, opts, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := input.Close(); err != nil {
			logger.Debug("close input", zap.Error(err))
		}
	}()
	// Unblock a pending read when interrupted.
	stop := context.AfterFunc(ctx, func() { _ = input.Close() })
	defer stop()

	theme := ui.GetTheme(cfg.Theme)
	palette := theme.TagPalette
	if len(cfg.TagPalette) > 0 {
		palette = cfg.TagPalette
	}
	renderer := ui.NewRenderer(
		cfg.Layout(width),
		theme,
		ui.NewColorAllocator(palette),
		ui.NewLipglossRenderer(opts.Stdout, cfg.Color),
	)

	p := pipeline.New(input, opts.Stdout, renderer, pipeline.Options{
		PID:           pid,
		MinLevel:      cfg.MinLevel,
		PassUnmatched: cfg.PassUnmatched(),
		Logger:        logger,
	})
	res, err := p.Run(ctx)
	if err != nil {
		return err
	}
	if res.Reason == pipeline.ReasonInputClosed {
		// A log producer that quit on its own (no device, adb error) reports it here.
		if err := input.Close(); err != nil {
			return fmt.Errorf("log source: %w", err)
		}
	}
	logger.Debug("finished", zap.Stringer("reason", res.Reason), zap.Int("dropped", res.Stats.Dropped()))
	return nil
}

func (o Options) withDefaults(cfg config.Config) Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Interactive == nil {
		o.Interactive = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if o.Terminal == nil {
		o.Terminal = fdTerminal{fd: int(os.Stdout.Fd())}
	}
	if o.Resolver == nil || o.Source == nil {
		client := adb.NewClient(cfg.ADBPath)
		if o.Resolver == nil {
			o.Resolver = client
		}
		if o.Source == nil {
			o.Source = adbSource{client: client}
		}
	}
	return o
}

// terminalWidth falls back to the configured width when the query fails,
// typically because stdout is a pipe or file.
func terminalWidth(t Terminal, fallback int, logger *zap.Logger) int {
	width, _, err := t.Size()
	if err != nil || width <= 0 {
		logger.Debug("terminal size unavailable, using fallback width", zap.Int("width", fallback), zap.Error(err))
		return fallback
	}
	return width
}

// resolvePID returns "" (no filter) when pkg is empty or cannot be resolved.
func resolvePID(ctx context.Context, r adb.PIDResolver, pkg string, logger *zap.Logger) string {
	if pkg == "" {
		return ""
	}
	pid, err := r.ResolvePID(ctx, pkg)
	if err != nil {
		logger.Warn("package not running, showing all processes", zap.String("package", pkg), zap.Error(err))
		return ""
	}
	logger.Info("filtering by pid", zap.String("package", pkg), zap.String("pid", pid))
	return pid
}

func openInput(ctx context.Context, opts Options, cfg config.Config, logger *zap.Logger) (io.ReadCloser, error) {
	if !opts.Interactive() {
		return &onceCloser{ReadCloser: opts.Stdin}, nil
	}
	logger.Debug("stdin is a terminal, starting logcat", zap.Strings("args", cfg.LogcatArgs))
	src, err := opts.Source.Logcat(ctx, cfg.LogcatArgs...)
	if err != nil {
		return nil, fmt.Errorf("start logcat: %w", err)
	}
	return &onceCloser{ReadCloser: src}, nil
}

// isTerminal reports whether w is a terminal. Diagnostics are only colored
// there; the color setting applies to rendered records.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

type fdTerminal struct {
	fd int
}

func (t fdTerminal) Size() (int, int, error) {
	return term.GetSize(t.fd)
}

type adbSource struct {
	client *adb.Client
}

func (s adbSource) Logcat(ctx context.Context, args ...string) (io.ReadCloser, error) {
	stream, err := s.client.Logcat(ctx, args...)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// onceCloser lets the interrupt hook and the deferred cleanup both close
// the input.
type onceCloser struct {
	io.ReadCloser
	once sync.Once
	err  error
}

func (c *onceCloser) Close() error {
	c.once.Do(func() { c.err = c.ReadCloser.Close() })
	return c.err
}

// WriteConfig saves the effective configuration at path (or the default
// location) so it can be edited, returning where it was written.
func WriteConfig(path string) (string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	written, err := config.Save(path, cfg)
	if err != nil {
		return "", fmt.Errorf("save config: %w", err)
	}
	return written, nil
}
