package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/lcat/internal/logcat"
	"github.com/five82/lcat/internal/ui"
)

const sampleLine = "03-14 10:22:01.123 D/MyTag(  123): hello world"

func plainRenderer() *ui.Renderer {
	return ui.NewRenderer(ui.DefaultLayout(80), ui.GetTheme("Classic"), nil, ui.NewLipglossRenderer(io.Discard, ui.ColorNever))
}

func runPipeline(t *testing.T, input string, opts Options) (string, Result, error) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = zaptest.NewLogger(t)
	}
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out, plainRenderer(), opts)
	res, err := p.Run(context.Background())
	if p.State() != StateTerminated {
		t.Fatalf("State() = %v after Run, want StateTerminated", p.State())
	}
	return out.String(), res, err
}

func TestRun_RendersMatchingRecord(t *testing.T) {
	out, res, err := runPipeline(t, sampleLine+"\n", Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Reason != ReasonInputClosed {
		t.Fatalf("Reason = %v, want %v", res.Reason, ReasonInputClosed)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("output = %q, want exactly one line", out)
	}
	for _, sub := range []string{"10:22:01.123", "  123  ", "MyTag", " D ", "hello world"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("output = %q, want it to contain %q", out, sub)
		}
	}
	if res.Stats.Read != 1 || res.Stats.Rendered != 1 {
		t.Fatalf("Stats = %+v, want 1 read, 1 rendered", res.Stats)
	}
}

func TestRun_PIDFilter(t *testing.T) {
	out, res, err := runPipeline(t, sampleLine+"\n", Options{PID: "999"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "" {
		t.Fatalf("output = %q, want nothing for a non-matching pid", out)
	}
	if res.Stats.Filtered != 1 {
		t.Fatalf("Filtered = %d, want 1", res.Stats.Filtered)
	}

	out, _, err = runPipeline(t, sampleLine+"\n", Options{PID: "123"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out, "hello world") {
		t.Fatalf("output = %q, want the record for pid 123", out)
	}
}

func TestRun_DropsUnmatchedLines(t *testing.T) {
	input := "--------- beginning of main\n" + sampleLine + "\nnot a record\n"
	out, res, err := runPipeline(t, input, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out, "beginning of main") || strings.Contains(out, "not a record") {
		t.Fatalf("output = %q, want unmatched lines dropped", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("output = %q, want one rendered line", out)
	}
	if res.Stats.Unmatched != 2 || res.Stats.Dropped() != 2 {
		t.Fatalf("Stats = %+v, want 2 unmatched dropped", res.Stats)
	}
}

func TestRun_PassesUnmatchedLinesWhenConfigured(t *testing.T) {
	input := "--------- beginning of main\r\n" + sampleLine + "\n"
	out, res, err := runPipeline(t, input, Options{PassUnmatched: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(out, "--------- beginning of main\n") {
		t.Fatalf("output = %q, want the banner passed through first", out)
	}
	if res.Stats.Passed != 1 || res.Stats.Rendered != 1 {
		t.Fatalf("Stats = %+v, want 1 passed, 1 rendered", res.Stats)
	}
}

func TestRun_MinLevel(t *testing.T) {
	input := sampleLine + "\n" + "03-14 10:22:02.000 E/MyTag(  123): boom\n"
	out, res, err := runPipeline(t, input, Options{MinLevel: logcat.LevelWarn})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out, "hello world") || !strings.Contains(out, "boom") {
		t.Fatalf("output = %q, want only the error record", out)
	}
	if res.Stats.Filtered != 1 {
		t.Fatalf("Filtered = %d, want 1", res.Stats.Filtered)
	}
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	out, _, err := runPipeline(t, sampleLine, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasSuffix(out, "hello world\n") {
		t.Fatalf("output = %q, want the unterminated record rendered", out)
	}
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	boom := errors.New("device disconnected")
	var out bytes.Buffer
	p := New(iotest.ErrReader(boom), &out, plainRenderer(), Options{Logger: zaptest.NewLogger(t)})

	res, err := p.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want wrapped %v", err, boom)
	}
	if res.Reason != ReasonFailed {
		t.Fatalf("Reason = %v, want %v", res.Reason, ReasonFailed)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRun_WriteErrorIsFatal(t *testing.T) {
	broken := errors.New("broken pipe")
	p := New(strings.NewReader(sampleLine+"\n"), failingWriter{broken}, plainRenderer(), Options{})

	res, err := p.Run(context.Background())
	if !errors.Is(err, broken) {
		t.Fatalf("Run error = %v, want wrapped %v", err, broken)
	}
	if !strings.Contains(err.Error(), "write output") {
		t.Fatalf("Run error = %q, want it to mention write output", err.Error())
	}
	if res.Reason != ReasonFailed {
		t.Fatalf("Reason = %v, want %v", res.Reason, ReasonFailed)
	}
}

// chunkReader serves one chunk per Read and calls onRead before serving
// chunk i when one is registered.
type chunkReader struct {
	chunks []string
	onRead map[int]func()
	i      int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.i >= len(r.chunks) {
		return 0, io.EOF
	}
	if fn := r.onRead[r.i]; fn != nil {
		fn()
	}
	n := copy(p, r.chunks[r.i])
	r.i++
	return n, nil
}

func TestRun_InterruptStopsAtLineBoundary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	second := "03-14 10:22:02.000 I/MyTag(  123): second\n"
	third := "03-14 10:22:03.000 I/MyTag(  123): third\n"
	in := &chunkReader{
		chunks: []string{sampleLine + "\n", second, third},
		onRead: map[int]func(){1: cancel},
	}

	var out bytes.Buffer
	p := New(in, &out, plainRenderer(), Options{Logger: zaptest.NewLogger(t)})
	res, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Reason != ReasonInterrupted {
		t.Fatalf("Reason = %v, want %v", res.Reason, ReasonInterrupted)
	}
	if got := out.String(); strings.Count(got, "\n") != 1 || !strings.Contains(got, "hello world") {
		t.Fatalf("output = %q, want only the first complete line", got)
	}
	if strings.Contains(out.String(), "second") || strings.Contains(out.String(), "third") {
		t.Fatalf("output = %q, want nothing after the interrupt", out.String())
	}
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := New(strings.NewReader(sampleLine+"\n"), &out, plainRenderer(), Options{})
	res, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Reason != ReasonInterrupted || out.Len() != 0 {
		t.Fatalf("Reason = %v, output = %q, want interrupted with no output", res.Reason, out.String())
	}
}

func TestRun_ReadErrorAfterCancelIsInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	closed := errors.New("file already closed")
	in := io.MultiReader(&chunkReader{chunks: []string{sampleLine + "\n"}}, readerFunc(func([]byte) (int, error) {
		cancel()
		return 0, closed
	}))

	var out bytes.Buffer
	p := New(in, &out, plainRenderer(), Options{})
	res, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Reason != ReasonInterrupted {
		t.Fatalf("Reason = %v, want %v", res.Reason, ReasonInterrupted)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Fatalf("output = %q, want the line read before the interrupt", out.String())
	}
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestRun_RunTwiceFails(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard, plainRenderer(), Options{})
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatalf("second Run returned nil error, want error")
	}
}

func TestRun_LogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, _, err := runPipeline(t, sampleLine+"\njunk\n", Options{Logger: zap.New(core)})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	stopped := logs.FilterMessage("pipeline stopped").All()
	if len(stopped) != 1 {
		t.Fatalf("got %d 'pipeline stopped' entries, want 1", len(stopped))
	}
	fields := stopped[0].ContextMap()
	if fields["reason"] != "input closed" {
		t.Fatalf("reason = %v, want input closed", fields["reason"])
	}
	if fields["read"] != int64(2) || fields["rendered"] != int64(1) {
		t.Fatalf("read/rendered = %v/%v, want 2/1", fields["read"], fields["rendered"])
	}
}
