// Package console is a terminal ConsoleSink: it renders style tags such as
// <error>...</error> to ANSI colors (or strips them) and writes one line per
// entry to stdout or stderr, honouring the host's verbosity.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Output writes styled lines to a pair of streams.
type Output struct {
	// immutable after construction
	out, err    io.Writer
	decorateOut bool
	decorateErr bool
	formatter   *Formatter
	onError     ErrorHandler
	initBufCap  int

	// write path
	mu        *sync.Mutex
	verbosity atomic.Uint32

	st stats
}

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "console error: %v\n", err) }

// New creates an Output from opts. Nil writers default to the process
// stdout/stderr; files are wrapped by go-colorable so ANSI works on Windows consoles.
func New(opts Options) *Output {
	if opts.Verbosity == 0 {
		opts.Verbosity = Normal
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}

	o := &Output{
		formatter:  NewFormatter(opts.Styles),
		onError:    opts.ErrorHandler,
		initBufCap: opts.BufferSize,
		mu:         &sync.Mutex{},
	}
	o.out, o.decorateOut = resolveWriter(opts.Stdout, os.Stdout, opts.Color)
	o.err, o.decorateErr = resolveWriter(opts.Stderr, os.Stderr, opts.Color)
	o.verbosity.Store(uint32(opts.Verbosity))
	return o
}

func resolveWriter(w io.Writer, std *os.File, mode ColorMode) (io.Writer, bool) {
	if w == nil {
		w = std
	}
	decorated := decorate(w, mode)
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f), decorated
	}
	return w, decorated
}

func decorate(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Write emits lines on stdout.
func (o *Output) Write(lines ...string) { o.write(o.out, o.decorateOut, lines) }

// WriteError emits lines on stderr.
func (o *Output) WriteError(lines ...string) { o.write(o.err, o.decorateErr, lines) }

func (o *Output) write(w io.Writer, decorated bool, lines []string) {
	if len(lines) == 0 {
		return
	}
	if o.Verbosity() == Quiet {
		o.st.suppressed.Add(uint64(len(lines)))
		return
	}

	buf := getBufWithCap(o.initBufCap)
	defer putBuf(buf)
	for _, line := range lines {
		o.formatter.format(buf, line, decorated)
		buf.writeByte('\n')
	}

	o.mu.Lock()
	_, err := w.Write(buf.b)
	o.mu.Unlock()

	if err != nil {
		o.st.errors.Add(1)
		o.onError(err)
		return
	}
	o.st.written.Add(uint64(len(lines)))
}

// Verbosity returns the current verbosity.
func (o *Output) Verbosity() Verbosity { return Verbosity(o.verbosity.Load()) }

// SetVerbosity changes the verbosity; safe for concurrent use.
func (o *Output) SetVerbosity(v Verbosity) { o.verbosity.Store(uint32(v)) }

func (o *Output) IsQuiet() bool       { return o.Verbosity() == Quiet }
func (o *Output) IsVerbose() bool     { return o.Verbosity() >= Verbose }
func (o *Output) IsVeryVerbose() bool { return o.Verbosity() >= VeryVerbose }
func (o *Output) IsDebug() bool       { return o.Verbosity() >= Debug }

// IsDecorated reports whether stdout lines are rendered with ANSI sequences.
func (o *Output) IsDecorated() bool { return o.decorateOut }

// Stats returns a snapshot of internal counters.
func (o *Output) Stats() StatsSnapshot { return o.st.snapshot() }

// ResetStats resets internal counters.
func (o *Output) ResetStats() { o.st.reset() }
