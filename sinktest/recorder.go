// Package sinktest provides an in-memory pluginlog.ConsoleSink for tests.
package sinktest

import (
	"sync"
	"time"

	"github.com/trickstertwo/xclock"
)

// Stream identifies which console stream a line was written to.
type Stream uint8

const (
	StreamOut Stream = iota + 1
	StreamErr
)

func (s Stream) String() string {
	switch s {
	case StreamOut:
		return "stdout"
	case StreamErr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Line is one recorded line, stamped with xclock.Now() at write time.
type Line struct {
	At     time.Time
	Stream Stream
	Text   string
}

// Recorder records every write and answers the verbosity flags it was built with.
type Recorder struct {
	mu      sync.Mutex
	verbose bool
	debug   bool
	lines   []Line
	calls   map[Stream]int
}

// New returns a Recorder with fixed flags. debug does not imply verbose.
func New(verbose, debug bool) *Recorder {
	return &Recorder{verbose: verbose, debug: debug, calls: map[Stream]int{}}
}

func (r *Recorder) Write(lines ...string)      { r.record(StreamOut, lines) }
func (r *Recorder) WriteError(lines ...string) { r.record(StreamErr, lines) }

func (r *Recorder) IsVerbose() bool { return r.verbose }
func (r *Recorder) IsDebug() bool   { return r.debug }

func (r *Recorder) record(s Stream, lines []string) {
	at := xclock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[s]++
	for _, text := range lines {
		r.lines = append(r.lines, Line{At: at, Stream: s, Text: text})
	}
}

// Lines returns a copy of everything recorded so far, in write order.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Out returns the texts written with Write.
func (r *Recorder) Out() []string { return r.texts(StreamOut) }

// Err returns the texts written with WriteError.
func (r *Recorder) Err() []string { return r.texts(StreamErr) }

// Calls reports how many times the given stream's write method was invoked.
func (r *Recorder) Calls(s Stream) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[s]
}

// Reset drops recorded lines and call counts; flags are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	r.calls = map[Stream]int{}
}

func (r *Recorder) texts(s Stream) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, l := range r.lines {
		if l.Stream == s {
			out = append(out, l.Text)
		}
	}
	return out
}
