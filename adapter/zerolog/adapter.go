package zerolog

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/console"
)

// Sink is a pluginlog.ConsoleSink backed by rs/zerolog.
//
//   - Write emits Info events; WriteError emits Error, or Warn for
//     warning-styled lines. Style tags are stripped.
//   - Fast pre-check using GetLevel() to avoid allocating zerolog.Event when
//     the level is disabled.
//   - Each event carries "ts" from xclock with RFC3339Nano precision.
type Sink struct {
	l zerolog.Logger
}

var _ pluginlog.ConsoleSink = (*Sink)(nil)

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

func (s *Sink) Write(lines ...string) {
	for _, line := range lines {
		s.emit(zerolog.InfoLevel, line)
	}
}

func (s *Sink) WriteError(lines ...string) {
	for _, line := range lines {
		lvl := zerolog.ErrorLevel
		if console.IsWarning(line) {
			lvl = zerolog.WarnLevel
		}
		s.emit(lvl, line)
	}
}

func (s *Sink) IsVerbose() bool { return s.enabled(zerolog.InfoLevel) }
func (s *Sink) IsDebug() bool   { return s.enabled(zerolog.DebugLevel) }

func (s *Sink) enabled(lvl zerolog.Level) bool {
	return lvl >= s.l.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (s *Sink) emit(lvl zerolog.Level, line string) {
	// Fast path: drop early if below logger's min level (no Event allocation).
	if lvl < s.l.GetLevel() {
		return
	}
	ev := s.l.WithLevel(lvl)
	if ev == nil {
		return
	}
	ev.Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano)).Msg(console.Strip(line))
}

// SetVerbosity adjusts the zerolog level to match a host verbosity.
func (s *Sink) SetVerbosity(v console.Verbosity) {
	s.l = s.l.Level(mapVerbosity(v))
}

// mapVerbosity converts a host verbosity to a zerolog.Level.
func mapVerbosity(v console.Verbosity) zerolog.Level {
	switch {
	case v >= console.Debug:
		return zerolog.DebugLevel
	case v >= console.Verbose:
		return zerolog.InfoLevel
	case v == console.Quiet:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
