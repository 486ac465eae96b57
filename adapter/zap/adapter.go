package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/console"
)

// Sink is a pluginlog.ConsoleSink backed by go.uber.org/zap.
//
//   - Write emits Info entries, WriteError emits Error (or Warn for
//     warning-styled lines). Style tags are stripped.
//   - IsVerbose/IsDebug follow the core: Info/Debug being enabled.
//   - Every entry carries an RFC3339Nano "ts" string taken from xclock.
type Sink struct {
	l     *zap.Logger
	tsKey string // timestamp field key; default "ts"
}

var _ pluginlog.ConsoleSink = (*Sink)(nil)

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, tsKey: "ts"}
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Sink {
	s := New(l)
	if tsKey != "" {
		s.tsKey = tsKey
	}
	return s
}

func (s *Sink) Write(lines ...string) {
	for _, line := range lines {
		s.emit(zapcore.InfoLevel, line)
	}
}

func (s *Sink) WriteError(lines ...string) {
	for _, line := range lines {
		lvl := zapcore.ErrorLevel
		if console.IsWarning(line) {
			lvl = zapcore.WarnLevel
		}
		s.emit(lvl, line)
	}
}

func (s *Sink) IsVerbose() bool { return s.l.Core().Enabled(zapcore.InfoLevel) }
func (s *Sink) IsDebug() bool   { return s.l.Core().Enabled(zapcore.DebugLevel) }

func (s *Sink) emit(lvl zapcore.Level, line string) {
	msg := console.Strip(line)

	// Fast path: skip if disabled.
	ce := s.l.Check(lvl, msg)
	if ce == nil {
		return
	}
	ce.Write(zap.String(s.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)))
}

func toZapLevel(v console.Verbosity) zapcore.Level {
	switch {
	case v >= console.Debug:
		return zapcore.DebugLevel
	case v >= console.Verbose:
		return zapcore.InfoLevel
	case v == console.Quiet:
		// Errors still surface in quiet mode.
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
