package pluginlog

import (
	"errors"
	"sync/atomic"
)

// ErrNoSink is returned by New when no ConsoleSink is supplied.
var ErrNoSink = errors.New("pluginlog: console sink is required")

// Logger formats log records for one channel and writes them to a ConsoleSink.
// It holds no mutable state and is safe for concurrent use when the sink is.
type Logger struct {
	name string
	sink ConsoleSink
}

// New binds a channel name to a sink. The channel is prefixed to every message.
func New(channel string, sink ConsoleSink) (*Logger, error) {
	if sink == nil {
		return nil, ErrNoSink
	}
	return &Logger{name: channel, sink: sink}, nil
}

// Channel returns the channel name this Logger is bound to.
func (l *Logger) Channel() string { return l.name }

// With returns a sibling Logger on the same sink under another channel.
func (l *Logger) With(channel string) *Logger {
	return &Logger{name: channel, sink: l.sink}
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger used by the package-level helpers.
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("pluginlog: global logger not set. Build one with pluginlog.New and call pluginlog.SetGlobal(...)")
	}
	return l
}

// Log routes a record by severity. The first matching row wins:
//
//	error, critical, alert, emergency -> WriteError, <error>, always
//	warning                           -> WriteError, <fg=yellow>, always
//	debug                             -> Write, <info>, only when IsDebug
//	anything else                     -> Write, <info>, only when IsVerbose
//
// The message is formatted only once the visibility gate has passed.
func (l *Logger) Log(level Level, message string, ctx Context) {
	switch level {
	case LevelError, LevelCritical, LevelAlert, LevelEmergency:
		l.sink.WriteError(errorOpen + l.BuildMessage(message, ctx) + errorClose)
	case LevelWarning:
		l.sink.WriteError(warningOpen + l.BuildMessage(message, ctx) + styleClose)
	case LevelDebug:
		if l.sink.IsDebug() {
			l.sink.Write(infoOpen + l.BuildMessage(message, ctx) + infoClose)
		}
	default:
		if l.sink.IsVerbose() {
			l.sink.Write(infoOpen + l.BuildMessage(message, ctx) + infoClose)
		}
	}
}

// Enabled reports whether Log would write a line at level.
// Use to avoid building contexts in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	switch level {
	case LevelError, LevelCritical, LevelAlert, LevelEmergency, LevelWarning:
		return true
	case LevelDebug:
		return l.sink.IsDebug()
	default:
		return l.sink.IsVerbose()
	}
}

// LogString accepts an open level string; unknown names take the default route.
func (l *Logger) LogString(level, message string, ctx Context) {
	l.Log(ParseLevel(level), message, ctx)
}

// Level entry points forwarding to Log with a fixed severity.

func (l *Logger) Emergency(message string, ctx Context) { l.Log(LevelEmergency, message, ctx) }
func (l *Logger) Alert(message string, ctx Context)     { l.Log(LevelAlert, message, ctx) }
func (l *Logger) Critical(message string, ctx Context)  { l.Log(LevelCritical, message, ctx) }
func (l *Logger) Error(message string, ctx Context)     { l.Log(LevelError, message, ctx) }
func (l *Logger) Warning(message string, ctx Context)   { l.Log(LevelWarning, message, ctx) }
func (l *Logger) Notice(message string, ctx Context)    { l.Log(LevelNotice, message, ctx) }
func (l *Logger) Info(message string, ctx Context)      { l.Log(LevelInfo, message, ctx) }
func (l *Logger) Debug(message string, ctx Context)     { l.Log(LevelDebug, message, ctx) }
