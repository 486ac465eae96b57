package logr

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/trickstertwo/pluginlog"
)

// LogSink implements logr.LogSink on top of a pluginlog.Logger.
// V(0) maps to info, any higher verbosity to debug, and Error to error.
// Key/value pairs become the placeholder context.
type LogSink struct {
	l      *pluginlog.Logger
	values []any
}

var _ logr.LogSink = (*LogSink)(nil)

// New returns a logr.Logger writing through l.
func New(l *pluginlog.Logger) logr.Logger {
	return logr.New(&LogSink{l: l})
}

func (s *LogSink) Init(logr.RuntimeInfo) {}

func toLevel(v int) pluginlog.Level {
	if v > 0 {
		return pluginlog.LevelDebug
	}
	return pluginlog.LevelInfo
}

func (s *LogSink) Enabled(level int) bool {
	return s.l.Enabled(toLevel(level))
}

func (s *LogSink) Info(level int, msg string, kv ...any) {
	s.l.Log(toLevel(level), msg, s.context(kv))
}

func (s *LogSink) Error(err error, msg string, kv ...any) {
	ctx := s.context(kv)
	ctx["error"] = err
	s.l.Log(pluginlog.LevelError, msg, ctx)
}

func (s *LogSink) WithValues(kv ...any) logr.LogSink {
	child := *s
	child.values = make([]any, 0, len(s.values)+len(kv))
	child.values = append(child.values, s.values...)
	child.values = append(child.values, kv...)
	return &child
}

// WithName appends name to the channel, separated by '/'.
func (s *LogSink) WithName(name string) logr.LogSink {
	child := *s
	child.l = s.l.With(s.l.Channel() + "/" + name)
	return &child
}

func (s *LogSink) context(kv []any) pluginlog.Context {
	ctx := make(pluginlog.Context, (len(s.values)+len(kv))/2+1)
	addPairs(ctx, s.values)
	addPairs(ctx, kv)
	return ctx
}

func addPairs(ctx pluginlog.Context, kv []any) {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 < len(kv) {
			ctx[key] = kv[i+1]
		} else {
			ctx[key] = nil
		}
	}
}
