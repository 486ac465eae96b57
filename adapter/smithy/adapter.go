package smithy

import (
	"fmt"

	"github.com/aws/smithy-go/logging"

	"github.com/trickstertwo/pluginlog"
)

// Logger lets AWS SDK clients log through a pluginlog.Logger.
// Warn classifications become warnings, Debug becomes debug, anything else info.
type Logger struct {
	l *pluginlog.Logger
}

var _ logging.Logger = (*Logger)(nil)

func New(l *pluginlog.Logger) *Logger {
	return &Logger{l: l}
}

func toLevel(c logging.Classification) pluginlog.Level {
	switch c {
	case logging.Warn:
		return pluginlog.LevelWarning
	case logging.Debug:
		return pluginlog.LevelDebug
	default:
		return pluginlog.LevelInfo
	}
}

func (a *Logger) Logf(c logging.Classification, format string, v ...interface{}) {
	lvl := toLevel(c)
	if !a.l.Enabled(lvl) {
		return
	}
	// No context: SDK output containing braces is written verbatim.
	a.l.Log(lvl, fmt.Sprintf(format, v...), nil)
}
