package slog

import (
	"log/slog"

	"github.com/trickstertwo/pluginlog"
)

// NewLogger returns a *slog.Logger whose records are written by l.
func NewLogger(l *pluginlog.Logger) *slog.Logger {
	return slog.New(NewHandler(l))
}

// SetDefault routes the process-wide slog default logger through l.
func SetDefault(l *pluginlog.Logger) *slog.Logger {
	sl := NewLogger(l)
	slog.SetDefault(sl)
	return sl
}
