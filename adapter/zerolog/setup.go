package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/console"
)

// Config is an explicit, code-first configuration for zerolog + pluginlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Channel           string
	Writer            io.Writer // default: os.Stderr
	Verbosity         console.Verbosity
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339Nano
}

// NewZerologLogger builds the zerolog.Logger described by cfg.
func NewZerologLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		// The sink writes its own "ts"; hide the empty default time column.
		cw.PartsExclude = []string{zerolog.TimestampFieldName}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	return zl.Level(mapVerbosity(cfg.Verbosity))
}

// Use builds a zerolog-backed pluginlog logger from Config, wires it as the
// global logger, and returns it.
func Use(cfg Config) *pluginlog.Logger {
	l, err := pluginlog.Use(pluginlog.Config{Channel: cfg.Channel, Sink: New(NewZerologLogger(cfg))})
	if err != nil {
		// In practice, Use only fails with a nil sink which cannot happen here.
		panic(err)
	}
	return l
}
