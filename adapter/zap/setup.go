package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/console"
)

// Config is an explicit, code-first configuration for zap + pluginlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Channel            string
	Writer             io.Writer // default: os.Stderr
	Verbosity          console.Verbosity
	Console            bool                  // console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// NewZapLogger builds the zap.Logger described by cfg. zap's own time key is
// disabled; the sink injects the timestamp from xclock.
func NewZapLogger(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(toZapLevel(cfg.Verbosity)))
	return zap.New(core)
}

// Use builds a zap-backed pluginlog logger from Config, wires it as the
// global logger, and returns it.
func Use(cfg Config) *pluginlog.Logger {
	sink := NewWithTimestampKey(NewZapLogger(cfg), cfg.TimestampFieldName)
	l, err := pluginlog.Use(pluginlog.Config{Channel: cfg.Channel, Sink: sink})
	if err != nil {
		// Only a nil sink fails, which cannot happen here.
		panic(err)
	}
	return l
}
