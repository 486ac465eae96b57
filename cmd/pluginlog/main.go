// Command pluginlog writes one message through a pluginlog.Logger, the way a
// plugin would: pluginlog [flags] <template> [key=value ...]
//
//	pluginlog -l error "failed: {reason}" reason=timeout
//	PLUGINLOG_CHANNEL=installer pluginlog -vv "installed {pkg}" pkg=vendor/lib
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/trickstertwo/pluginlog"
	zapadapter "github.com/trickstertwo/pluginlog/adapter/zap"
	zerologadapter "github.com/trickstertwo/pluginlog/adapter/zerolog"
	"github.com/trickstertwo/pluginlog/console"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pluginlog:", err)
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, rest, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errors.New("missing message template")
	}
	ctx, err := parseContext(rest[1:])
	if err != nil {
		return err
	}

	l, err := pluginlog.New(cfg.Channel, newSink(cfg, stdout, stderr))
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	l.LogString(cfg.Level, rest[0], ctx)
	return nil
}

func newSink(cfg Config, stdout, stderr io.Writer) pluginlog.ConsoleSink {
	switch cfg.Backend {
	case "zap":
		return zapadapter.New(zapadapter.NewZapLogger(zapadapter.Config{
			Writer:    stderr,
			Verbosity: cfg.Verbosity,
			Console:   true,
		}))
	case "zerolog":
		return zerologadapter.New(zerologadapter.NewZerologLogger(zerologadapter.Config{
			Writer:    stderr,
			Verbosity: cfg.Verbosity,
			Console:   true,
		}))
	default:
		return console.New(console.Options{
			Stdout:    stdout,
			Stderr:    stderr,
			Verbosity: cfg.Verbosity,
			Color:     cfg.Color,
		})
	}
}

// parseContext turns key=value arguments into a placeholder context.
// A bare key maps to nil, which renders as an empty string.
func parseContext(pairs []string) (pluginlog.Context, error) {
	ctx := make(pluginlog.Context, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if k == "" {
			return nil, errors.Errorf("invalid context argument %q", p)
		}
		if !ok {
			ctx[k] = nil
			continue
		}
		ctx[k] = v
	}
	return ctx, nil
}
