package slog

import (
	"log/slog"
	"testing"
	"time"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/sinktest"
)

func newBridge(t *testing.T, verbose, debug bool) (*slog.Logger, *sinktest.Recorder) {
	t.Helper()
	rec := sinktest.New(verbose, debug)
	l, err := pluginlog.New("plugin", rec)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return NewLogger(l), rec
}

func TestHandler_AttrsFillPlaceholders(t *testing.T) {
	t.Parallel()

	sl, rec := newBridge(t, true, false)
	sl.Info("installed {pkg} in {took}", "pkg", "vendor/lib", "took", 1500*time.Millisecond)
	sl.Error("failed: {reason}", slog.String("reason", "timeout"))

	out := rec.Out()
	if len(out) != 1 || out[0] != "<info>plugin: installed vendor/lib in 1.5s</info>" {
		t.Fatalf("stdout mismatch: %q", out)
	}
	errs := rec.Err()
	if len(errs) != 1 || errs[0] != "<error>plugin: failed: timeout</error>" {
		t.Fatalf("stderr mismatch: %q", errs)
	}
}

func TestHandler_GroupsAndBoundAttrs(t *testing.T) {
	t.Parallel()

	sl, rec := newBridge(t, false, false)
	child := sl.With("op", "update").WithGroup("req")
	child.Warn("{op} {req.id} {req.user.name}", "id", 7, slog.Group("user", "name", "ana"))

	errs := rec.Err()
	if len(errs) != 1 || errs[0] != "<fg=yellow>plugin: update 7 ana</>" {
		t.Fatalf("stderr mismatch: %q", errs)
	}
}

func TestHandler_EnabledFollowsSinkFlags(t *testing.T) {
	t.Parallel()

	sl, rec := newBridge(t, false, false)
	sl.Debug("d")
	sl.Info("i")
	if got := rec.Calls(sinktest.StreamOut); got != 0 {
		t.Fatalf("expected no stdout writes, got %d", got)
	}

	sl, rec = newBridge(t, false, true)
	sl.Debug("d")
	if out := rec.Out(); len(out) != 1 || out[0] != "<info>plugin: d</info>" {
		t.Fatalf("debug not routed: %q", out)
	}
}

func TestToLevel(t *testing.T) {
	t.Parallel()

	cases := map[slog.Level]pluginlog.Level{
		slog.LevelDebug:     pluginlog.LevelDebug,
		slog.LevelInfo:      pluginlog.LevelInfo,
		slog.LevelInfo + 2:  pluginlog.LevelInfo,
		slog.LevelWarn:      pluginlog.LevelWarning,
		slog.LevelError:     pluginlog.LevelError,
		slog.LevelError + 4: pluginlog.LevelCritical,
	}
	for in, want := range cases {
		if got := ToLevel(in); got != want {
			t.Fatalf("%s: got %s want %s", in, got, want)
		}
	}
}
