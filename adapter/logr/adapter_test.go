package logr

import (
	"errors"
	"testing"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/sinktest"
)

func TestLogSink_RoutesVerbosityAndErrors(t *testing.T) {
	t.Parallel()

	rec := sinktest.New(true, false)
	l, err := pluginlog.New("plugin", rec)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	lg := New(l).WithValues("pkg", "vendor/lib")

	lg.Info("resolved {pkg}")
	lg.V(1).Info("debug {pkg}")
	lg.WithName("installer").Error(errors.New("timeout"), "failed {pkg}: {error}", "attempt", 2)

	out := rec.Out()
	if len(out) != 1 || out[0] != "<info>plugin: resolved vendor/lib</info>" {
		t.Fatalf("stdout mismatch: %q", out)
	}
	errs := rec.Err()
	if len(errs) != 1 || errs[0] != "<error>plugin/installer: failed vendor/lib: timeout</error>" {
		t.Fatalf("stderr mismatch: %q", errs)
	}
}

func TestLogSink_OddKeyValues(t *testing.T) {
	t.Parallel()

	rec := sinktest.New(true, true)
	l, _ := pluginlog.New("plugin", rec)
	New(l).Info("{a}|{b}|{3}", "a", 1, 3, "three", "b")

	out := rec.Out()
	if len(out) != 1 || out[0] != "<info>plugin: 1||three</info>" {
		t.Fatalf("stdout mismatch: %q", out)
	}
}
