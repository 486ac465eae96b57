package zerolog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/console"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("json unmarshal: %v; line=%s", err, line)
		}
		out = append(out, m)
	}
	return out
}

func TestZerologSink_LevelsAndTimestamp(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	var buf bytes.Buffer
	l, err := pluginlog.New("plugin", New(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Critical("disk {state}", pluginlog.Context{"state": "full"})
	l.Warning("slow", nil)
	l.Notice("ok", nil)

	got := decodeLines(t, &buf)
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d: %s", len(got), buf.String())
	}
	want := []struct{ level, msg string }{
		{"error", "plugin: disk full"},
		{"warn", "plugin: slow"},
		{"info", "plugin: ok"},
	}
	for i, w := range want {
		if got[i]["level"] != w.level || got[i]["message"] != w.msg {
			t.Fatalf("event %d mismatch: %v", i, got[i])
		}
		if got[i]["ts"] != ft.Format(time.RFC3339Nano) {
			t.Fatalf("event %d ts mismatch: %v", i, got[i]["ts"])
		}
	}
}

func TestZerologSink_VerbosityGates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(zerolog.New(&buf))
	s.SetVerbosity(console.Normal)
	if s.IsVerbose() || s.IsDebug() {
		t.Fatal("normal verbosity must hide info and debug")
	}
	l, _ := pluginlog.New("plugin", s)
	l.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	s.SetVerbosity(console.Debug)
	if !s.IsVerbose() || !s.IsDebug() {
		t.Fatal("debug verbosity must enable info and debug")
	}
}

func TestUse_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	l := Use(Config{Channel: "zl", Writer: &buf, Verbosity: console.Verbose, Console: true})
	if pluginlog.L() != l {
		t.Fatal("Use must set the global logger")
	}
	pluginlog.Info("hello {who}", pluginlog.Context{"who": "world"})
	pluginlog.Debug("hidden", nil)

	out := buf.String()
	if !strings.Contains(out, "zl: hello world") {
		t.Fatalf("missing message: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug leaked at verbose: %q", out)
	}
}
