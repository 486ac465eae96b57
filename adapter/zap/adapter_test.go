package zap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/pluginlog"
	"github.com/trickstertwo/pluginlog/console"
)

func newTestZap(buf *bytes.Buffer, lvl zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "", // disable zap's own time; we inject "ts"
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(buf), lvl)
	return zap.New(core)
}

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

func TestZapSink_LevelsAndStrippedMessages(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	var buf bytes.Buffer
	l, err := pluginlog.New("plugin", New(newTestZap(&buf, zapcore.DebugLevel)))
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Error("failed: {reason}", pluginlog.Context{"reason": "timeout"})
	l.Warning("slow", nil)
	l.Info("ok", nil)
	l.Debug("trace", nil)

	got := decodeLines(t, &buf)
	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d: %s", len(got), buf.String())
	}
	want := []struct{ level, msg string }{
		{"error", "plugin: failed: timeout"},
		{"warn", "plugin: slow"},
		{"info", "plugin: ok"},
		{"info", "plugin: trace"},
	}
	for i, w := range want {
		if got[i]["level"] != w.level || got[i]["message"] != w.msg {
			t.Fatalf("entry %d mismatch: %v", i, got[i])
		}
		if got[i]["ts"] != ft.Format(time.RFC3339Nano) {
			t.Fatalf("entry %d ts mismatch: %v", i, got[i]["ts"])
		}
	}
}

func TestZapSink_FlagsFollowCoreLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(newTestZap(&buf, zapcore.WarnLevel))
	if s.IsVerbose() || s.IsDebug() {
		t.Fatal("warn-level core must be neither verbose nor debug")
	}

	l, _ := pluginlog.New("plugin", s)
	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	s = New(newTestZap(&buf, zapcore.DebugLevel))
	if !s.IsVerbose() || !s.IsDebug() {
		t.Fatal("debug-level core must be verbose and debug")
	}
}

func TestUse_SetsGlobalWithVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := Use(Config{Channel: "zap", Writer: &buf, Verbosity: console.Verbose, TimestampFieldName: "at"})
	if pluginlog.L() != l {
		t.Fatal("Use must set the global logger")
	}
	pluginlog.Info("hello {who}", pluginlog.Context{"who": "world"})
	pluginlog.Debug("hidden", nil)

	got := decodeLines(t, &buf)
	if len(got) != 1 || got[0]["message"] != "zap: hello world" {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if _, ok := got[0]["at"]; !ok {
		t.Fatalf("custom timestamp key missing: %v", got[0])
	}
}
