package pluginlog

import (
	"testing"
	"time"
)

// blackhole variables prevent compiler from optimizing away code paths.
var (
	bhS   string
	bhLen int
)

type discardSink struct{ verbose, debug bool }

func (s *discardSink) Write(lines ...string)      { bhLen = len(lines) }
func (s *discardSink) WriteError(lines ...string) { bhLen = len(lines) }
func (s *discardSink) IsDebug() bool              { return s.debug }
func (s *discardSink) IsVerbose() bool            { return s.verbose }

func newBenchLogger(verbose bool) *Logger {
	l, err := New("bench", &discardSink{verbose: verbose})
	if err != nil {
		panic(err)
	}
	return l
}

func BenchmarkBuildMessage_NoPlaceholders(b *testing.B) {
	l := newBenchLogger(true)
	ctx := Context{"a": 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhS = l.BuildMessage("installing dependencies", ctx)
	}
}

func BenchmarkBuildMessage_5Placeholders(b *testing.B) {
	l := newBenchLogger(true)
	ctx := Context{
		"pkg":  "vendor/lib",
		"ver":  "1.2.3",
		"n":    42,
		"ok":   true,
		"when": time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhS = l.BuildMessage("{pkg}@{ver} n={n} ok={ok} at {when}", ctx)
	}
}

func BenchmarkInfo_GatedOff(b *testing.B) {
	l := newBenchLogger(false)
	ctx := Context{"pkg": "vendor/lib"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("resolved {pkg}", ctx)
	}
}

func BenchmarkError_WithPlaceholder(b *testing.B) {
	l := newBenchLogger(false)
	ctx := Context{"reason": "timeout"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Error("failed: {reason}", ctx)
	}
}
