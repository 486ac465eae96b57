package console

import "sync/atomic"

type stats struct {
	written    atomic.Uint64
	suppressed atomic.Uint64
	errors     atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Written    uint64 // lines handed to a writer
	Suppressed uint64 // lines dropped in quiet mode
	Errors     uint64 // failed writes
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Written:    s.written.Load(),
		Suppressed: s.suppressed.Load(),
		Errors:     s.errors.Load(),
	}
}

func (s *stats) reset() {
	s.written.Store(0)
	s.suppressed.Store(0)
	s.errors.Store(0)
}
