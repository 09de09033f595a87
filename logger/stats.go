package logger

import "sync/atomic"

// Stats tracks dispatch outcomes. Sink transport failures are
// swallowed by Log, so these counters are the only place they remain
// visible; expose them through a health check if silent degradation
// matters to the application.
type Stats struct {
	written uint64
	failed  uint64
	skipped uint64
}

func (s *Stats) incrementWritten() {
	atomic.AddUint64(&s.written, 1)
}

func (s *Stats) incrementFailed() {
	atomic.AddUint64(&s.failed, 1)
}

func (s *Stats) incrementSkipped() {
	atomic.AddUint64(&s.skipped, 1)
}

// StatsSnapshot is a point-in-time copy of the dispatch counters
type StatsSnapshot struct {
	// Written counts successful sink deliveries
	Written uint64
	// Failed counts sink writes that returned a transport error
	Failed uint64
	// Skipped counts targets passed over for missing a sink or formatter
	Skipped uint64
}

func (s *Stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Written: atomic.LoadUint64(&s.written),
		Failed:  atomic.LoadUint64(&s.failed),
		Skipped: atomic.LoadUint64(&s.skipped),
	}
}
