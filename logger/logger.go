package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dawglabs/dawglog/core"
	"github.com/dawglabs/dawglog/formatter"
	"github.com/dawglabs/dawglog/sink"
)

// Target pairs a sink with the formatter that prepares its input.
// Either member may be nil, in which case the target is silently
// skipped during dispatch.
type Target struct {
	Sink      sink.Sink
	Formatter formatter.Formatter
}

// Logger fans log records out to an ordered list of targets. One mutex
// guards all mutable state: the target list, dispatch itself, and the
// metrics registry. Every public operation is serialized by it, so
// sinks and formatters never run concurrently on the same instance and
// output is never interleaved.
type Logger struct {
	mu      sync.Mutex
	targets []Target
	appName string
	stats   Stats

	registry *prometheus.Registry
	families map[string]metricFamily
}

// New creates a Logger dispatching to the given targets in order
func New(targets []Target, appName string) *Logger {
	return &Logger{
		targets:  targets,
		appName:  appName,
		registry: prometheus.NewRegistry(),
		families: make(map[string]metricFamily),
	}
}

// Log formats the message once, wraps it into a record, and delivers
// the record to every registered target in order. The fully formatted
// message is returned so call sites can reuse it, e.g. to build an
// error from the same text they just logged.
//
// Malformed format templates are not validated ahead of time; fmt
// embeds its %! error markers into the message, which is returned and
// dispatched as-is.
//
// The lock is held for the duration of all sink writes. Sink I/O may
// block, so log calls serialize process-wide on this instance; that is
// the deliberate trade-off for tear-free output without a background
// worker.
func (l *Logger) Log(level core.Level, tag string, src core.SourceLocation, format string, args ...interface{}) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	rec := &core.Record{
		Time:    time.Now(),
		Level:   level,
		Tag:     tag,
		Src:     src,
		AppName: l.appName,
		Message: msg,
	}

	for _, target := range l.targets {
		if target.Sink == nil || target.Formatter == nil {
			l.stats.incrementSkipped()
			continue
		}
		if err := target.Sink.Write(rec, target.Formatter.Format(rec)); err != nil {
			// Transport failures must never crash the host; they
			// are counted and dropped.
			l.stats.incrementFailed()
			continue
		}
		l.stats.incrementWritten()
	}

	return msg
}

// SetFormatter replaces the formatter of the front target. It is a
// no-op when no targets are registered.
func (l *Logger) SetFormatter(f formatter.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.targets) == 0 {
		return
	}
	l.targets[0].Formatter = f
}

// SetSink replaces the sink of the front target. It is a no-op when no
// targets are registered.
func (l *Logger) SetSink(s sink.Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.targets) == 0 {
		return
	}
	l.targets[0].Sink = s
}

// SetTargets replaces the whole target list atomically
func (l *Logger) SetTargets(targets []Target) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets = targets
}

// AddTarget appends a sink/formatter pair to the dispatch list
func (l *Logger) AddTarget(s sink.Sink, f formatter.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets = append(l.targets, Target{Sink: s, Formatter: f})
}

// Stats returns a snapshot of the write counters
func (l *Logger) Stats() StatsSnapshot {
	return l.stats.snapshot()
}
