// Package logger is the public API of dawglog. Most users only need
// to import this package.
//
// A Logger owns an ordered list of sink/formatter targets and a single
// mutex that serializes everything: log dispatch, target mutation, and
// the metrics registry. A log call formats its message once, wraps it
// into a core.Record, and delivers the record to every target in
// registration order while holding the lock, so output from concurrent
// callers is never interleaved. The formatted message is returned to
// the caller.
//
// The package maintains a global instance configured through the Init
// functions:
//
//	cfg := config.Load("dawglog.json")
//	logger.Init(cfg)
//	logger.Info("ready on port %d", 8080)
//
// Accessing Instance before any Init lazily creates a console/text
// logger and warns about it through that very logger. Subsystems
// usually log through a Tagged wrapper, which stamps a fixed tag and
// captures the call site automatically:
//
//	var dbLog = logger.NewTagged("db")
//	dbLog.Warning("slow query: %s", q)
//
// The optional metrics registry hangs off the same Logger and the same
// mutex. AddMetric registers counter, gauge, histogram or summary
// families backed by Prometheus; ReportMetric applies type-checked
// actions to them; Registry hands the underlying registry to an
// exposition endpoint.
package logger
