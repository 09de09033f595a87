// Package sink provides the Sink interface and its built-in
// implementations for delivering formatted log records to their
// destinations.
//
// A sink receives both the record and its formatted representation and
// may block on I/O. Transport errors are returned to the dispatching
// logger, which counts them and swallows them; logging must never be
// the reason the host application crashes.
//
// Built-in sinks:
//
//   - ConsoleSink writes to any io.Writer (default: stdout).
//   - SyslogSink writes to the local syslog daemon with lazy dialing
//     and redial-on-failure.
//   - FileSink appends to a file with size-based rotation and backup
//     cleanup.
//   - ZapSink forwards records into a zap pipeline, for applications
//     that already ship their logs through zap.
//
// Sinks are only invoked while the owning logger's mutex is held and
// therefore need no locking of their own.
package sink
