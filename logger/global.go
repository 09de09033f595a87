package logger

import (
	"sync"

	"github.com/dawglabs/dawglog/config"
	"github.com/dawglabs/dawglog/core"
	"github.com/dawglabs/dawglog/formatter"
	"github.com/dawglabs/dawglog/sink"
)

var (
	global   *Logger
	globalMu sync.Mutex
)

func makeSink(t sink.Type, appName string) sink.Sink {
	switch t {
	case sink.Syslog:
		return sink.NewSyslogSink(appName)
	default:
		return sink.NewConsoleSink()
	}
}

func makeTarget(st sink.Type, ft formatter.Type, appName string) Target {
	return Target{Sink: makeSink(st, appName), Formatter: formatter.New(ft)}
}

// install replaces the global instance. The old instance is released
// without draining: callers must quiesce logging before reinitializing,
// as goroutines holding a stale reference keep writing through it.
func install(l *Logger) {
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// Init installs a global logger with sink and formatter both derived
// from the configuration
func Init(cfg config.Config) {
	install(New([]Target{makeTarget(cfg.Sink, cfg.Format, cfg.AppName)}, cfg.AppName))
}

// InitWithFormatter installs a global logger with the sink derived
// from the configuration and the given formatter
func InitWithFormatter(cfg config.Config, f formatter.Formatter) {
	install(New([]Target{{Sink: makeSink(cfg.Sink, cfg.AppName), Formatter: f}}, cfg.AppName))
}

// InitWithSink installs a global logger with the given sink and the
// formatter derived from the configuration
func InitWithSink(cfg config.Config, s sink.Sink) {
	install(New([]Target{{Sink: s, Formatter: formatter.New(cfg.Format)}}, cfg.AppName))
}

// InitWithSinkAndFormatter installs a global logger using the given
// sink and formatter verbatim; the configuration supplies only the
// app name
func InitWithSinkAndFormatter(cfg config.Config, s sink.Sink, f formatter.Formatter) {
	install(New([]Target{{Sink: s, Formatter: f}}, cfg.AppName))
}

// InitWithTargets installs a global logger using the target list
// verbatim; the configuration supplies only the app name
func InitWithTargets(cfg config.Config, targets []Target) {
	install(New(targets, cfg.AppName))
}

// Instance returns the global logger. If Init was never called, a
// console/text logger with the default app name is created on the
// spot, and the very first record it dispatches is a warning about
// the missing initialization.
func Instance() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New([]Target{makeTarget(sink.Console, formatter.Text, config.DefaultAppName)}, config.DefaultAppName)
		global.Log(core.WarningLevel, "", core.Capture(1),
			"logger not initialized, defaulting to console sink and text format")
	}
	return global
}

// Package-level convenience functions dispatching through the global
// instance. Each captures its own call site.

// Trace logs a trace message through the global logger
func Trace(format string, args ...interface{}) string {
	return Instance().Log(core.TraceLevel, "", core.Capture(2), format, args...)
}

// Debug logs a debug message through the global logger
func Debug(format string, args ...interface{}) string {
	return Instance().Log(core.DebugLevel, "", core.Capture(2), format, args...)
}

// Info logs an info message through the global logger
func Info(format string, args ...interface{}) string {
	return Instance().Log(core.InfoLevel, "", core.Capture(2), format, args...)
}

// Notice logs a notice message through the global logger
func Notice(format string, args ...interface{}) string {
	return Instance().Log(core.NoticeLevel, "", core.Capture(2), format, args...)
}

// Warning logs a warning message through the global logger
func Warning(format string, args ...interface{}) string {
	return Instance().Log(core.WarningLevel, "", core.Capture(2), format, args...)
}

// Error logs an error message through the global logger
func Error(format string, args ...interface{}) string {
	return Instance().Log(core.ErrorLevel, "", core.Capture(2), format, args...)
}

// Fatal logs a fatal message through the global logger. Unlike the
// stdlib it does not terminate the process; the dispatch core never
// ends the host application.
func Fatal(format string, args ...interface{}) string {
	return Instance().Log(core.FatalLevel, "", core.Capture(2), format, args...)
}
