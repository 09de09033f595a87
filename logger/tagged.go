package logger

import (
	"github.com/pkg/errors"

	"github.com/dawglabs/dawglog/core"
)

// Tagged is a lightweight wrapper that stamps every message with a
// fixed tag and dispatches through the global logger. It is cheap to
// create per subsystem:
//
//	var ingestLog = logger.NewTagged("ingest")
//	ingestLog.Info("step %d done", n)
type Tagged struct {
	tag string
}

// NewTagged creates a tagged wrapper around the global logger
func NewTagged(tag string) Tagged {
	return Tagged{tag: tag}
}

// Tag returns the wrapper's tag
func (t Tagged) Tag() string {
	return t.tag
}

// Trace logs a trace message with the wrapper's tag
func (t Tagged) Trace(format string, args ...interface{}) string {
	return Instance().Log(core.TraceLevel, t.tag, core.Capture(2), format, args...)
}

// Debug logs a debug message with the wrapper's tag
func (t Tagged) Debug(format string, args ...interface{}) string {
	return Instance().Log(core.DebugLevel, t.tag, core.Capture(2), format, args...)
}

// Info logs an info message with the wrapper's tag
func (t Tagged) Info(format string, args ...interface{}) string {
	return Instance().Log(core.InfoLevel, t.tag, core.Capture(2), format, args...)
}

// Notice logs a notice message with the wrapper's tag
func (t Tagged) Notice(format string, args ...interface{}) string {
	return Instance().Log(core.NoticeLevel, t.tag, core.Capture(2), format, args...)
}

// Warning logs a warning message with the wrapper's tag
func (t Tagged) Warning(format string, args ...interface{}) string {
	return Instance().Log(core.WarningLevel, t.tag, core.Capture(2), format, args...)
}

// Error logs an error message with the wrapper's tag
func (t Tagged) Error(format string, args ...interface{}) string {
	return Instance().Log(core.ErrorLevel, t.tag, core.Capture(2), format, args...)
}

// Fatal logs a fatal message with the wrapper's tag without
// terminating the process
func (t Tagged) Fatal(format string, args ...interface{}) string {
	return Instance().Log(core.FatalLevel, t.tag, core.Capture(2), format, args...)
}

// Throw logs at error level and returns the logged message as an
// error carrying a stack trace, so a single call both records the
// failure and produces the value to hand up the call chain:
//
//	return ingestLog.Throw("node %d unreachable", id)
func (t Tagged) Throw(format string, args ...interface{}) error {
	msg := Instance().Log(core.ErrorLevel, t.tag, core.Capture(2), format, args...)
	return errors.New(msg)
}
