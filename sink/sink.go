package sink

import (
	"strings"

	"github.com/dawglabs/dawglog/core"
)

// Sink delivers a log record and its formatted representation to a
// destination. Write may block. A returned error is a transport
// diagnostic only; the dispatching logger counts it and never
// propagates it to the call site, so a failing sink can never crash
// the host application.
//
// Sinks are not required to be independently thread-safe. The owning
// logger's mutex is the sole synchronization point, and Write is only
// invoked while that lock is held.
type Sink interface {
	Write(rec *core.Record, formatted []byte) error
}

// Type identifies a built-in sink variant selectable from configuration
type Type string

const (
	// Console writes to standard output
	Console Type = "console"
	// Syslog writes to the local syslog daemon
	Syslog Type = "syslog"
)

// ParseType converts a string to a sink Type, defaulting to Console
// for unknown values
func ParseType(s string) Type {
	switch strings.ToLower(s) {
	case "syslog":
		return Syslog
	default:
		return Console
	}
}
