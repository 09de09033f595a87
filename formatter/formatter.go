package formatter

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/dawglabs/dawglog/core"
)

// Formatter converts a log record into its output representation.
// Implementations must be pure with respect to the record: no shared
// state mutation and no blocking I/O (delivery cost belongs to sinks).
type Formatter interface {
	// Format renders a log record into bytes
	Format(rec *core.Record) []byte
}

// Type identifies a built-in formatter variant
type Type string

const (
	// Text is the human-readable single-line formatter
	Text Type = "text"
	// JSON is the machine-readable structured formatter
	JSON Type = "json"
)

// ParseType converts a string to a formatter Type, defaulting to Text
// for unknown values
func ParseType(s string) Type {
	switch strings.ToLower(s) {
	case "json":
		return JSON
	default:
		return Text
	}
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for the
	// formatter's default)
	TimestampFormat string
}

// New constructs the built-in formatter for the given type
func New(t Type) Formatter {
	switch t {
	case JSON:
		return NewJSONFormatter(Config{})
	default:
		return NewTextFormatter(Config{})
	}
}

// defaultTimestamp is used by NewTextFormatter when no format is given
const defaultTimestamp = time.RFC3339

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
