package formatter

import (
	"bytes"
	"strconv"

	"github.com/dawglabs/dawglog/core"
)

// TextFormatter formats log records as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = defaultTimestamp
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel:   " [TRACE] ",
	core.DebugLevel:   " [DEBUG] ",
	core.InfoLevel:    " [INFO] ",
	core.NoticeLevel:  " [NOTICE] ",
	core.WarningLevel: " [WARNING] ",
	core.ErrorLevel:   " [ERROR] ",
	core.FatalLevel:   " [FATAL] ",
}

// Format renders a record as a single text line
func (f *TextFormatter) Format(rec *core.Record) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if int(rec.Level) >= 0 && int(rec.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// App name
	if rec.AppName != "" {
		buf.WriteString(rec.AppName)
		buf.WriteByte(' ')
	}

	// Tag, empty tags are omitted entirely
	if rec.Tag != "" {
		buf.WriteByte('(')
		buf.WriteString(rec.Tag)
		buf.WriteString(") ")
	}

	// Call site
	if rec.Src.Defined {
		buf.WriteByte('[')
		buf.WriteString(rec.Src.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(rec.Src.Line))
		if rec.Src.Function != "" {
			buf.WriteByte(' ')
			buf.WriteString(rec.Src.Function)
		}
		buf.WriteString("] ")
	}

	// Message
	buf.WriteString(rec.Message)

	buf.WriteByte('\n')
}
