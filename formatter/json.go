package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/dawglabs/dawglog/core"
)

// JSONFormatter formats log records as JSON
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format renders a record as a JSON object
func (f *JSONFormatter) Format(rec *core.Record) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('{')

	// Time field
	buf.WriteString(`"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')

	// Level field
	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level.String())
	buf.WriteByte('"')

	// App name
	buf.WriteString(`,"app":"`)
	appendJSONString(buf, rec.AppName)
	buf.WriteByte('"')

	// Tag, omitted when empty
	if rec.Tag != "" {
		buf.WriteString(`,"tag":"`)
		appendJSONString(buf, rec.Tag)
		buf.WriteByte('"')
	}

	// Call site
	if rec.Src.Defined {
		buf.WriteString(`,"src":{"file":"`)
		appendJSONString(buf, rec.Src.ShortFile)
		buf.WriteString(`","line":`)
		buf.WriteString(strconv.Itoa(rec.Src.Line))
		if rec.Src.Function != "" {
			buf.WriteString(`,"function":"`)
			appendJSONString(buf, rec.Src.Function)
			buf.WriteByte('"')
		}
		buf.WriteByte('}')
	}

	// Message field
	buf.WriteString(`,"message":"`)
	appendJSONString(buf, rec.Message)
	buf.WriteByte('"')

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
