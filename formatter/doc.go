// Package formatter defines how log records are serialized into bytes.
//
// The Formatter interface is a pure function of the record: it never
// blocks and never fails. Delivery cost and transport errors belong to
// the sink package.
//
// Both built-in formatters (TextFormatter and JSONFormatter) render
// output manually into a pooled bytes.Buffer and rely on Go's
// Append-style functions (time.AppendFormat, strconv.Itoa) to keep
// per-call allocations low. The TextFormatter pre-computes level
// bracket strings (" [INFO] ", etc.) so that the most common path is a
// single WriteString call. The JSONFormatter escapes strings with a
// small hex table instead of going through encoding/json.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
