package sink

import (
	"io"
	"os"

	"github.com/dawglabs/dawglog/core"
)

// ConsoleSink writes formatted log records to an io.Writer
type ConsoleSink struct {
	writer io.Writer
}

// NewConsoleSink creates a console sink writing to standard output
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{writer: os.Stdout}
}

// NewConsoleSinkTo creates a console sink writing to the given writer
func NewConsoleSinkTo(w io.Writer) *ConsoleSink {
	return &ConsoleSink{writer: w}
}

// Write delivers the formatted bytes to the underlying writer
func (s *ConsoleSink) Write(_ *core.Record, formatted []byte) error {
	_, err := s.writer.Write(formatted)
	return err
}
