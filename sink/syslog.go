package sink

import (
	"log/syslog"

	"github.com/dawglabs/dawglog/core"
)

// SyslogSink writes formatted log records to the local syslog daemon.
// The connection is dialed lazily on the first write; a failed
// connection is dropped and redialed on the next write.
type SyslogSink struct {
	tag    string
	writer *syslog.Writer
}

// NewSyslogSink creates a syslog sink. tag identifies the application
// in the syslog stream, typically the configured app name.
func NewSyslogSink(tag string) *SyslogSink {
	return &SyslogSink{tag: tag}
}

// Write delivers the formatted bytes at the record's severity.
// Transport errors are returned for accounting but the caller is
// expected to swallow them.
func (s *SyslogSink) Write(rec *core.Record, formatted []byte) error {
	if s.writer == nil {
		w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_USER, s.tag)
		if err != nil {
			return err
		}
		s.writer = w
	}

	msg := string(formatted)
	var err error
	switch rec.Level {
	case core.TraceLevel, core.DebugLevel:
		err = s.writer.Debug(msg)
	case core.InfoLevel:
		err = s.writer.Info(msg)
	case core.NoticeLevel:
		err = s.writer.Notice(msg)
	case core.WarningLevel:
		err = s.writer.Warning(msg)
	case core.ErrorLevel:
		err = s.writer.Err(msg)
	case core.FatalLevel:
		err = s.writer.Crit(msg)
	default:
		err = s.writer.Info(msg)
	}

	if err != nil {
		// Drop the broken connection so the next write redials
		_ = s.writer.Close()
		s.writer = nil
	}
	return err
}

// Close tears down the syslog connection if one is open
func (s *SyslogSink) Close() error {
	if s.writer == nil {
		return nil
	}
	err := s.writer.Close()
	s.writer = nil
	return err
}
