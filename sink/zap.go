package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dawglabs/dawglog/core"
)

// ZapSink forwards log records into an existing zap pipeline. The
// formatted representation is ignored; the record's fields are passed
// to zap structurally so its own encoders stay in charge of rendering.
type ZapSink struct {
	zl *zap.Logger
}

// NewZapSink creates a sink backed by the given zap logger
func NewZapSink(zl *zap.Logger) *ZapSink {
	return &ZapSink{zl: zl}
}

// zapLevel maps a record level to the closest zapcore level. Fatal
// maps to zapcore.ErrorLevel because zap's own Fatal terminates the
// process, which a sink must never do.
func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel, core.NoticeLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Write forwards the record to the underlying zap logger
func (s *ZapSink) Write(rec *core.Record, _ []byte) error {
	ce := s.zl.Check(zapLevel(rec.Level), rec.Message)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, 3)
	if rec.AppName != "" {
		fields = append(fields, zap.String("app", rec.AppName))
	}
	if rec.Tag != "" {
		fields = append(fields, zap.String("tag", rec.Tag))
	}
	if rec.Src.Defined {
		fields = append(fields, zap.String("src", rec.Src.String()))
	}
	ce.Write(fields...)
	return nil
}
