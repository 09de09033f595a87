package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// SourceLocation identifies the call site that produced a log record
type SourceLocation struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// String returns "file.go:42 pkg.Func", or "file.go:42" when the
// function name is unavailable
func (s SourceLocation) String() string {
	if !s.Defined {
		return ""
	}
	loc := s.ShortFile + ":" + strconv.Itoa(s.Line)
	if s.Function != "" {
		loc += " " + s.Function
	}
	return loc
}

// Capture retrieves the source location of a call site. skip is the
// number of stack frames to ascend: 1 means the caller of Capture,
// 2 the caller's caller, and so on.
func Capture(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return SourceLocation{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return SourceLocation{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
