package core

import "time"

// Record represents one log event with all its metadata. A Record is
// built once per log call, handed to every registered target, and then
// discarded; it is never mutated after construction and never shared
// across goroutines.
type Record struct {
	Time    time.Time
	Level   Level
	Tag     string
	Src     SourceLocation
	AppName string
	Message string
}
