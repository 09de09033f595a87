// Package core defines the shared types used across the dawglog library.
//
// It provides the Level type for severity classification, the Record type
// that represents a single log event, and SourceLocation for call-site
// metadata captured with Capture.
//
// Records are deliberately not pooled: dispatch is synchronous, so a
// Record lives for exactly one log call and sinks may safely retain the
// formatted bytes they were handed.
package core
