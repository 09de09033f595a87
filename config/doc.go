// Package config loads logger settings from a JSON or YAML file.
//
// Configuration is intentionally forgiving: a missing file, a parse
// error, or an unknown enum value never surfaces as an error to the
// caller. Every failure path resolves to the documented defaults
// (console sink, text format, app name "DawgLog") with a best-effort
// diagnostic on stderr, so the application always ends up with a
// working logger.
package config
