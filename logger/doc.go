// Package logger is the user-facing front-end of zonelog.
//
// Loggers are immutable and built with a fluent Builder: pick a
// handler, a minimum level, an optional target string attached to
// every event, and optionally enable per-call module path resolution.
// WithTarget on a built logger derives a sibling for another
// subsystem without touching the original.
//
// A process-wide default logger is available through the package
// functions (Info, Warnf, ...). InitFromEnv replaces it with a
// console logger whose minimum level comes from the LOG_LEVEL
// environment variable, which is the usual one-liner for binaries:
//
//	logger.InitFromEnv()
//	logger.Info("ready")
//
// Fatal logs and exits with status 1; Panic logs and panics. Neither
// is affected by the minimum level.
package logger
