// Package handler connects formatters to destinations.
//
// The Handler interface is the seam between the logger front-end and
// the output sink. ConsoleHandler is the built-in implementation: a
// synchronous, mutex-serialized writer around stdout (or any
// io.Writer) that detects terminal capability with go-isatty and
// routes output through go-colorable so ANSI styling degrades cleanly
// on Windows and in pipes.
//
// Two bridges register the zone formatter with host logging
// frameworks: SlogHandler implements log/slog's Handler interface,
// and ZapCore implements zapcore.Core. Both translate the host's
// levels and structured attributes into the zonelog event model.
//
// Handlers never retry or buffer failed writes; a sink error aborts
// the line and is returned to the caller untouched.
package handler
