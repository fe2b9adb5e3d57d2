package logger

import (
	"fmt"
	"os"

	"github.com/mwilhelm/zonelog/core"
	"github.com/mwilhelm/zonelog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable)
type Logger struct {
	handler    handler.Handler
	level      core.Level
	target     string
	modulePath bool
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler    handler.Handler
	level      core.Level
	target     string
	modulePath bool
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for CallerPackage
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum level to emit
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTarget sets the target string attached to every event
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithModulePath enables resolving the caller's package path for
// every event. Off by default; resolving costs a runtime.Caller per
// log call.
func (b *Builder) WithModulePath(enabled bool) *Builder {
	b.modulePath = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:    b.handler,
		level:      b.level,
		target:     b.target,
		modulePath: b.modulePath,
		callerSkip: b.callerSkip,
	}
}

// WithTarget creates a new Logger with the given target (immutable
// operation; the receiver is unchanged).
func (l *Logger) WithTarget(target string) *Logger {
	clone := *l
	clone.target = target
	return &clone
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	if level < l.level {
		return
	}
	l.log(level, msg)
}

// log is the internal logging method; every exported entry point is
// exactly one frame above it so callerSkip stays accurate.
func (l *Logger) log(level core.Level, msg string) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Target = l.target
	entry.Message = msg
	if l.modulePath {
		entry.ModulePath = core.CallerPackage(l.callerSkip)
	}

	// The handler decides what a failed write means; the logger
	// drops the event either way.
	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(msg string) {
	l.log(core.FatalLevel, msg)
	l.Close()
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string) {
	l.log(core.PanicLevel, msg)
	panic(msg)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Close closes the underlying handler
func (l *Logger) Close() error {
	if l.handler == nil {
		return nil
	}
	return l.handler.Close()
}
