package formatter

import (
	"github.com/mwilhelm/zonelog/core"
)

// Styler supplies the start and reset markers wrapped around styleable
// header fields (currently only the level). The marker text is emitted
// before and after the field value; the value itself is never altered.
// Implementations must be safe for concurrent use.
type Styler interface {
	// LevelStyle returns the start and reset markers for a level.
	// Either may be empty.
	LevelStyle(level core.Level) (start, reset string)
}

// PlainStyle emits no style markers. It is the default for
// non-terminal destinations.
var PlainStyle Styler = plainStyle{}

type plainStyle struct{}

func (plainStyle) LevelStyle(core.Level) (string, string) { return "", "" }

// ANSIStyle colors the level field with ANSI escape sequences, one
// color per severity. Destinations that cannot interpret escape
// sequences should use PlainStyle instead; the console handler picks
// between the two based on whether the writer is a terminal.
var ANSIStyle Styler = ansiStyle{}

const (
	ansiReset   = "\x1b[0m"
	ansiBlue    = "\x1b[34m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiRed     = "\x1b[31m"
	ansiBoldRed = "\x1b[1;31m"
)

type ansiStyle struct{}

func (ansiStyle) LevelStyle(level core.Level) (string, string) {
	switch level {
	case core.DebugLevel:
		return ansiBlue, ansiReset
	case core.InfoLevel:
		return ansiGreen, ansiReset
	case core.WarnLevel:
		return ansiYellow, ansiReset
	case core.ErrorLevel:
		return ansiRed, ansiReset
	case core.FatalLevel, core.PanicLevel:
		return ansiBoldRed, ansiReset
	default:
		return "", ""
	}
}
