package logger

import (
	"os"

	"github.com/mwilhelm/zonelog/handler"
)

// DefaultLevelEnv is the environment variable InitFromEnv consults
// for the minimum severity level.
const DefaultLevelEnv = "LOG_LEVEL"

// LevelFromEnv returns the level named by the environment variable
// key, or fallback when the variable is unset or empty. Unrecognized
// names parse as info, matching ParseLevel.
func LevelFromEnv(key string, fallback Level) Level {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return ParseLevel(v)
}

// InitFromEnv installs a default logger that writes to the console at
// the minimum level named by $LOG_LEVEL, falling back to info. The
// console handler picks styling based on whether stdout is a
// terminal.
func InitFromEnv() {
	SetDefault(NewBuilder().
		WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{})).
		WithLevel(LevelFromEnv(DefaultLevelEnv, InfoLevel)).
		Build())
}
