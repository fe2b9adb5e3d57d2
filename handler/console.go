package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/mwilhelm/zonelog/core"
	"github.com/mwilhelm/zonelog/formatter"
)

// ConsoleHandler writes log entries to a writer, one entry per call,
// serialized by an internal mutex. It owns no buffering or routing;
// a failed write surfaces to the caller as-is.
type ConsoleHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: stdout)
	Writer io.Writer
	// Formatter to use (default: ZoneFormatter with default policy;
	// styled when the writer is a terminal)
	Formatter formatter.Formatter
	// ForceColor styles the default formatter even when the writer
	// is not a terminal
	ForceColor bool
	// NoColor disables styling of the default formatter even on a
	// terminal
	NoColor bool
}

// NewConsoleHandler creates a new console handler. When no writer is
// given it writes to stdout, wrapped with go-colorable so ANSI
// sequences survive on Windows; styling is enabled only if stdout is
// a terminal. An explicit *os.File writer gets the same detection;
// any other writer defaults to unstyled output.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	styled := cfg.ForceColor

	if cfg.Writer == nil {
		if isTerminal(os.Stdout) {
			styled = true
		}
		cfg.Writer = colorable.NewColorableStdout()
	} else if f, ok := cfg.Writer.(*os.File); ok && isTerminal(f) {
		styled = true
		cfg.Writer = colorable.NewColorable(f)
	}
	if cfg.NoColor {
		styled = false
	}

	if cfg.Formatter == nil {
		styler := formatter.PlainStyle
		if styled {
			styler = formatter.ANSIStyle
		}
		cfg.Formatter = formatter.NewZoneFormatter(nil, styler)
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for the direct-write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Handle formats the entry and writes it to the destination. The
// mutex serializes concurrent callers so lines never interleave.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.writer)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// Close is a no-op; the handler does not own the writer.
func (h *ConsoleHandler) Close() error {
	return nil
}
