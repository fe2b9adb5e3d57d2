package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mwilhelm/zonelog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// zonelog Handler, so the zone formatter can be installed as the
// active line renderer for the standard library's slog front-end.
//
// slog attributes have no column in the line format, so they are
// appended to the message body as " key=value" text, with group names
// prefixed dot-separated. The ungrouped attribute key "target" is
// special-cased: its value becomes the entry's target instead of
// message text.
type SlogHandler struct {
	handler  Handler
	level    core.Level
	target   string
	attrText string
	group    string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it to the
// wrapped handler. The record's PC, when present, supplies the
// entry's module path.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = slogLevelToCore(record.Level)
	entry.Target = s.target
	if record.PC != 0 {
		entry.ModulePath = core.PackageForPC(record.PC)
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrText)
	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && a.Key == "target" {
			entry.Target = a.Value.String()
			return true
		}
		appendAttr(&b, s.group, a)
		return true
	})
	entry.Message = b.String()

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *s
	var b strings.Builder
	b.WriteString(s.attrText)
	for _, a := range attrs {
		if s.group == "" && a.Key == "target" {
			clone.target = a.Value.String()
			continue
		}
		appendAttr(&b, s.group, a)
	}
	clone.attrText = b.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
