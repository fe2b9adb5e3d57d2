package handler

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"

	"github.com/mwilhelm/zonelog/core"
	"github.com/mwilhelm/zonelog/formatter"
)

// ZapCore is a zapcore.Core that renders zap entries through a
// zonelog formatter, giving zap-based applications the fixed-offset
// bracketed line format. The zap logger name maps to the entry's
// target; structured fields are appended to the message as sorted
// " key=value" text.
type ZapCore struct {
	zapcore.LevelEnabler
	f      formatter.WriterFormatter
	w      io.Writer
	mu     *sync.Mutex
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core writing zone-formatted lines to
// w. A nil formatter means a ZoneFormatter with default policy and no
// styling.
func NewZapCore(f formatter.WriterFormatter, w io.Writer, enab zapcore.LevelEnabler) *ZapCore {
	if f == nil {
		f = formatter.NewZoneFormatter(nil, nil)
	}
	return &ZapCore{
		LevelEnabler: enab,
		f:            f,
		w:            w,
		mu:           &sync.Mutex{},
	}
}

// With returns a copy of the core carrying the additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, len(c.fields)+len(fields))
	copy(clone.fields, c.fields)
	copy(clone.fields[len(c.fields):], fields)
	return &clone
}

// Check adds the core to the checked entry when the level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry. Writes are serialized across clones made
// by With, which share the parent's mutex.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = zapLevelToCore(ent.Level)
	entry.Target = ent.LoggerName
	if ent.Caller.Defined {
		entry.ModulePath = core.PackageForPC(ent.Caller.PC)
	}
	entry.Message = c.appendFields(ent.Message, fields)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.f.FormatTo(entry, c.w)
}

// Sync flushes the underlying writer when it supports it.
func (c *ZapCore) Sync() error {
	if s, ok := c.w.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// appendFields encodes the core's accumulated fields plus the call's
// fields and appends them to the message as " key=value" text, keys
// sorted for deterministic output.
func (c *ZapCore) appendFields(msg string, fields []zapcore.Field) string {
	if len(c.fields) == 0 && len(fields) == 0 {
		return msg
	}

	enc := zapcore.NewMapObjectEncoder()
	for i := range c.fields {
		c.fields[i].AddTo(enc)
	}
	for i := range fields {
		fields[i].AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}
	return b.String()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarnLevel
	case zapcore.ErrorLevel:
		return core.ErrorLevel
	case zapcore.FatalLevel:
		return core.FatalLevel
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		return core.PanicLevel
	default:
		return core.InfoLevel
	}
}
