package formatter

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/mwilhelm/zonelog/core"
)

// timeNow is a variable to allow overriding time.Now in tests
var timeNow = time.Now

// ZoneFormatter renders log entries as single bracketed-header lines
// with timestamps in a fixed UTC offset:
//
//	[2024-01-01 12:00:00.000 +08:00 INFO  net] connecting
//	    retry 1
//
// The header holds the enabled fields (timestamp, level, module path,
// target) separated by single spaces; continuation lines of multi-line
// messages are indented to sit under the header. Timestamps are taken
// at render time, not event creation time.
type ZoneFormatter struct {
	policy *Policy
	styler Styler
}

// NewZoneFormatter creates a zone formatter bound to the given policy.
// A nil policy means NewPolicy() defaults; a nil styler means
// PlainStyle.
func NewZoneFormatter(policy *Policy, styler Styler) *ZoneFormatter {
	if policy == nil {
		policy = NewPolicy()
	}
	if styler == nil {
		styler = PlainStyle
	}
	return &ZoneFormatter{policy: policy, styler: styler}
}

// Format formats an entry as text
func (f *ZoneFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatTo(entry, buf); err != nil {
		return nil, err
	}

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer.
// Any write error aborts the remaining steps immediately; a partially
// written line is left as-is.
func (f *ZoneFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	r := lineRenderer{policy: f.policy, styler: f.styler, w: w}
	return r.render(entry)
}

// pre-padded level names for the fixed 5-column level field
var paddedLevels = [...]string{
	core.DebugLevel: "DEBUG",
	core.InfoLevel:  "INFO ",
	core.WarnLevel:  "WARN ",
	core.ErrorLevel: "ERROR",
	core.FatalLevel: "FATAL",
	core.PanicLevel: "PANIC",
}

// lineRenderer renders exactly one entry and is then discarded. The
// headerStarted flag tracks whether a header field has been written
// yet so brackets and separators land in the right places. Renderers
// are never shared or reused across events.
type lineRenderer struct {
	policy        *Policy
	styler        Styler
	w             io.Writer
	headerStarted bool
}

func (r *lineRenderer) render(e *core.Entry) error {
	if err := r.writeTimestamp(); err != nil {
		return err
	}
	if err := r.writeLevel(e); err != nil {
		return err
	}
	if err := r.writeModulePath(e); err != nil {
		return err
	}
	if err := r.writeTarget(e); err != nil {
		return err
	}
	if err := r.finishHeader(); err != nil {
		return err
	}
	if err := r.writeBody(e); err != nil {
		return err
	}
	return r.writeString(r.policy.terminator)
}

func (r *lineRenderer) writeString(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// writeHeaderValue writes one header field: the first field opens the
// bracket, every later field is preceded by a single space. Style
// markers, when present, wrap the value without altering it.
func (r *lineRenderer) writeHeaderValue(value, styleStart, styleReset string) error {
	if !r.headerStarted {
		r.headerStarted = true
		if err := r.writeString("["); err != nil {
			return err
		}
	} else {
		if err := r.writeString(" "); err != nil {
			return err
		}
	}

	if styleStart != "" {
		if err := r.writeString(styleStart); err != nil {
			return err
		}
	}
	if err := r.writeString(value); err != nil {
		return err
	}
	if styleReset != "" {
		return r.writeString(styleReset)
	}
	return nil
}

func (r *lineRenderer) writeTimestamp() error {
	if !r.policy.showTimestamp {
		return nil
	}
	ts := timeNow().In(r.policy.loc).Format(r.policy.layout)
	return r.writeHeaderValue(ts, "", "")
}

func (r *lineRenderer) writeLevel(e *core.Entry) error {
	if !r.policy.showLevel {
		return nil
	}

	name := ""
	if int(e.Level) >= 0 && int(e.Level) < len(paddedLevels) {
		name = paddedLevels[e.Level]
	} else {
		name = fmt.Sprintf("%-5s", e.Level.String())
	}

	start, reset := r.styler.LevelStyle(e.Level)
	return r.writeHeaderValue(name, start, reset)
}

func (r *lineRenderer) writeModulePath(e *core.Entry) error {
	if !r.policy.showModulePath || e.ModulePath == "" {
		return nil
	}
	return r.writeHeaderValue(e.ModulePath, "", "")
}

func (r *lineRenderer) writeTarget(e *core.Entry) error {
	if !r.policy.showTarget || e.Target == "" {
		return nil
	}
	return r.writeHeaderValue(e.Target, "", "")
}

// finishHeader closes the bracket if any field was written. With no
// header fields there is no empty bracket pair and no separator.
func (r *lineRenderer) finishHeader() error {
	if !r.headerStarted {
		return nil
	}
	return r.writeString("] ")
}

func (r *lineRenderer) writeBody(e *core.Entry) error {
	// Fast path for no indentation
	if r.policy.indent < 0 {
		return r.writeString(e.Message)
	}

	iw := indentWriter{
		w:          r.w,
		terminator: r.policy.terminator,
		pad:        r.policy.pad,
	}
	_, err := io.WriteString(&iw, e.Message)
	return err
}

// indentWriter is a streaming decorator over the destination writer
// that replaces each '\n' in the body with the policy's line
// terminator followed by the indent padding. It never buffers the
// message; chunks are split on line-break boundaries as they pass
// through.
type indentWriter struct {
	w          io.Writer
	terminator string
	pad        []byte
}

func (iw *indentWriter) Write(p []byte) (int, error) {
	total := len(p)
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			break
		}
		if _, err := iw.w.Write(p[:i]); err != nil {
			return 0, err
		}
		if _, err := io.WriteString(iw.w, iw.terminator); err != nil {
			return 0, err
		}
		if _, err := iw.w.Write(iw.pad); err != nil {
			return 0, err
		}
		p = p[i+1:]
	}
	if len(p) > 0 {
		if _, err := iw.w.Write(p); err != nil {
			return 0, err
		}
	}
	return total, nil
}
