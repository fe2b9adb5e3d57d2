package formatter

import (
	"bytes"
	"time"
)

// Timestamp layouts selected by Precision. All of them carry the
// numeric UTC offset suffix (e.g. "+08:00").
const (
	layoutSeconds = "2006-01-02 15:04:05 -07:00"
	layoutMillis  = "2006-01-02 15:04:05.000 -07:00"
	layoutMicros  = "2006-01-02 15:04:05.000000 -07:00"
)

// Precision selects the fractional-second resolution of rendered
// timestamps.
type Precision uint8

const (
	// PrecisionDefault renders millisecond timestamps.
	PrecisionDefault Precision = iota
	// PrecisionSeconds renders timestamps without a fractional part.
	PrecisionSeconds
	// PrecisionMillis renders three fractional digits.
	PrecisionMillis
	// PrecisionMicros renders six fractional digits.
	PrecisionMicros
	// PrecisionNanos renders six fractional digits. Nanosecond
	// requests are truncated to microseconds; callers that need true
	// nanosecond resolution should not rely on this formatter.
	PrecisionNanos
)

// layout returns the timestamp layout for the precision.
func (p Precision) layout() string {
	switch p {
	case PrecisionSeconds:
		return layoutSeconds
	case PrecisionMicros, PrecisionNanos:
		return layoutMicros
	default:
		return layoutMillis
	}
}

// maxOffsetSeconds bounds valid UTC offsets to strictly less than
// 24 hours either side of UTC.
const maxOffsetSeconds = 24 * 60 * 60

// Policy holds the immutable per-formatter rendering configuration:
// timestamp layout and fixed UTC offset, header field toggles, body
// indentation, and the line terminator. A Policy is resolved once by
// NewPolicy and never mutated afterwards, so it is safe to share
// across concurrent renders without synchronization.
type Policy struct {
	layout        string
	loc           *time.Location
	offsetSeconds int

	showTimestamp  bool
	showLevel      bool
	showTarget     bool
	showModulePath bool

	// indent is the continuation-line indent width; negative
	// disables re-indentation entirely. pad holds the precomputed
	// indent spaces.
	indent     int
	pad        []byte
	terminator string
}

// PolicyOption configures a Policy during construction.
type PolicyOption func(*policyConfig)

type policyConfig struct {
	offsetSeconds  *int
	precision      Precision
	showTimestamp  bool
	showLevel      bool
	showTarget     bool
	showModulePath bool
	indent         int
	terminator     string
}

// WithUTCOffset fixes the UTC offset used for timestamps, in seconds
// east of UTC. Values outside the valid offset range (strictly within
// ±24h) are silently replaced by the local offset, exactly as if the
// option had not been given; no error is reported. Without this
// option the process's current local offset is captured once at
// construction time, so the policy does not follow DST transitions
// afterwards.
func WithUTCOffset(seconds int) PolicyOption {
	return func(c *policyConfig) {
		v := seconds
		c.offsetSeconds = &v
	}
}

// WithPrecision selects the fractional-second resolution of rendered
// timestamps.
func WithPrecision(p Precision) PolicyOption {
	return func(c *policyConfig) { c.precision = p }
}

// WithTimestamp toggles the timestamp header field (default on).
func WithTimestamp(show bool) PolicyOption {
	return func(c *policyConfig) { c.showTimestamp = show }
}

// WithLevel toggles the level header field (default on).
func WithLevel(show bool) PolicyOption {
	return func(c *policyConfig) { c.showLevel = show }
}

// WithTarget toggles the target header field (default on).
func WithTarget(show bool) PolicyOption {
	return func(c *policyConfig) { c.showTarget = show }
}

// WithModulePath toggles the module path header field (default off).
func WithModulePath(show bool) PolicyOption {
	return func(c *policyConfig) { c.showModulePath = show }
}

// WithIndent sets the number of spaces used to indent continuation
// lines of multi-line messages (default 4). A negative width disables
// re-indentation; the body is then written verbatim.
func WithIndent(width int) PolicyOption {
	return func(c *policyConfig) { c.indent = width }
}

// WithoutIndent disables continuation-line indentation; message
// bodies are written verbatim.
func WithoutIndent() PolicyOption {
	return func(c *policyConfig) { c.indent = -1 }
}

// WithLineTerminator sets the string appended after the message body
// and inserted before each indented continuation line (default "\n").
func WithLineTerminator(s string) PolicyOption {
	return func(c *policyConfig) { c.terminator = s }
}

// NewPolicy resolves a Policy from the given options. Defaults:
// millisecond precision, local UTC offset, timestamp, level and
// target shown, module path hidden, indent width 4, "\n" terminator.
func NewPolicy(opts ...PolicyOption) *Policy {
	cfg := policyConfig{
		showTimestamp: true,
		showLevel:     true,
		showTarget:    true,
		indent:        4,
		terminator:    "\n",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	offset := resolveOffset(cfg.offsetSeconds)

	var pad []byte
	if cfg.indent >= 0 {
		pad = bytes.Repeat([]byte(" "), cfg.indent)
	}

	return &Policy{
		layout:         cfg.precision.layout(),
		loc:            time.FixedZone("", offset),
		offsetSeconds:  offset,
		showTimestamp:  cfg.showTimestamp,
		showLevel:      cfg.showLevel,
		showTarget:     cfg.showTarget,
		showModulePath: cfg.showModulePath,
		indent:         cfg.indent,
		pad:            pad,
		terminator:     cfg.terminator,
	}
}

// resolveOffset picks the fixed offset for a policy. An absent or
// out-of-range explicit offset degrades silently to the current local
// offset; no error is surfaced. Intentional, see WithUTCOffset.
func resolveOffset(explicit *int) int {
	if explicit != nil && *explicit > -maxOffsetSeconds && *explicit < maxOffsetSeconds {
		return *explicit
	}
	_, local := timeNow().Zone()
	return local
}

// OffsetSeconds returns the fixed UTC offset the policy renders
// timestamps in, in seconds east of UTC.
func (p *Policy) OffsetSeconds() int {
	return p.offsetSeconds
}

// LineTerminator returns the policy's line terminator.
func (p *Policy) LineTerminator() string {
	return p.terminator
}
