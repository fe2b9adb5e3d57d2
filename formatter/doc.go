// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// The ZoneFormatter renders one structured text line per entry: a
// bracketed header of enabled fields (timestamp in a fixed UTC
// offset, level, module path, target) followed by the message body,
// with continuation lines of multi-line messages re-indented to sit
// under the header. Its behavior is driven entirely by a Policy,
// resolved once by NewPolicy and immutable afterwards, so a single
// formatter is safe to use from concurrent goroutines.
//
// Two quirks of the policy are deliberate and documented rather than
// fixed: an invalid explicit UTC offset silently falls back to the
// local offset instead of returning an error, and nanosecond
// precision renders the same six fractional digits as microsecond
// precision.
//
// Styling is an injected Styler strategy, not a hard-coded escape
// sequence, so the formatter works unchanged against destinations
// with no ANSI support (see PlainStyle and ANSIStyle).
//
// Buffers larger than 64 KiB are not returned to the internal pool to
// prevent a single large log line from permanently inflating memory
// usage.
package formatter
