package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicyDefaults(t *testing.T) {
	p := NewPolicy()

	assert.Equal(t, layoutMillis, p.layout)
	assert.True(t, p.showTimestamp)
	assert.True(t, p.showLevel)
	assert.True(t, p.showTarget)
	assert.False(t, p.showModulePath)
	assert.Equal(t, 4, p.indent)
	assert.Equal(t, "    ", string(p.pad))
	assert.Equal(t, "\n", p.terminator)

	_, local := time.Now().Zone()
	assert.Equal(t, local, p.OffsetSeconds())
}

func TestNewPolicyPrecision(t *testing.T) {
	tests := []struct {
		name      string
		precision Precision
		layout    string
	}{
		{"default", PrecisionDefault, layoutMillis},
		{"seconds", PrecisionSeconds, layoutSeconds},
		{"millis", PrecisionMillis, layoutMillis},
		{"micros", PrecisionMicros, layoutMicros},
		// Nanosecond requests truncate to the microsecond layout.
		{"nanos", PrecisionNanos, layoutMicros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(WithPrecision(tt.precision))
			assert.Equal(t, tt.layout, p.layout)
		})
	}
}

func TestNewPolicyOffsetExplicit(t *testing.T) {
	tests := []struct {
		name   string
		offset int
	}{
		{"utc", 0},
		{"plus8h", 8 * 60 * 60},
		{"minus5h30m", -(5*60*60 + 30*60)},
		{"almost_plus24h", 24*60*60 - 1},
		{"almost_minus24h", -(24*60*60 - 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(WithUTCOffset(tt.offset))
			assert.Equal(t, tt.offset, p.OffsetSeconds())
		})
	}
}

// An out-of-range explicit offset silently falls back to the local
// offset; no error is surfaced anywhere.
func TestNewPolicyOffsetInvalidFallsBackToLocal(t *testing.T) {
	_, local := time.Now().Zone()

	for _, offset := range []int{24 * 60 * 60, -(24 * 60 * 60), 100 * 60 * 60, -500000} {
		p := NewPolicy(WithUTCOffset(offset))
		assert.Equal(t, local, p.OffsetSeconds(), "offset %d", offset)
	}
}

func TestNewPolicyOffsetResolvedOnce(t *testing.T) {
	restore := timeNow
	defer func() { timeNow = restore }()

	// Construct under a zone with a +02:00 offset, then move the
	// clock; the policy must keep the offset captured at
	// construction time.
	construction := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	timeNow = func() time.Time { return construction }

	p := NewPolicy()
	require.Equal(t, 2*60*60, p.OffsetSeconds())

	timeNow = func() time.Time {
		return time.Date(2024, 12, 1, 12, 0, 0, 0, time.FixedZone("CET", 1*60*60))
	}
	assert.Equal(t, 2*60*60, p.OffsetSeconds())
}

func TestNewPolicyIndent(t *testing.T) {
	p := NewPolicy(WithIndent(2))
	assert.Equal(t, 2, p.indent)
	assert.Equal(t, "  ", string(p.pad))

	p = NewPolicy(WithIndent(0))
	assert.Equal(t, 0, p.indent)
	assert.Empty(t, p.pad)

	p = NewPolicy(WithoutIndent())
	assert.Equal(t, -1, p.indent)
	assert.Nil(t, p.pad)

	// Negative widths mean disabled, same as WithoutIndent.
	p = NewPolicy(WithIndent(-7))
	assert.Negative(t, p.indent)
	assert.Nil(t, p.pad)
}

func TestNewPolicyToggles(t *testing.T) {
	p := NewPolicy(
		WithTimestamp(false),
		WithLevel(false),
		WithTarget(false),
		WithModulePath(true),
		WithLineTerminator("\r\n"),
	)

	assert.False(t, p.showTimestamp)
	assert.False(t, p.showLevel)
	assert.False(t, p.showTarget)
	assert.True(t, p.showModulePath)
	assert.Equal(t, "\r\n", p.LineTerminator())
}
