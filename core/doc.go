// Package core defines the shared types used across the zonelog framework.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log event: a severity, an optional target
// string, an optional module path, and a free-form (possibly
// multi-line) message.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must return
// it with PutEntry once the handler has consumed it. Entries must not
// be reused or shared across events; the formatter assumes exclusive
// ownership for the duration of a single render.
package core
