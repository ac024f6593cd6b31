// SPDX-License-Identifier: MIT

// Package vector: functional configuration for the text codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - GatherOptions, shared with the matrix package.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Defaults reproduce the wire contract exactly: every element is
//     followed by a single space, every matrix row by a line feed.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package vector

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator terminates every element written by Fprint.
	DefaultSeparator = " "

	// DefaultRowTerminator terminates every row written by matrix.Fprint.
	DefaultRowTerminator = "\n"

	// DefaultVerb is the fmt verb applied to every element.
	DefaultVerb = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSeparatorInvalid     = "vector: WithSeparator: separator must be non-empty whitespace"
	panicRowTerminatorInvalid = "vector: WithRowTerminator: terminator must be non-empty whitespace"
	panicVerbInvalid          = "vector: WithVerb: verb must be one of %v %d %g %e %f"
)

// allowedVerbs lists the element verbs Fscan can read back when they match
// the element kind: %v for every Number, %d for integers, %e %f %g for
// floats and complex numbers.
var allowedVerbs = map[string]struct{}{
	"%v": {}, "%d": {}, "%g": {}, "%e": {}, "%f": {},
}

// ---------- Public option type (functional) ----------

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective codec configuration after applying Option
// setters. Fields are unexported; read them through the accessors.
type Options struct {
	separator     string // DefaultSeparator
	rowTerminator string // DefaultRowTerminator
	verb          string // DefaultVerb
}

// Separator returns the per-element terminator.
func (o Options) Separator() string { return o.separator }

// RowTerminator returns the per-row terminator used by matrices.
func (o Options) RowTerminator() string { return o.rowTerminator }

// Verb returns the fmt verb used for each element.
func (o Options) Verb() string { return o.verb }

// WithSeparator sets the string written after every element.
// Implementation:
//   - Stage 1: validate sep is non-empty and whitespace only.
//   - Stage 2: return a setter.
//
// Errors:
//   - Panics when sep could not be read back by Fscan.
func WithSeparator(sep string) Option {
	if !isWhitespace(sep) {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.separator = sep }
}

// WithRowTerminator sets the string written after every matrix row.
// Panics when term is empty or contains non-whitespace.
func WithRowTerminator(term string) Option {
	if !isWhitespace(term) {
		panic(panicRowTerminatorInvalid)
	}

	return func(o *Options) { o.rowTerminator = term }
}

// WithVerb sets the fmt verb applied to each element (e.g. "%g").
// Verbs outside allowedVerbs panic. The verb is not checked against T:
// %d on a float (or %g on an integer) prints fmt's %!verb marker, which
// Fscan rejects, so pick a verb that matches the element kind.
func WithVerb(verb string) Option {
	if _, ok := allowedVerbs[verb]; !ok {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// GatherOptions applies user setters over the defaults, in order
// (last writer wins), and returns the effective configuration.
// Complexity: O(len(user)).
func GatherOptions(user ...Option) Options {
	o := Options{
		separator:     DefaultSeparator,
		rowTerminator: DefaultRowTerminator,
		verb:          DefaultVerb,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isWhitespace reports whether s is non-empty and made of whitespace only.
func isWhitespace(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}
