// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// errors.go — sentinel errors for specification binding.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Binding code attaches context (model name, parameter name, offending
//     token, position) via fmt.Errorf("...: %w", ...).
//   • Sampling never returns errors: every failure class below is detected
//     strictly before a Generator exists.

package generators

import (
	"errors"
	"fmt"
)

// ErrUnknownModel indicates that the specification names a model that is
// not present in the registry.
// Usage: if errors.Is(err, ErrUnknownModel) { /* list Directed()/Undirected() */ }.
var ErrUnknownModel = errors.New("generators: unknown model")

// ErrArityMismatch indicates that the number of supplied parameter tokens
// differs from the model's schema length.
// Usage: if errors.Is(err, ErrArityMismatch) { /* report expected arity */ }.
var ErrArityMismatch = errors.New("generators: wrong number of parameters")

// ErrParameterParse indicates that a parameter token could not be parsed as
// its declared numeric kind (unsigned integer or probability float).
// The wrapped context names the token and the expected kind.
// Usage: if errors.Is(err, ErrParameterParse) { /* point at the token */ }.
var ErrParameterParse = errors.New("generators: malformed parameter")

// ErrParameterRange indicates that a parameter parsed cleanly but violates
// a semantic constraint: a count below its minimum, a probability outside
// [0,1], or a cross-parameter rule such as m < n or "k must be even".
// Usage: if errors.Is(err, ErrParameterRange) { /* report the constraint */ }.
var ErrParameterRange = errors.New("generators: parameter out of range")

// errRangef formats a cross-parameter constraint violation and wraps
// ErrParameterRange, preserving errors.Is semantics.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func errRangef(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrParameterRange)...)
}
