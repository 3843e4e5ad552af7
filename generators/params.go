// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// params.go — parameter schemas and the token binder.
//
// Contract:
//   • A schema is a fixed, ordered list of (name, kind) slots declared by
//     each model at compile time; arity is the schema length.
//   • bindParams validates strictly in this order: arity → per-token kind
//     parse → per-token range → cross-parameter model check. The first
//     violation wins and is wrapped with the model name, the parameter
//     name, and its 1-based position.
//   • Bound values are plain data passed BY VALUE into sampling closures;
//     nothing mutates them after binding succeeds.

package generators

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// paramKind enumerates the numeric kinds a schema slot may declare.
type paramKind uint8

const (
	// kindCount is an unsigned integer (node counts, attachment counts,
	// lattice degrees). Each slot additionally declares its minimum.
	kindCount paramKind = iota

	// kindProbability is a float constrained to the closed interval [0,1].
	kindProbability
)

// kindLabel returns the human-readable kind name used in error context.
func (k paramKind) kindLabel() string {
	if k == kindProbability {
		return "probability in [0,1]"
	}
	return "unsigned integer"
}

// paramSpec is one schema slot: the parameter's name, its kind, and — for
// counts — the smallest admissible value.
type paramSpec struct {
	name string
	kind paramKind
	min  int // counts only; probabilities are always bounded by [0,1]
}

// paramValue is one bound slot. Exactly one of n/p is meaningful, selected
// by kind; the accessors below keep model code branch-free.
type paramValue struct {
	kind paramKind
	n    int
	p    float64
}

// count returns the bound unsigned-integer value of a kindCount slot.
func (v paramValue) count() int { return v.n }

// prob returns the bound probability of a kindProbability slot.
func (v paramValue) prob() float64 { return v.p }

// paramNames joins the schema slot names for arity-error context ("n,k,p").
func paramNames(schema []paramSpec) string {
	names := make([]string, len(schema))
	for i, s := range schema {
		names[i] = s.name
	}
	return strings.Join(names, paramDelimiter)
}

// bindParams validates tokens against m's schema and returns one bound
// value per slot. On failure it returns nil and exactly one of the binding
// sentinels, wrapped with full context.
//
// Complexity: O(k) time and space for k schema slots.
func bindParams(m model, tokens []string) ([]paramValue, error) {
	// Arity first: the schema length is the single source of truth.
	if len(tokens) != len(m.schema) {
		return nil, fmt.Errorf("%s: expected %d parameter(s) (%s), got %d: %w",
			m.name, len(m.schema), paramNames(m.schema), len(tokens), ErrArityMismatch)
	}

	// Parse and range-check each token against its declared slot.
	vals := make([]paramValue, len(tokens))
	for i, tok := range tokens {
		v, err := bindToken(m.schema[i], tok)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %q (position %d): %w",
				m.name, m.schema[i].name, i+1, err)
		}
		vals[i] = v
	}

	// Cross-parameter semantics (e.g. m < n, "k must be even") come last,
	// once every individual slot is known to be well-formed.
	if m.check != nil {
		if err := m.check(vals); err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
	}

	return vals, nil
}

// bindToken parses one token according to its slot and applies the slot's
// own range rule. The returned error wraps ErrParameterParse or
// ErrParameterRange and names the offending token.
func bindToken(spec paramSpec, tok string) (paramValue, error) {
	switch spec.kind {
	case kindProbability:
		p, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return paramValue{}, fmt.Errorf("token %q: expected %s: %w",
				tok, spec.kind.kindLabel(), ErrParameterParse)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return paramValue{}, fmt.Errorf("token %q: must lie in [0,1]: %w",
				tok, ErrParameterRange)
		}
		return paramValue{kind: kindProbability, p: p}, nil

	default: // kindCount
		u, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
		if err != nil {
			return paramValue{}, fmt.Errorf("token %q: expected %s: %w",
				tok, spec.kind.kindLabel(), ErrParameterParse)
		}
		n := int(u)
		if n < spec.min {
			return paramValue{}, fmt.Errorf("token %q: must be ≥ %d: %w",
				tok, spec.min, ErrParameterRange)
		}
		return paramValue{kind: kindCount, n: n}, nil
	}
}
