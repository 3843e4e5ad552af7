// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// types.go — the Rand capability, the Generator capsule, and Descriptor.
//
// Design contract (strict):
//   • Rand is the ONLY randomness capability this package consumes; it is
//     never implemented here. *math/rand.Rand satisfies it.
//   • A Generator is an immutable value: name, direction, and a sampling
//     closure over parameters that were validated at construction time.
//     Sample never fails and keeps no state between calls.
//   • Determinism: one Rand stream + one Generator ⇒ one graph. Feeding
//     independent streams to the same Generator yields independent draws.

package generators

import "github.com/Paulo-21/g2io/core"

// Rand is the pseudorandom capability required to drive sampling.
//
// Intn must return a uniform int in [0, n) for n > 0; Float64 must return a
// uniform float64 in [0, 1). *math/rand.Rand implements Rand. A Rand is
// caller-owned: one Sample call requires exclusive access to it for its
// duration, so concurrent samples must either serialize on one source or
// use independent sources.
type Rand interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) int

	// Float64 returns a uniform random float64 in [0, 1).
	Float64() float64
}

// Generator is a bound, reusable sampling procedure for one model.
//
// Generators are produced by NewDirected and NewUndirected; the zero value
// is not usable. A Generator carries no mutable state: every Sample call is
// an independent draw, and the value may be shared freely across goroutines
// provided each call supplies its own (or a serialized) Rand.
type Generator struct {
	// name is the model alias this generator was built from.
	name string

	// directed records the edge-insertion policy of produced graphs.
	directed bool

	// sample closes over the bound parameters; set during dispatch.
	sample func(r Rand) *core.Graph
}

// Name returns the model alias, e.g. "watts_strogatz".
func (g Generator) Name() string { return g.name }

// Directed reports whether produced graphs use directed edges.
func (g Generator) Directed() bool { return g.directed }

// Sample draws one graph from the bound model, consuming randomness from r.
//
// Sample cannot fail: all validation happened before this Generator was
// constructed. Deterministic models (chain) ignore r entirely and accept a
// nil Rand; stochastic models require a non-nil r.
//
// Complexity: bounded by a low-order polynomial in n (quadratic for
// erdos_renyi's pair enumeration); see the per-model files.
func (g Generator) Sample(r Rand) *core.Graph { return g.sample(r) }

// Descriptor summarizes one registry entry for listing purposes.
type Descriptor struct {
	// Name is the stable model alias used in specification strings.
	Name string

	// Params is the comma-joined list of schema slot names, e.g. "n,k,p".
	Params string

	// Description is a one-line human-readable summary of the model.
	Description string
}
