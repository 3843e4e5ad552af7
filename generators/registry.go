// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// registry.go — the fixed model registry and the public entry points.
//
// Design contract (strict):
//   • The registry is a compile-time fixed, ordered list of model values;
//     no runtime registration, no globals beyond the immutable table.
//   • Directed and undirected dispatch cover the SAME five models:
//     direction changes only the edge-insertion policy inside a sampler,
//     never model availability. Model aliases are unique, so lookup order
//     cannot affect correctness.
//   • Dispatch order: parse → exact-name lookup → bind → capsule. All
//     failure happens here; a returned Generator can always Sample.

package generators

import (
	"fmt"

	"github.com/Paulo-21/g2io/core"
)

// model describes one generative procedure behind a uniform capability:
// a stable alias, a parameter schema, an optional cross-parameter check,
// and the sampling function shared by both directions.
type model struct {
	name        string
	description string
	schema      []paramSpec

	// check enforces cross-parameter constraints after per-slot binding;
	// nil when the schema's slot rules say everything.
	check func(v []paramValue) error

	// sample draws one graph; v is bound and immutable by the time any
	// capsule can invoke this.
	sample func(v []paramValue, directed bool, r Rand) *core.Graph
}

// registry is the closed set of models, in stable listing order. Both
// dispatch directions read this same table.
var registry = []model{
	chainModel,
	erdosRenyiModel,
	barabasiAlbertModel,
	treeModel,
	wattsStrogatzModel,
}

// lookupModel resolves a model alias by exact match.
func lookupModel(name string) (model, bool) {
	for _, m := range registry {
		if m.name == name {
			return m, true
		}
	}
	return model{}, false
}

// describeAll renders the registry as a fresh Descriptor slice.
func describeAll() []Descriptor {
	ds := make([]Descriptor, len(registry))
	for i, m := range registry {
		ds[i] = Descriptor{
			Name:        m.name,
			Params:      paramNames(m.schema),
			Description: m.description,
		}
	}
	return ds
}

// Directed lists the descriptors of every model available to NewDirected,
// in stable registry order. The slice is freshly allocated per call.
func Directed() []Descriptor { return describeAll() }

// Undirected lists the descriptors of every model available to
// NewUndirected, in stable registry order. The set of models is identical
// to Directed(): direction affects edge insertion, not availability.
func Undirected() []Descriptor { return describeAll() }

// NewDirected builds a directed-graph Generator from a specification
// string such as "barabasi_albert/100,5".
//
// Errors: ErrUnknownModel, ErrArityMismatch, ErrParameterParse, or
// ErrParameterRange, each wrapped with the model name and offending token.
// No randomness is consumed and no Generator exists unless binding fully
// succeeds.
func NewDirected(spec string) (Generator, error) {
	return newGenerator(spec, true)
}

// NewUndirected builds an undirected-graph Generator from a specification
// string such as "watts_strogatz/30,4,0.1". Error contract as NewDirected.
func NewUndirected(spec string) (Generator, error) {
	return newGenerator(spec, false)
}

// newGenerator implements dispatch for both directions.
//
// Complexity: O(len(spec) + k) for k parameters; independent of n.
func newGenerator(spec string, directed bool) (Generator, error) {
	// Split the raw string; the parser never fails.
	name, tokens := parseSpec(spec)

	// Exact-name lookup in the fixed registry.
	m, ok := lookupModel(name)
	if !ok {
		return Generator{}, fmt.Errorf("generators: model %q: %w", name, ErrUnknownModel)
	}

	// Bind tokens against the model's schema; first violation wins.
	vals, err := bindParams(m, tokens)
	if err != nil {
		return Generator{}, fmt.Errorf("generators: %w", err)
	}

	// Close over the bound values: repeated Sample calls never re-validate.
	sample := m.sample
	return Generator{
		name:     m.name,
		directed: directed,
		sample:   func(r Rand) *core.Graph { return sample(vals, directed, r) },
	}, nil
}
