// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// impl_chain.go — the "chain" model: a deterministic simple path.
//
// Contract:
//   - Schema: n (count, n ≥ 1).
//   - Builds n nodes and the n-1 edges i—(i+1) for i in [0, n-2].
//   - Directed variant orients every edge lower→higher index.
//   - Consumes NO randomness; Sample accepts a nil Rand for this model.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges. Space: O(1) extra.
//
// Determinism:
//   - Fully deterministic: one spec ⇒ one graph, regardless of the source.

package generators

import "github.com/Paulo-21/g2io/core"

const minChainNodes = 1

var chainModel = model{
	name:        "chain",
	description: "path graph on n nodes: 0—1—...—(n-1); deterministic",
	schema: []paramSpec{
		{name: "n", kind: kindCount, min: minChainNodes},
	},
	sample: sampleChain,
}

// sampleChain builds the path. The Rand argument is deliberately unused.
func sampleChain(v []paramValue, directed bool, _ Rand) *core.Graph {
	n := v[0].count()
	g := core.New(n, core.WithDirected(directed))

	// Stable emission order: segment i-1 → i for i ascending.
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}
	return g
}
