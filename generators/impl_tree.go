// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// impl_tree.go — the "tree" model: a random recursive tree.
//
// Contract:
//   - Schema: n (count, n ≥ 1).
//   - For each node v = 1..n-1, the parent is drawn uniformly from the
//     already-present nodes [0, v); the edge is parent→v when directed,
//     {parent, v} otherwise.
//   - This is the random RECURSIVE tree distribution (attachment in
//     arrival order), which is NOT the uniform distribution over all
//     labeled trees; callers sampling spanning trees want a different
//     model.
//   - The result is always connected, acyclic, with exactly n-1 edges.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) draws and edges. Space: O(1) extra.
//
// Determinism:
//   - One Intn draw per node in index order; same stream ⇒ same tree.

package generators

import "github.com/Paulo-21/g2io/core"

const minTreeNodes = 1

var treeModel = model{
	name:        "tree",
	description: "random recursive tree: node v attaches to a uniform parent among 0..v-1",
	schema: []paramSpec{
		{name: "n", kind: kindCount, min: minTreeNodes},
	},
	sample: sampleTree,
}

func sampleTree(v []paramValue, directed bool, r Rand) *core.Graph {
	n := v[0].count()
	g := core.New(n, core.WithDirected(directed))

	// Node 0 is the root; every later node draws its parent uniformly
	// from the prefix that already exists.
	for child := 1; child < n; child++ {
		parent := r.Intn(child)
		g.AddEdge(parent, child)
	}
	return g
}
