// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// impl_erdos_renyi.go — the "erdos_renyi" model: G(n,p).
//
// Contract:
//   - Schema: n (count, n ≥ 1), p (probability in [0,1]).
//   - Builds n nodes; for every pair of DISTINCT nodes draws one uniform
//     [0,1) value and inserts the edge iff the value < p. Self-pairs are
//     excluded by construction in both variants.
//   - Undirected: unordered pairs {i,j}, i < j. Directed: ordered pairs
//     (i,j), i ≠ j.
//   - Exactly one draw per admissible pair, including for p = 0 and p = 1:
//     the trial order is part of the contract, so the mapping from random
//     stream to graph is fixed.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i ascending, then j ascending (undirected uses
//     j > i). Same stream ⇒ same edge set.

package generators

import "github.com/Paulo-21/g2io/core"

const minErdosRenyiNodes = 1

var erdosRenyiModel = model{
	name:        "erdos_renyi",
	description: "G(n,p): each distinct pair carries an edge independently with probability p",
	schema: []paramSpec{
		{name: "n", kind: kindCount, min: minErdosRenyiNodes},
		{name: "p", kind: kindProbability},
	},
	sample: sampleErdosRenyi,
}

func sampleErdosRenyi(v []paramValue, directed bool, r Rand) *core.Graph {
	n, p := v[0].count(), v[1].prob()
	g := core.New(n, core.WithDirected(directed))

	if directed {
		// Ordered pairs (i,j), i ≠ j, in lexicographic order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if r.Float64() < p {
					g.AddEdge(i, j)
				}
			}
		}
		return g
	}

	// Unordered pairs {i,j} with i < j, in lexicographic order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}
