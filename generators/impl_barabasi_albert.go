// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// impl_barabasi_albert.go — the "barabasi_albert" model: preferential
// attachment growth.
//
// Contract:
//   - Schema: n (count), m (count, m ≥ 1); cross-check 1 ≤ m < n.
//   - Seed: the m+1 nodes 0..m form a clique (convention documented in
//     DESIGN.md; clique edges are emitted lower→higher).
//   - Growth: for each new node w = m+1..n-1, pick m DISTINCT existing
//     nodes with probability proportional to their degree and connect w to
//     each; the directed variant orients growth edges w→target.
//   - Degree freezing: the selection weights for w's whole step are the
//     degrees as of the START of the step. Edges added within the step
//     enter the weighting only once the step completes.
//   - Every node past the seed clique therefore attaches exactly m edges.
//
// Complexity:
//   - Time: O(m²) clique + expected O(n·m) growth draws (rejection only
//     de-duplicates within a step; m distinct targets always exist since
//     w ≥ m+1 nodes precede w). Space: O(E) for the weighted pool.
//
// Determinism:
//   - Pool layout and draw order are fixed, so one stream ⇒ one graph.

package generators

import "github.com/Paulo-21/g2io/core"

const minAttachments = 1

var barabasiAlbertModel = model{
	name:        "barabasi_albert",
	description: "preferential attachment: K_{m+1} seed clique, then m degree-biased edges per new node",
	schema: []paramSpec{
		{name: "n", kind: kindCount, min: minAttachments + 1},
		{name: "m", kind: kindCount, min: minAttachments},
	},
	check:  checkBarabasiAlbert,
	sample: sampleBarabasiAlbert,
}

// checkBarabasiAlbert enforces the cross-parameter rule m < n.
func checkBarabasiAlbert(v []paramValue) error {
	n, m := v[0].count(), v[1].count()
	if m >= n {
		return errRangef("m=%d must be < n=%d", m, n)
	}
	return nil
}

func sampleBarabasiAlbert(v []paramValue, directed bool, r Rand) *core.Graph {
	n, m := v[0].count(), v[1].count()
	g := core.New(n, core.WithDirected(directed))

	// pool lists each node once per incident edge endpoint, so a uniform
	// index into it is a degree-proportional draw. Appending a step's new
	// endpoints only AFTER the step freezes the step's weights.
	pool := make([]int, 0, 2*(m*(m+1)/2+(n-m-1)*m))

	// Seed clique over nodes 0..m, pairs emitted lower→higher.
	for i := 0; i <= m; i++ {
		for j := i + 1; j <= m; j++ {
			g.AddEdge(i, j)
			pool = append(pool, i, j)
		}
	}

	// Growth: attach each new node w to m distinct degree-weighted targets.
	targets := make([]int, 0, m)
	for w := m + 1; w < n; w++ {
		targets = targets[:0]
		for len(targets) < m {
			cand := pool[r.Intn(len(pool))]
			if containsNode(targets, cand) {
				continue // duplicate within this step: redraw
			}
			targets = append(targets, cand)
		}
		for _, u := range targets {
			g.AddEdge(w, u)
		}
		// Publish the step's endpoints for subsequent steps only.
		for _, u := range targets {
			pool = append(pool, w, u)
		}
	}
	return g
}

// containsNode reports whether idx already occurs in the (short) target
// slice; linear scan beats a map for m this small.
func containsNode(nodes []int, idx int) bool {
	for _, u := range nodes {
		if u == idx {
			return true
		}
	}
	return false
}
