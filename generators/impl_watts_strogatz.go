// SPDX-License-Identifier: MIT
// Package: g2io/generators
//
// impl_watts_strogatz.go — the "watts_strogatz" model: small-world ring
// rewiring.
//
// Contract:
//   - Schema: n (count), k (count, k ≥ 2), p (probability); cross-checks
//     "k even" and k < n.
//   - Lattice: ring of n nodes, each linked to its k/2 nearest neighbors
//     per side, emitted as (i, (i+d) mod n) for i = 0..n-1, d = 1..k/2 —
//     n·k/2 base edges. The directed variant keeps the orientation
//     near→far of that ring order, before and after rewiring.
//   - Rewiring: base edges are revisited in their emission order; each
//     draws one uniform [0,1) value, and iff the value < p its FAR
//     endpoint moves to a uniformly drawn node that is neither the near
//     endpoint nor already adjacent to it (resample on collision).
//     Adjacency is tracked symmetrically in both variants, so rewiring can
//     create neither self-loops, duplicates, nor anti-parallel twins.
//   - A node already adjacent to every other node offers no valid target;
//     its edges keep their lattice endpoint instead of resampling forever
//     (reachable only when k = n-1, i.e. the lattice is complete).
//   - The edge COUNT is invariant: exactly n·k/2 edges survive rewiring.
//
// Complexity:
//   - Time: O(n·k) lattice + one draw per base edge; rewire resampling is
//     expected O(1) per edge while the graph stays sparse.
//     Space: O(n·k) for the edge list and adjacency sets.
//
// Determinism:
//   - Fixed lattice emission order and fixed rewiring traversal order;
//     same stream ⇒ same graph. With p = 0 every draw fails the
//     threshold, so the output is exactly the lattice for every source.

package generators

import "github.com/Paulo-21/g2io/core"

const minLatticeDegree = 2

var wattsStrogatzModel = model{
	name:        "watts_strogatz",
	description: "small-world graph: k-nearest-neighbor ring with probability-p edge rewiring",
	schema: []paramSpec{
		{name: "n", kind: kindCount, min: minLatticeDegree + 1},
		{name: "k", kind: kindCount, min: minLatticeDegree},
		{name: "p", kind: kindProbability},
	},
	check:  checkWattsStrogatz,
	sample: sampleWattsStrogatz,
}

// checkWattsStrogatz enforces the lattice-degree rules: k even and k < n.
func checkWattsStrogatz(v []paramValue) error {
	n, k := v[0].count(), v[1].count()
	if k%2 != 0 {
		return errRangef("k=%d must be even", k)
	}
	if k >= n {
		return errRangef("k=%d must be < n=%d", k, n)
	}
	return nil
}

// ringEdge is one base lattice edge; far is the endpoint rewiring may move.
type ringEdge struct {
	near, far int
}

func sampleWattsStrogatz(v []paramValue, directed bool, r Rand) *core.Graph {
	n, k, p := v[0].count(), v[1].count(), v[2].prob()
	half := k / 2
	g := core.New(n, core.WithDirected(directed))

	// Build the circulant lattice and its symmetric adjacency index.
	edges := make([]ringEdge, 0, n*half)
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{}, k)
	}
	for i := 0; i < n; i++ {
		for d := 1; d <= half; d++ {
			j := (i + d) % n
			edges = append(edges, ringEdge{near: i, far: j})
			adj[i][j] = struct{}{}
			adj[j][i] = struct{}{}
		}
	}

	// Rewire in the lattice's own order: one threshold draw per edge.
	for idx := range edges {
		if r.Float64() >= p {
			continue
		}
		e := &edges[idx]
		if len(adj[e.near]) >= n-1 {
			continue // near is saturated: no admissible replacement exists
		}
		// Resample until the target is neither near itself nor adjacent.
		target := r.Intn(n)
		for {
			if target != e.near {
				if _, dup := adj[e.near][target]; !dup {
					break
				}
			}
			target = r.Intn(n)
		}
		// Move the far endpoint and keep the adjacency index exact.
		delete(adj[e.near], e.far)
		delete(adj[e.far], e.near)
		adj[e.near][target] = struct{}{}
		adj[target][e.near] = struct{}{}
		e.far = target
	}

	// Emit the final edge set in base-edge order, orientation near→far.
	for _, e := range edges {
		g.AddEdge(e.near, e.far)
	}
	return g
}
