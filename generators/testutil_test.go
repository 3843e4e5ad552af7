// Package generators_test holds black-box tests for the public generator
// API, plus small structural helpers (edge keying, connectivity) shared by
// the per-model tests.
package generators_test

import (
	"math/rand"

	"github.com/Paulo-21/g2io/core"
)

// edgeKey identifies an edge by its endpoints as inserted.
type edgeKey struct{ U, V int }

// edgeSet collects the edges of g into a set keyed by inserted endpoints.
func edgeSet(g *core.Graph) map[edgeKey]bool {
	m := make(map[edgeKey]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = true
	}
	return m
}

// sameEdgeList reports whether two graphs inserted identical edge lists in
// identical order.
func sameEdgeList(a, b *core.Graph) bool {
	ae, be := a.Edges(), b.Edges()
	if len(ae) != len(be) {
		return false
	}
	for i := range ae {
		if ae[i] != be[i] {
			return false
		}
	}
	return true
}

// isConnected runs a BFS over g treating every edge as bidirectional and
// reports whether all nodes are reachable from node 0.
func isConnected(g *core.Graph) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}
	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	visited := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range adj[v] {
			if !seen[u] {
				seen[u] = true
				visited++
				queue = append(queue, u)
			}
		}
	}
	return visited == n
}

// newRand returns a seeded source for reproducible stochastic tests.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
