// Package core provides the index-addressed Graph type, its construction
// options, and read-only adjacency queries.
//
// This file declares Edge, Graph, Option, the New constructor, and all
// Graph methods.
package core

import (
	"fmt"
	"sort"
)

// Edge records one inserted connection. For a directed graph the edge is
// oriented From→To; for an undirected graph the pair is stored exactly as
// the caller passed it, and adjacency treats it symmetrically.
type Edge struct {
	// From is the source (or first) endpoint index.
	From int

	// To is the destination (or second) endpoint index.
	To int
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected selects directed (true) or undirected (false) edge semantics.
// The default is undirected.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a simple graph over dense integer node indices.
//
// The zero value is not usable; construct with New.
type Graph struct {
	// directed selects the adjacency semantics of AddEdge.
	directed bool

	// adj holds, per node, the set of adjacent node indices. Directed
	// graphs store out-neighbors only; undirected graphs store both
	// endpoints symmetrically.
	adj []map[int]struct{}

	// deg counts edge endpoints incident to each node, independent of
	// orientation (a directed edge contributes to both its endpoints).
	deg []int

	// edges replays insertions in order; see Edges.
	edges []Edge
}

// New returns a Graph pre-allocated with n nodes (indices 0..n-1) and no
// edges. n must be ≥ 0; a negative n panics.
//
// Complexity: O(n) time and space.
func New(n int, opts ...Option) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("core: New(n=%d): node count must be ≥ 0", n))
	}
	g := &Graph{
		adj: make([]map[int]struct{}, n),
		deg: make([]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
	}
	return g
}

// Directed reports whether edges are interpreted as one-way.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of AddEdge insertions. An undirected edge
// counts once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddNode appends one node and returns its index.
//
// Complexity: amortized O(1).
func (g *Graph) AddNode() int {
	g.adj = append(g.adj, make(map[int]struct{}))
	g.deg = append(g.deg, 0)
	return len(g.adj) - 1
}

// AddEdge inserts the edge (u, v): u→v when the graph is directed, {u, v}
// otherwise. Both indices must be valid existing nodes and must differ;
// violations panic (programmer error, per the package contract). Parallel
// insertions of the same pair are stored as given — generators in this
// module never emit them, and HasEdge lets callers guard when composing by
// hand.
//
// Complexity: O(1) expected.
func (g *Graph) AddEdge(u, v int) {
	g.checkIndex("AddEdge", u)
	g.checkIndex("AddEdge", v)
	if u == v {
		panic(fmt.Sprintf("core: AddEdge(%d, %d): self-loops are not supported", u, v))
	}
	g.adj[u][v] = struct{}{}
	if !g.directed {
		g.adj[v][u] = struct{}{}
	}
	g.deg[u]++
	g.deg[v]++
	g.edges = append(g.edges, Edge{From: u, To: v})
}

// HasEdge reports whether an edge connects u and v: u→v for directed
// graphs, either orientation for undirected ones. Panics on invalid
// indices.
//
// Complexity: O(1) expected.
func (g *Graph) HasEdge(u, v int) bool {
	g.checkIndex("HasEdge", u)
	g.checkIndex("HasEdge", v)
	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the number of edge endpoints incident to v, regardless of
// orientation: for directed graphs this is in-degree plus out-degree.
// Panics on an invalid index.
func (g *Graph) Degree(v int) int {
	g.checkIndex("Degree", v)
	return g.deg[v]
}

// Neighbors returns the nodes adjacent to v in ascending index order:
// out-neighbors for directed graphs, all neighbors otherwise. The slice is
// freshly allocated. Panics on an invalid index.
//
// Complexity: O(d log d) where d is the adjacency size.
func (g *Graph) Neighbors(v int) []int {
	g.checkIndex("Neighbors", v)
	ns := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		ns = append(ns, u)
	}
	sort.Ints(ns)
	return ns
}

// Edges returns a copy of the edge list in insertion order.
//
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// checkIndex panics with a descriptive message when idx is not a valid
// node index.
func (g *Graph) checkIndex(method string, idx int) {
	if idx < 0 || idx >= len(g.adj) {
		panic(fmt.Sprintf("core: %s: node index %d out of range [0,%d)", method, idx, len(g.adj)))
	}
}
