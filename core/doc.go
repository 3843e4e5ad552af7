// Package core defines the Graph container targeted by every generator in
// this module: a node set addressed by dense integer indices plus an edge
// set built incrementally through AddNode and AddEdge.
//
// Design contract:
//
//   - Directionality is a property of the whole graph, chosen once at
//     construction via WithDirected; it changes how AddEdge records
//     adjacency, never which edges a caller may insert.
//   - Nodes are the integers 0..NodeCount()-1. New(n) pre-allocates n of
//     them; AddNode appends one more and returns its index.
//   - Edges are recorded in insertion order and Edges() replays that order
//     verbatim, which is what makes generator output reproducible for a
//     fixed random stream.
//   - Index arguments must be valid node indices. Violations are programmer
//     error and panic, exactly like slice indexing; no method returns an
//     error. Self-loops are rejected the same way: no model in this module
//     produces them.
//
// The container performs no locking: a Graph under construction belongs to
// one goroutine. Once construction is done, all methods that remain useful
// (NodeCount, EdgeCount, HasEdge, Degree, Edges, Neighbors) are read-only
// and therefore safe to call concurrently.
package core
