// Package g2io generates synthetic graphs from compact specification
// strings — for benchmarking, simulation, and testing of graph-consuming
// systems.
//
// 🚀 What is g2io?
//
//	A small, pure-Go library that turns "model/params" strings into
//	reusable, reproducible graph generators:
//		• chain            — deterministic path graphs
//		• erdos_renyi      — G(n,p) random graphs
//		• barabasi_albert  — preferential-attachment (scale-free) graphs
//		• tree             — random recursive trees
//		• watts_strogatz   — small-world ring-rewiring graphs
//
// ✨ Why choose g2io?
//
//   - Parse once, sample forever – a Generator binds and validates its
//     parameters exactly once; every Sample call is an independent draw
//   - Reproducible by construction – all randomness flows through a
//     caller-supplied source, and edge emission orders are fixed
//   - Fail-before-sample – unknown models, wrong arity, malformed or
//     out-of-range parameters are all reported up front; sampling never fails
//   - Pure Go – no cgo, no runtime deps
//
// Everything is organized under two subpackages:
//
//	core/       — the index-addressed Graph container (directed or undirected)
//	generators/ — spec parsing, the model registry, and the five samplers
//
// Quick example:
//
//	gen, err := generators.NewUndirected("barabasi_albert/100,5")
//	if err != nil {
//		log.Fatal(err)
//	}
//	rng := rand.New(rand.NewSource(42))
//	g1 := gen.Sample(rng) // one draw
//	g2 := gen.Sample(rng) // an independent draw from the same model
//
// Start with generators.NewDirected / generators.NewUndirected, and use
// generators.Directed() / generators.Undirected() to list what is
// available.
package g2io
