// Package generators turns compact specification strings such as
// "erdos_renyi/100,0.05" into reusable graph generators.
//
// A specification names a generative model and supplies its numeric
// parameters: `model_name` or `model_name/t1,t2,...,tk`. NewDirected and
// NewUndirected parse, validate, and bind the parameters exactly once and
// return a Generator capsule; every later Sample call draws one independent
// graph from the model, driven entirely by a caller-supplied random source.
//
// The package offers the following key components:
//
//   - Specification parsing and binding:
//     – parseSpec:        splits a spec string into name and raw tokens.
//     – bindParams:       schema-driven arity, kind, and range validation.
//   - Model registry:
//     – Directed / Undirected: list the available model descriptors.
//     – NewDirected / NewUndirected: resolve a spec into a Generator.
//   - Five generative models (one impl_*.go file each):
//     – chain:            deterministic path 0→1→...→n−1.
//     – erdos_renyi:      G(n,p), one Bernoulli trial per distinct pair.
//     – barabasi_albert:  preferential attachment over a seed clique.
//     – tree:             random recursive tree.
//     – watts_strogatz:   ring lattice with probabilistic rewiring.
//
// Guarantees:
//
//   - Fail-before-sample: every failure (unknown model, wrong arity,
//     malformed token, out-of-range value) is reported by NewDirected /
//     NewUndirected; once a Generator exists, Sample cannot fail.
//   - Structured sentinel errors (ErrUnknownModel, ErrArityMismatch,
//     ErrParameterParse, ErrParameterRange) wrapped with the model name and
//     offending token for easy filtering via errors.Is.
//   - Determinism: node indices and edge trials follow fixed, documented
//     orders, so one random stream always reproduces one graph.
//   - Concurrency: a Generator is an immutable value; concurrent Sample
//     calls are safe as long as each uses its own random source.
//
// See individual impl_*.go files for per-model contracts, parameter
// constraints, and complexity notes.
package generators
