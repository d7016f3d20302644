// Package graph defines the adjacency contract consumed by the engine
// and an immutable compressed-sparse-row (CSR) implementation of it.
//
// What
//
//   - Vertex ids are a dense integer range [0, n); edge ids are the dense
//     range [0, m) in forward-adjacency order.
//   - Graph is the read-only interface the operators consume: vertex and
//     edge counts, per-vertex degree, and neighbor enumeration in the
//     Forward (out-edge) or Reverse (in-edge) direction. EdgeAt gives the
//     O(1) indexed access the merge-path load balancer needs to start a
//     lane mid-adjacency.
//   - CSR is built once from an edge list and never mutated afterwards,
//     so concurrent readers need no locks. The reverse adjacency is only
//     materialized when requested via WithReverse.
//
// Why
//
//   - Operator predicates run on many lanes at once; an immutable store
//     makes "neighbor enumeration is consistent across repeated calls"
//     trivially true for the duration of a run.
//   - Flat offset/target slices keep the per-edge hot path free of maps,
//     interfaces and allocation.
//
// Determinism
//
//	Neighbors of a vertex appear in input edge-list order, and repeated
//	enumeration always yields the same sequence.
//
// Complexity (n = |V|, m = |E|)
//
//   - NewCSR: O(n + m) time and space (×2 with WithReverse).
//   - Degree, EdgeAt: O(1). Edges: O(degree).
package graph
