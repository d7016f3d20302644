// Package operator provides the data-parallel primitives of the engine:
// Advance (edge-parallel frontier expansion), Filter (vertex-parallel
// frontier contraction), ForAll (flat parallel-for), and the pluggable
// load-balancing strategies that keep uneven per-vertex work spread
// evenly across execution lanes.
//
// What
//
//   - Advance visits, in parallel and in unspecified order, every edge
//     incident to every element of the input frontier, in the Forward or
//     Reverse direction. Edges whose predicate returns true contribute
//     their destination vertex (or the edge id itself) to the output
//     frontier. A destination reachable through several frontier edges
//     may be emitted several times — Advance offers at-least-once vertex
//     semantics, never deduplication.
//   - Filter evaluates its predicate exactly once per input element (no
//     duplication, no omission) and keeps only the elements for which it
//     returned true. Use it for exactly-once local transitions such as
//     "decrement a shared counter and test the crossing".
//   - ForAll applies a function to every index of [0, n) in parallel,
//     the engine's equivalent of a device-wide transform.
//
// Load balancing
//
//	Real graphs have per-vertex out-degrees varying by orders of
//	magnitude, so mapping one frontier element to one lane leaves most
//	lanes idle behind the hubs. The default MergePath strategy instead
//	splits the frontier's combined edge workload — the prefix sum of
//	element degrees — into near-equal contiguous chunks, then maps chunk
//	boundaries back to (element, adjacency-offset) pairs by binary
//	search, so a hub's adjacency is carved across as many lanes as it
//	needs. PerElement is the naive contrast strategy: contiguous chunks
//	of frontier elements, correct but skew-prone.
//
// Concurrency
//
//	Lane execution order within one call is unspecified. Predicates must
//	be safe under arbitrary interleaving: side effects on shared state
//	go through atomic add / compare-and-swap only, and must be
//	idempotent or commutative. Each operator call ends with a full lane
//	barrier, so the next call observes all side effects of the previous
//	one. Lanes collect output into private buffers merged after the
//	barrier; the output frontier is never written concurrently.
package operator
