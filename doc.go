// Package essentials is a frontier-driven engine for expressing
// vertex-centric graph algorithms as bulk-synchronous rounds of
// expansion and contraction, executed data-parallel across CPU lanes.
//
// 🚀 What is essentials?
//
//	A small, composable analytics engine that brings together:
//		• graph/     — immutable CSR adjacency with forward & reverse views
//		• frontier/  — the dynamic worklist of active vertices or edges
//		• operator/  — Advance (edge-parallel), Filter (vertex-parallel),
//		               ForAll, and pluggable load-balancing strategies
//		• enact/     — the round-by-round iteration & convergence driver
//		• kcore/     — k-core decomposition (graph degeneracy)
//		• bc/        — single-source betweenness centrality
//		• pagerank/  — damped PageRank with tolerance-based convergence
//		• gen/       — deterministic graph fixtures for tests & benchmarks
//		• graphio/   — plain-text edge-list reading & score writing
//
// ✨ Why choose essentials?
//
//   - Algorithm authors write two tiny predicates; the engine supplies
//     frontier management, load balancing, atomic-safe parallelism and
//     convergence control.
//   - Uneven degree distributions stay balanced: the default merge-path
//     strategy splits the combined edge workload, not the vertex list.
//   - Lock-free inside a round — coordination is atomic add / CAS / store
//     only, with a full barrier between rounds.
//   - Pure Go, generics for static policy dispatch, zero reflection on
//     the hot path.
//
// Quick ASCII picture of one round:
//
//	frontier ──Advance──▶ expanded ──Filter──▶ next frontier
//	    ▲                                          │
//	    └────────────── Converged? ◀───────────────┘
//
// Start with enact.Enact and the worked algorithms in kcore/ and bc/ —
// each is a complete example of hosting an algorithm on the engine.
package essentials
