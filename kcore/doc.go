// Package kcore hosts vertex k-core decomposition on the engine.
//
// What
//
//   - The k-core of a graph is the maximal subgraph in which every
//     vertex has degree ≥ k. A vertex's core number is the largest k for
//     which it belongs to the k-core; the graph's degeneracy is the
//     largest k for which any k-core exists.
//   - The decomposition peels: for k = 1, 2, ... it repeatedly deletes
//     vertices whose remaining degree is ≤ k, decrementing the remaining
//     degree of their surviving neighbors, until nothing more falls at
//     this k; a vertex's core number is the k at which it was deleted.
//
// How it maps onto the engine
//
//	Each enactor round handles one threshold k = iteration + 1 and runs
//	an inner loop until its frontier drains:
//
//	  Advance  — every surviving frontier vertex with remaining degree
//	             ≤ k records core number k, marks itself to-be-deleted,
//	             and emits each surviving neighbor once per connecting
//	             edge.
//	  ForAll   — merges the to-be-deleted marks into the deleted flags.
//	  Filter   — per emitted neighbor occurrence, atomically decrements
//	             the remaining degree; the neighbor rejoins the frontier
//	             only when the pre-decrement value was exactly k+1, so a
//	             vertex is re-tested against k once per lost edge.
//
//	The run converges when every vertex is deleted; the final round
//	count is the degeneracy.
//
// The Filter re-admission compares against exactly k+1: when a vertex
// loses several neighbors in one inner step its counter can step past
// k+1 without ever equaling it. This mirrors the reference formulation;
// see the package tests for the behavior on small graphs.
//
// Complexity: each edge is examined O(1) times per threshold it
// survives; memory is four flat int32 arrays of length n.
package kcore
