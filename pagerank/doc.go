// Package pagerank hosts the power-iteration PageRank on the engine.
//
// What
//
//   - PageRank scores every vertex by the stationary probability of a
//     random walk that follows an outgoing edge with probability d (the
//     damping factor) and teleports to a uniform vertex otherwise.
//   - Power iteration repeats p = (1−d)/n + d·Σ p[u]/outdeg(u) over the
//     in-neighbors u of each vertex until the largest per-vertex change
//     falls below a tolerance.
//
// How it maps onto the engine
//
//	Every round runs over the full vertex range:
//
//	  ForAll   — snapshots the previous scores, stages each vertex's
//	             per-edge share p[v]/outdeg(v), and zeroes the
//	             accumulators.
//	  Advance  — side effects only: each edge adds its source's share
//	             into the destination's accumulator.
//	  ForAll   — applies the teleport term and damping to produce the
//	             next scores.
//
//	Converged compares the new scores against the snapshot on the
//	control path and stops once max|p − plast| < tol.
//
// Vertices with no outgoing edges contribute nothing, so on graphs with
// sinks the scores sum to less than one. On undirected (mirrored)
// graphs every non-isolated vertex has out-edges and the scores stay a
// distribution.
package pagerank
