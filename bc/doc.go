// Package bc hosts single-source betweenness centrality on the engine.
//
// What
//
//   - For a source s, the dependency of s on a vertex v is the fraction
//     of shortest paths from s to every other target that pass through
//     v. Betweenness centrality sums this over sources; one run computes
//     one source's contribution.
//
// How it maps onto the engine
//
//	Two phases share one Problem.
//
//	Forward (shortest-path counting): each round Advance relaxes the
//	frontier one hop. A vertex's depth label is claimed first-writer-wins
//	by compare-and-swap against the unset sentinel; the path count sigma
//	of the destination accumulates the source's sigma by atomic add
//	whenever the edge lands on the shortest-path DAG (the destination's
//	label equals the source's label + 1). Only the claiming edge pushes
//	the destination into the next frontier, so each vertex is expanded
//	exactly once even though several DAG edges may feed its sigma.
//
//	Backward (dependency accumulation): once the forward frontier
//	drains, the frontier is reseeded to the full vertex range, the phase
//	flips, and a depth counter starts at the deepest discovered level.
//	Each round Advance walks, side effects only, the DAG edges whose
//	source sits at the current depth and whose destination sits one
//	deeper, accumulating
//
//	    sigma[src]/sigma[dst] · (1 + delta[dst])
//
//	into the source's dependency delta and its centrality value; the
//	source vertex itself is excluded. Depth decrements once per round;
//	at depth 0 the run is complete and every centrality value is halved
//	to correct for undirected double counting.
//
// Atomicity: depth labels use int32 CAS; sigma, delta and the centrality
// accumulators are go.uber.org/atomic Float64 cells, so all cross-lane
// updates are plain atomic adds — correct under any interleaving.
package bc
