// Package enact drives a frontier algorithm round by round until its
// own convergence test passes.
//
// An algorithm is a Policy with three operations:
//
//   - Prepare seeds the initial frontier (all vertices, one source, ...).
//   - Loop runs one round: one or more Advance/Filter/ForAll calls. An
//     algorithm may iterate internally until an inner frontier drains.
//   - Converged decides whether to stop. It may also mutate the frontier
//     as a side effect (reseeding it for the next round) and may flip
//     the enactor's phase flag to switch algorithm phases, e.g. from a
//     forward sweep to a backward one.
//
// The driver is generic over the policy type, so each algorithm gets a
// statically specialized loop with no interface indirection per round.
// The round sequence matches the classic GPU-analytics enactor:
//
//	p.Prepare(e.Input())
//	for !p.Converged(e) {
//	    p.Loop(e)
//	    e.iteration++
//	}
//
// Rounds are strictly sequential: every operator call inside Loop ends
// with a full lane barrier, so a round observes all state mutations of
// the previous one. The iteration counter increments once per round and
// is visible to both Loop and Converged for depth-dependent logic. The
// engine imposes no maximum-iteration bound — termination is a property
// of the algorithm — but the caller may bound a run externally with
// WithContext; cancellation is honored between rounds, never inside one.
package enact
