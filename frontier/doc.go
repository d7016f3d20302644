// Package frontier provides the dynamic worklist of active graph
// elements that drives each round of the engine.
//
// A Frontier holds vertex or edge identifiers (its Kind), grows during
// Advance, shrinks during Filter, and may be wholly replaced — e.g.
// reseeded to the full vertex range — by an algorithm's convergence
// logic. The container itself performs no deduplication: algorithms
// needing uniqueness enforce it inside their predicates, typically via
// an atomic guard on a per-vertex flag.
//
// Concurrency: a Frontier is single-writer. The operators never append
// to it from multiple lanes; each lane collects into a private buffer
// and the merged result lands here after the lane barrier. Between
// operator calls the frontier is therefore safe to read without locks.
package frontier
