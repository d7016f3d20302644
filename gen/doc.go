// SPDX-License-Identifier: MIT
// Package: essentials/gen
//
// Package gen builds deterministic CSR graph fixtures for tests,
// examples and benchmarks.
//
// Design contract (strict):
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Determinism: the same constructor, parameters and seed always
//     produce an identical graph — edge emission order included.
//   - All fixtures are undirected (each input edge mirrored in the CSR)
//     and unit-weighted; pass extra graph.Options to override storage
//     behavior such as WithReverse.
//
// Topologies: Path, Star, Cycle, Complete, Grid, RandomSparse.
package gen
