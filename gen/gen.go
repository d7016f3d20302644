// SPDX-License-Identifier: MIT
// Package: essentials/gen
//
// gen.go - fixture constructors. Every constructor funnels through
// build(), which mirrors edges (undirected) and applies caller options.

package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/angeil/essentials/graph"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("gen: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")
)

const (
	minPathNodes     = 2
	minStarNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minGridSide      = 1
)

func build(n int, edges []graph.EdgeListEntry, opts []graph.Option) (*graph.CSR, error) {
	return graph.NewCSR(n, edges, append([]graph.Option{graph.WithUndirected()}, opts...)...)
}

// Path returns the path 0-1-...-n-1. n ≥ 2.
func Path(n int, opts ...graph.Option) (*graph.CSR, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	edges := make([]graph.EdgeListEntry, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, unit(i, i+1))
	}
	return build(n, edges, opts)
}

// Star returns a hub-and-spokes star: center 0, leaves 1..n-1. n ≥ 2.
func Star(n int, opts ...graph.Option) (*graph.CSR, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([]graph.EdgeListEntry, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, unit(0, i))
	}
	return build(n, edges, opts)
}

// Cycle returns the cycle 0-1-...-n-1-0. n ≥ 3.
func Cycle(n int, opts ...graph.Option) (*graph.CSR, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([]graph.EdgeListEntry, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, unit(i, (i+1)%n))
	}
	return build(n, edges, opts)
}

// Complete returns the complete graph K_n. n ≥ 2.
func Complete(n int, opts ...graph.Option) (*graph.CSR, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	edges := make([]graph.EdgeListEntry, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, unit(i, j))
		}
	}
	return build(n, edges, opts)
}

// Grid returns the rows×cols lattice with 4-neighbor connectivity,
// vertex (r,c) at id r*cols+c. rows, cols ≥ 1 and rows*cols ≥ 2.
func Grid(rows, cols int, opts ...graph.Option) (*graph.CSR, error) {
	if rows < minGridSide || cols < minGridSide || rows*cols < 2 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
	}
	edges := make([]graph.EdgeListEntry, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				edges = append(edges, unit(id, id+1))
			}
			if r+1 < rows {
				edges = append(edges, unit(id, id+cols))
			}
		}
	}
	return build(rows*cols, edges, opts)
}

// RandomSparse returns an Erdős–Rényi style graph: each unordered pair
// joined with probability p, drawn from a seeded source so the same
// (n, p, seed) always yields the same graph. n ≥ 2, p ∈ [0,1].
func RandomSparse(n int, p float64, seed int64, opts ...graph.Option) (*graph.CSR, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	rng := rand.New(rand.NewSource(seed))
	var edges []graph.EdgeListEntry
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, unit(i, j))
			}
		}
	}
	return build(n, edges, opts)
}

func unit(u, v int) graph.EdgeListEntry {
	return graph.EdgeListEntry{From: graph.Vertex(u), To: graph.Vertex(v), Weight: 1}
}
