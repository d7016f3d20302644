// Package pagerank sentinel errors and result types.
package pagerank

import (
	"errors"
	"time"
)

// Sentinel errors for PageRank runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pagerank: graph is nil")

	// ErrOutputSize is returned when the caller-owned rank buffer does
	// not have exactly one slot per vertex.
	ErrOutputSize = errors.New("pagerank: rank buffer length must equal vertex count")

	// ErrDampingRange is returned when the damping factor lies outside
	// the half-open interval [0, 1).
	ErrDampingRange = errors.New("pagerank: damping factor must be in [0, 1)")

	// ErrToleranceRange is returned when the convergence tolerance is
	// not strictly positive.
	ErrToleranceRange = errors.New("pagerank: tolerance must be > 0")
)

// Result reports a finished power iteration.
type Result struct {
	// Delta is the largest per-vertex score change of the final round,
	// guaranteed below the requested tolerance.
	Delta float64

	// Rounds is the number of power-iteration rounds taken.
	Rounds int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
