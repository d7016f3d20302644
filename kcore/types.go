// Package kcore sentinel errors and result types.
package kcore

import (
	"errors"
	"time"
)

// Sentinel errors for k-core runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("kcore: graph is nil")

	// ErrOutputSize is returned when the caller-owned core-number buffer
	// does not have exactly one slot per vertex.
	ErrOutputSize = errors.New("kcore: core-number buffer length must equal vertex count")
)

// Result reports a finished decomposition.
type Result struct {
	// Degeneracy is the largest k for which a k-core exists, equal to
	// the number of enactor rounds the peeling took.
	Degeneracy int32

	// Rounds is the enactor round count (== Degeneracy).
	Rounds int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
