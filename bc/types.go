// Package bc sentinel errors and result types.
package bc

import (
	"errors"
	"time"
)

// Sentinel errors for betweenness-centrality runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bc: graph is nil")

	// ErrSourceRange is returned when the source vertex is outside [0, n).
	ErrSourceRange = errors.New("bc: source vertex out of range")

	// ErrOutputSize is returned when a caller-owned output buffer does
	// not have exactly one slot per vertex.
	ErrOutputSize = errors.New("bc: output buffer length must equal vertex count")
)

// Result reports a finished run.
type Result struct {
	// MaxDepth is the deepest shortest-path level discovered from the
	// source (the last forward round that still expanded the frontier).
	MaxDepth int32

	// Rounds is the total enactor round count across both phases.
	Rounds int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
