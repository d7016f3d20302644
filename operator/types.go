// Package operator option handling, predicate types, and sentinel errors.
package operator

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
)

// Sentinel errors for operator execution.
var (
	// ErrGraphNil is returned if a nil graph is passed to Advance.
	ErrGraphNil = errors.New("operator: graph is nil")

	// ErrFrontierNil is returned if a required frontier is nil.
	ErrFrontierNil = errors.New("operator: frontier is nil")

	// ErrPredicateNil is returned if the user predicate is nil.
	ErrPredicateNil = errors.New("operator: predicate is nil")

	// ErrInputKind is returned when Advance receives an edge frontier;
	// expansion is defined from vertex frontiers only.
	ErrInputKind = errors.New("operator: input frontier must hold vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("operator: invalid option supplied")
)

// AdvanceOp is the per-edge predicate of Advance. It receives the edge
// (src → dst, id e, weight w) and reports whether the configured output
// element should join the output frontier. Side effects on algorithm
// state must use atomic operations only.
type AdvanceOp func(src, dst graph.Vertex, e graph.Edge, w graph.Weight) bool

// FilterOp is the per-element predicate of Filter. It is invoked exactly
// once per input element and reports whether the element survives.
type FilterOp func(v graph.Vertex) bool

// Options holds the tunables shared by the operators.
type Options struct {
	// Dir selects out-edge (Forward) or in-edge (Reverse) traversal.
	Dir graph.Dir

	// Output selects what Advance emits: destination vertices or edge ids.
	Output frontier.Kind

	// NoOutput suppresses frontier emission entirely; the predicate runs
	// for its side effects only and the out frontier may be nil.
	NoOutput bool

	// Lanes is the number of concurrent execution lanes.
	Lanes int

	// Balancer partitions the frontier's edge workload across lanes.
	Balancer Balancer

	// internal error recorded during option parsing
	err error
}

// Option configures an operator call via functional arguments.
type Option func(*Options)

// DefaultOptions returns the operator defaults: forward direction,
// vertex output, one lane per available CPU, merge-path balancing.
func DefaultOptions() Options {
	return Options{
		Dir:      graph.Forward,
		Output:   frontier.Vertices,
		Lanes:    runtime.GOMAXPROCS(0),
		Balancer: MergePath{},
	}
}

// WithDirection selects the traversal direction of Advance.
func WithDirection(d graph.Dir) Option {
	return func(o *Options) { o.Dir = d }
}

// WithOutput selects the output element kind of Advance.
func WithOutput(k frontier.Kind) Option {
	return func(o *Options) { o.Output = k }
}

// WithNoOutput runs the predicate for side effects only; nothing is
// appended and the output frontier may be nil.
func WithNoOutput() Option {
	return func(o *Options) { o.NoOutput = true }
}

// WithLanes sets the lane count.
//
//	n > 0: use exactly n lanes
//	n == 0: explicit default (GOMAXPROCS)
//	n < 0: invalid option → ErrOptionViolation
func WithLanes(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Lanes cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Lanes = runtime.GOMAXPROCS(0)
		default:
			o.Lanes = n
		}
	}
}

// WithBalancer selects the load-balancing strategy; nil keeps the default.
func WithBalancer(b Balancer) Option {
	return func(o *Options) {
		if b != nil {
			o.Balancer = b
		}
	}
}

// resolve folds opts over the defaults and surfaces recorded violations.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
