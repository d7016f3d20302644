// Package enact option handling and sentinel errors.
package enact

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/angeil/essentials/operator"
)

// Sentinel errors for enactor execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("enact: graph is nil")

	// ErrPolicyNil is returned if a nil policy is passed.
	ErrPolicyNil = errors.New("enact: policy is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enact: invalid option supplied")
)

// State is the enactor's observable lifecycle state.
type State int

const (
	// Preparing: the initial frontier is being seeded.
	Preparing State = iota
	// Iterating: rounds are executing.
	Iterating
	// Converged: the policy's convergence test passed.
	Converged
)

// String implements fmt.Stringer for logging.
func (s State) String() string {
	switch s {
	case Preparing:
		return "preparing"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options holds the per-run tunables of the enactor.
type Options struct {
	// Ctx bounds the run externally; checked between rounds only.
	Ctx context.Context

	// Logger receives per-round trace events. Defaults to a no-op.
	Logger zerolog.Logger

	// Lanes and Balancer are forwarded to every operator call made
	// through Enactor.Ops.
	Lanes    int
	Balancer operator.Balancer

	// internal error recorded during option parsing
	err error
}

// Option configures a run via functional arguments.
type Option func(*Options)

// DefaultOptions returns the enactor defaults: background context,
// no-op logger, operator-default lanes and balancing.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   zerolog.Nop(),
		Balancer: operator.MergePath{},
	}
}

// WithContext bounds the run with ctx; cancellation and deadlines are
// observed between rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables per-round trace logging.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithLanes sets the lane count for all operator calls of the run.
//
//	n > 0: use exactly n lanes
//	n == 0: explicit operator default
//	n < 0: invalid option → ErrOptionViolation
func WithLanes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Lanes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Lanes = n
	}
}

// WithBalancer selects the load-balancing strategy for the run; nil
// keeps the default.
func WithBalancer(b operator.Balancer) Option {
	return func(o *Options) {
		if b != nil {
			o.Balancer = b
		}
	}
}
