package enact

import (
	"time"

	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/operator"
)

// Policy is the fixed operation set an algorithm supplies to host itself
// on the engine. One Policy value serves one run.
type Policy interface {
	// Prepare seeds the initial active set.
	Prepare(f *frontier.Frontier)

	// Loop executes one round of operator calls against the enactor's
	// frontier pair.
	Loop(e *Enactor) error

	// Converged reports whether the run is complete. It may reseed the
	// frontier and flip the phase flag as side effects.
	Converged(e *Enactor) bool
}

// Result reports a finished run.
type Result struct {
	// Elapsed is the wall-clock time of the whole run, the timing metric
	// returned to instrumentation.
	Elapsed time.Duration

	// Rounds is the number of completed iterations.
	Rounds int
}

// Enactor holds the run state handed to the policy each round: the
// double-buffered frontier pair, the iteration counter, and the phase
// flag for multi-phase algorithms. One Enactor serves one run.
type Enactor struct {
	g         graph.Graph
	bufs      [2]*frontier.Frontier
	cur       int
	iteration int
	phase     int
	state     State
	opts      Options
}

// Graph returns the graph under analysis.
func (e *Enactor) Graph() graph.Graph { return e.g }

// Iteration returns the current round number, starting at 0 and
// incremented once per round after Loop.
func (e *Enactor) Iteration() int { return e.iteration }

// State returns the enactor's lifecycle state.
func (e *Enactor) State() State { return e.state }

// Phase returns the policy-defined phase flag (0 initially).
func (e *Enactor) Phase() int { return e.phase }

// SetPhase flips the phase flag; meaningful only to the policy.
func (e *Enactor) SetPhase(p int) { e.phase = p }

// Input returns the active frontier read by the next operator call.
func (e *Enactor) Input() *frontier.Frontier { return e.bufs[e.cur] }

// Output returns the scratch frontier the next operator call writes.
func (e *Enactor) Output() *frontier.Frontier { return e.bufs[1-e.cur] }

// Swap exchanges the frontier pair: the previous output becomes the
// active input of the next operator call.
func (e *Enactor) Swap() { e.cur = 1 - e.cur }

// Ops assembles the operator options for this run (lanes, balancer)
// with any call-specific extras appended.
func (e *Enactor) Ops(extra ...operator.Option) []operator.Option {
	opts := []operator.Option{
		operator.WithLanes(e.opts.Lanes),
		operator.WithBalancer(e.opts.Balancer),
	}
	return append(opts, extra...)
}

// Enact runs policy p over g to convergence and returns the elapsed-time
// metric. The policy type parameter keeps dispatch static per algorithm.
// Returns ErrGraphNil, ErrPolicyNil, ErrOptionViolation, a context error
// when the run is cancelled between rounds, or any error from Loop.
func Enact[P Policy](g graph.Graph, p P, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if any(p) == nil {
		return Result{}, ErrPolicyNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	n := g.VertexCount()
	e := &Enactor{
		g:     g,
		state: Preparing,
		opts:  o,
	}
	e.bufs[0] = frontier.New(frontier.Vertices, n)
	e.bufs[1] = frontier.New(frontier.Vertices, n)

	start := time.Now()
	p.Prepare(e.Input())
	e.state = Iterating

	for !p.Converged(e) {
		// External bound: the only cancellation point, between rounds.
		select {
		case <-o.Ctx.Done():
			return Result{Elapsed: time.Since(start), Rounds: e.iteration}, o.Ctx.Err()
		default:
		}

		o.Logger.Debug().
			Int("round", e.iteration).
			Int("frontier", e.Input().Len()).
			Msg("enact round")

		if err := p.Loop(e); err != nil {
			return Result{Elapsed: time.Since(start), Rounds: e.iteration}, err
		}
		e.iteration++
	}

	e.state = Converged
	res := Result{Elapsed: time.Since(start), Rounds: e.iteration}
	o.Logger.Info().
		Int("rounds", res.Rounds).
		Dur("elapsed", res.Elapsed).
		Msg("enact converged")
	return res, nil
}
