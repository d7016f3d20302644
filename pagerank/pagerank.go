package pagerank

import (
	"math"

	uatomic "go.uber.org/atomic"

	"github.com/angeil/essentials/enact"
	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/operator"
)

// Problem owns the mutable per-vertex state of one power iteration:
// the current and previous score vectors, the staged per-edge shares,
// the atomic accumulators, and the caller-owned output buffer. Reset
// re-initializes everything without reallocating.
type Problem struct {
	g       graph.Graph
	damping float64
	tol     float64
	ranks   []float64 // caller-owned output, length n

	scores []float64
	prev   []float64
	share  []float64
	acc    []uatomic.Float64
}

// NewProblem allocates the per-vertex state for g and leaves it in
// reset condition. ranks is the caller-owned output buffer, written in
// place at the end of a run; it must have length g.VertexCount().
func NewProblem(g graph.Graph, damping, tol float64, ranks []float64) (*Problem, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if damping < 0 || damping >= 1 {
		return nil, ErrDampingRange
	}
	if tol <= 0 {
		return nil, ErrToleranceRange
	}
	n := g.VertexCount()
	if len(ranks) != n {
		return nil, ErrOutputSize
	}
	p := &Problem{
		g:       g,
		damping: damping,
		tol:     tol,
		ranks:   ranks,
		scores:  make([]float64, n),
		prev:    make([]float64, n),
		share:   make([]float64, n),
		acc:     make([]uatomic.Float64, n),
	}
	p.Reset()
	return p, nil
}

// Reset re-initializes the score vector to the uniform distribution.
func (p *Problem) Reset() {
	n := float64(p.g.VertexCount())
	for i := range p.scores {
		p.scores[i] = 1 / n
		p.prev[i] = 0
		p.share[i] = 0
		p.acc[i].Store(0)
	}
}

// Run iterates to convergence on the engine and writes the caller-owned
// rank buffer. Run assumes reset state; call Reset before rerunning.
func (p *Problem) Run(opts ...enact.Option) (Result, error) {
	pol := &policy{p: p}
	res, err := enact.Enact(p.g, pol, opts...)
	if err != nil {
		return Result{}, err
	}
	copy(p.ranks, p.scores)
	return Result{
		Delta:   pol.delta,
		Rounds:  res.Rounds,
		Elapsed: res.Elapsed,
	}, nil
}

// Run scores g in one call: allocate, reset, enact. ranks is written in
// place and must have length g.VertexCount().
func Run(g graph.Graph, damping, tol float64, ranks []float64, opts ...enact.Option) (Result, error) {
	p, err := NewProblem(g, damping, tol, ranks)
	if err != nil {
		return Result{}, err
	}
	return p.Run(opts...)
}

// policy adapts the power iteration to the enactor's operation set.
type policy struct {
	p     *Problem
	delta float64
}

// Prepare seeds the frontier with every vertex; it stays full for the
// whole run since the Advance never emits.
func (c *policy) Prepare(f *frontier.Frontier) {
	f.Sequence(0, c.p.g.VertexCount())
}

// Loop runs one power-iteration round.
func (c *policy) Loop(e *enact.Enactor) error {
	p := c.p
	n := p.g.VertexCount()

	// Snapshot the scores, stage each vertex's per-edge share, and zero
	// the accumulators for the sweep.
	if err := operator.ForAll(n, func(i int) {
		p.prev[i] = p.scores[i]
		if d := p.g.Degree(graph.Vertex(i), graph.Forward); d > 0 {
			p.share[i] = p.scores[i] / float64(d)
		} else {
			p.share[i] = 0
		}
		p.acc[i].Store(0)
	}, e.Ops()...); err != nil {
		return err
	}

	// Side effects only: every edge pushes its source's share into the
	// destination's accumulator. share is stable during the sweep.
	op := func(src, dst graph.Vertex, _ graph.Edge, _ graph.Weight) bool {
		p.acc[dst].Add(p.share[src])
		return false
	}
	if err := operator.Advance(p.g, e.Input(), nil, op, e.Ops(operator.WithNoOutput())...); err != nil {
		return err
	}

	base := (1 - p.damping) / float64(n)
	return operator.ForAll(n, func(i int) {
		p.scores[i] = base + p.damping*p.acc[i].Load()
	}, e.Ops()...)
}

// Converged compares the new scores against the snapshot and stops
// once the largest change falls below the tolerance. At least one
// round always runs.
func (c *policy) Converged(e *enact.Enactor) bool {
	if e.Iteration() == 0 {
		return false
	}
	p := c.p
	delta := 0.0
	for i := range p.scores {
		if d := math.Abs(p.scores[i] - p.prev[i]); d > delta {
			delta = d
		}
	}
	c.delta = delta
	return delta < p.tol
}
