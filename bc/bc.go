package bc

import (
	"sync/atomic"

	uatomic "go.uber.org/atomic"

	"github.com/angeil/essentials/enact"
	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/operator"
)

// unsetLabel marks a vertex not yet reached by the forward sweep.
const unsetLabel int32 = -1

// Engine phases, stored in the enactor's phase flag.
const (
	phaseForward = iota
	phaseBackward
)

// Problem owns the mutable per-vertex state of one run: depth labels,
// path counts, dependency accumulators, and the caller-owned output
// buffers. Reset re-initializes everything for a new source without
// reallocating.
type Problem struct {
	g        graph.Graph
	source   graph.Vertex
	sigmas   []float64 // caller-owned: shortest-path counts
	bcValues []float64 // caller-owned: centrality contributions

	labels []int32
	sigma  []uatomic.Float64
	delta  []uatomic.Float64
	bcAcc  []uatomic.Float64
}

// NewProblem allocates the per-vertex state for g and resets it for
// source. sigmas and bcValues are caller-owned output buffers, written
// in place at the end of a run; both must have length g.VertexCount().
func NewProblem(g graph.Graph, source graph.Vertex, sigmas, bcValues []float64) (*Problem, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if len(sigmas) != n || len(bcValues) != n {
		return nil, ErrOutputSize
	}
	p := &Problem{
		g:        g,
		sigmas:   sigmas,
		bcValues: bcValues,
		labels:   make([]int32, n),
		sigma:    make([]uatomic.Float64, n),
		delta:    make([]uatomic.Float64, n),
		bcAcc:    make([]uatomic.Float64, n),
	}
	if err := p.Reset(source); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset re-initializes every array for a run from source: all labels
// unset and sigmas zero except the source (label 0, sigma 1), all
// accumulators zero. May be called repeatedly with different sources.
func (p *Problem) Reset(source graph.Vertex) error {
	if source < 0 || int(source) >= p.g.VertexCount() {
		return ErrSourceRange
	}
	p.source = source
	for i := range p.labels {
		p.labels[i] = unsetLabel
		p.sigma[i].Store(0)
		p.delta[i].Store(0)
		p.bcAcc[i].Store(0)
	}
	p.labels[source] = 0
	p.sigma[source].Store(1)
	return nil
}

// Depth reports the shortest-path level of v discovered by the forward
// sweep, or -1 if v is unreachable. Meaningful after a run.
func (p *Problem) Depth(v graph.Vertex) int32 {
	return p.labels[v]
}

// Run executes both phases to convergence and writes the caller-owned
// output buffers. Run assumes reset state; call Reset before rerunning.
func (p *Problem) Run(opts ...enact.Option) (Result, error) {
	pol := &policy{p: p}
	res, err := enact.Enact(p.g, pol, opts...)
	if err != nil {
		return Result{}, err
	}
	for i := range p.sigmas {
		p.sigmas[i] = p.sigma[i].Load()
		p.bcValues[i] = p.bcAcc[i].Load()
	}
	return Result{
		MaxDepth: pol.maxDepth,
		Rounds:   res.Rounds,
		Elapsed:  res.Elapsed,
	}, nil
}

// Run computes one source's centrality contribution in one call:
// allocate, reset, enact. sigmas and bcValues are written in place and
// must have length g.VertexCount().
func Run(g graph.Graph, source graph.Vertex, sigmas, bcValues []float64, opts ...enact.Option) (Result, error) {
	p, err := NewProblem(g, source, sigmas, bcValues)
	if err != nil {
		return Result{}, err
	}
	return p.Run(opts...)
}

// policy adapts the two-phase sweep to the enactor's operation set.
type policy struct {
	p        *Problem
	depth    int32
	maxDepth int32
}

// Prepare seeds the frontier with the source vertex alone.
func (c *policy) Prepare(f *frontier.Frontier) {
	f.PushBack(int32(c.p.source))
}

// Loop runs one round of the active phase.
func (c *policy) Loop(e *enact.Enactor) error {
	if e.Phase() == phaseForward {
		return c.forward(e)
	}
	return c.backward(e)
}

// forward relaxes the frontier one hop, claiming depth labels by CAS
// and accumulating path counts along shortest-path DAG edges.
func (c *policy) forward(e *enact.Enactor) error {
	p := c.p
	op := func(src, dst graph.Vertex, _ graph.Edge, _ graph.Weight) bool {
		// src's label and sigma were finalized behind the previous
		// round's barrier; only dst cells are contended here.
		newLabel := p.labels[src] + 1
		if atomic.CompareAndSwapInt32(&p.labels[dst], unsetLabel, newLabel) {
			p.sigma[dst].Add(p.sigma[src].Load())
			return true
		}
		if atomic.LoadInt32(&p.labels[dst]) != newLabel {
			return false // not a shortest-path DAG edge
		}
		p.sigma[dst].Add(p.sigma[src].Load())
		return false // DAG edge, but dst was already claimed
	}
	if err := operator.Advance(p.g, e.Input(), e.Output(), op, e.Ops()...); err != nil {
		return err
	}
	e.Swap()
	return nil
}

// backward walks DAG edges at the current depth, side effects only,
// then steps the depth down one level.
func (c *policy) backward(e *enact.Enactor) error {
	p := c.p
	depth := c.depth
	op := func(src, dst graph.Vertex, _ graph.Edge, _ graph.Weight) bool {
		if src == p.source {
			return false
		}
		srcLabel := p.labels[src]
		if srcLabel != depth {
			return false
		}
		if p.labels[dst] != srcLabel+1 {
			return false
		}
		update := p.sigma[src].Load() / p.sigma[dst].Load() * (1 + p.delta[dst].Load())
		p.delta[src].Add(update)
		p.bcAcc[src].Add(update)
		return false
	}
	if err := operator.Advance(p.g, e.Input(), nil, op, e.Ops(operator.WithNoOutput())...); err != nil {
		return err
	}
	c.depth--
	return nil
}

// Converged flips to the backward phase when the forward frontier
// drains, and finishes when the backward depth hits zero, halving the
// centrality values to undo the undirected double count.
func (c *policy) Converged(e *enact.Enactor) bool {
	p := c.p
	if e.Phase() == phaseForward {
		if !e.Input().IsEmpty() {
			return false
		}
		c.maxDepth = int32(e.Iteration() - 1)
		c.depth = c.maxDepth
		e.Input().Sequence(0, p.g.VertexCount())
		e.SetPhase(phaseBackward)
		if c.depth > 0 {
			return false
		}
		// Source with no reachable neighbors: nothing to accumulate.
		return true
	}
	if c.depth > 0 {
		return false
	}
	_ = operator.ForAll(len(p.bcAcc), func(i int) {
		p.bcAcc[i].Store(0.5 * p.bcAcc[i].Load())
	}, e.Ops()...)
	return true
}
