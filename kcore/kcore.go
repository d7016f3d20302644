package kcore

import (
	"sync/atomic"

	"github.com/angeil/essentials/enact"
	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/operator"
)

// flag values for the deleted / toBeDeleted arrays.
const (
	alive   int32 = 0
	removed int32 = 1
)

// Problem owns the mutable per-vertex state of one decomposition:
// remaining degrees, deletion flags, and the caller-owned core-number
// output buffer. Reset re-initializes the arrays without reallocating,
// so the same Problem can be rerun.
type Problem struct {
	g           graph.Graph
	coreNumbers []int32 // caller-owned output, length n
	degrees     []int32 // remaining degree, shrinks as neighbors vanish
	deleted     []int32
	toBeDeleted []int32
}

// NewProblem allocates the per-vertex state for g and leaves it in reset
// condition. coreNumbers is the caller-owned output buffer, written in
// place; it must have length g.VertexCount().
func NewProblem(g graph.Graph, coreNumbers []int32) (*Problem, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(coreNumbers) != g.VertexCount() {
		return nil, ErrOutputSize
	}
	n := g.VertexCount()
	p := &Problem{
		g:           g,
		coreNumbers: coreNumbers,
		degrees:     make([]int32, n),
		deleted:     make([]int32, n),
		toBeDeleted: make([]int32, n),
	}
	p.Reset()
	return p, nil
}

// Reset re-initializes every array to its starting value: remaining
// degree = actual degree, nothing marked, core numbers zeroed. Isolated
// vertices start deleted — they belong to no core.
func (p *Problem) Reset() {
	for v := 0; v < p.g.VertexCount(); v++ {
		d := int32(p.g.Degree(graph.Vertex(v), graph.Forward))
		p.degrees[v] = d
		p.toBeDeleted[v] = alive
		p.coreNumbers[v] = 0
		if d == 0 {
			p.deleted[v] = removed
		} else {
			p.deleted[v] = alive
		}
	}
}

// Deleted reports whether vertex v has been peeled. Meaningful after a
// run; used by tests to assert full deletion at convergence.
func (p *Problem) Deleted(v graph.Vertex) bool {
	return p.deleted[v] == removed
}

// Run peels the graph to convergence on the engine and reports the
// degeneracy. Run assumes reset state; call Reset before rerunning.
func (p *Problem) Run(opts ...enact.Option) (Result, error) {
	res, err := enact.Enact(p.g, &policy{p: p}, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Degeneracy: int32(res.Rounds),
		Rounds:     res.Rounds,
		Elapsed:    res.Elapsed,
	}, nil
}

// Run decomposes g in one call: allocate, reset, enact. coreNumbers is
// written in place and must have length g.VertexCount().
func Run(g graph.Graph, coreNumbers []int32, opts ...enact.Option) (Result, error) {
	p, err := NewProblem(g, coreNumbers)
	if err != nil {
		return Result{}, err
	}
	return p.Run(opts...)
}

// policy adapts the peeling loop to the enactor's operation set.
type policy struct {
	p *Problem
}

// Prepare seeds the frontier with every vertex.
func (c *policy) Prepare(f *frontier.Frontier) {
	f.Sequence(0, c.p.g.VertexCount())
}

// Loop peels one threshold k = iteration+1 until its frontier drains.
func (c *policy) Loop(e *enact.Enactor) error {
	p := c.p
	n := p.g.VertexCount()
	k := int32(e.Iteration() + 1)

	// Mark frontier vertices whose remaining degree fell to ≤ k, record
	// their core number, and hand each surviving neighbor one frontier
	// slot per connecting edge. deleted and degrees are stable during an
	// Advance (both mutate only behind the previous call's barrier);
	// the marks use atomic stores since many lanes may set the same one.
	advanceOp := func(src, dst graph.Vertex, _ graph.Edge, _ graph.Weight) bool {
		if p.deleted[src] == removed {
			return false
		}
		if p.degrees[src] > k {
			return false
		}
		atomic.StoreInt32(&p.coreNumbers[src], k)
		atomic.StoreInt32(&p.toBeDeleted[src], removed)
		return p.deleted[dst] == alive
	}

	// Per neighbor occurrence: pay one degree decrement; rejoin the
	// frontier only when the pre-decrement value was exactly k+1.
	filterOp := func(v graph.Vertex) bool {
		if p.deleted[v] == removed {
			return false
		}
		old := atomic.AddInt32(&p.degrees[v], -1) + 1
		return old == k+1
	}

	for !e.Input().IsEmpty() {
		if err := operator.Advance(p.g, e.Input(), e.Output(), advanceOp, e.Ops()...); err != nil {
			return err
		}
		e.Swap()

		// Merge this step's marks into the deleted flags.
		if err := operator.ForAll(n, func(i int) {
			if p.toBeDeleted[i] == removed {
				p.deleted[i] = removed
			}
		}, e.Ops()...); err != nil {
			return err
		}

		if err := operator.Filter(e.Input(), e.Output(), filterOp, e.Ops()...); err != nil {
			return err
		}
		e.Swap()
	}
	return nil
}

// Converged is true once every vertex is deleted. It also reseeds the
// frontier to the full vertex range for the next threshold.
func (c *policy) Converged(e *enact.Enactor) bool {
	p := c.p
	all := true
	for v := range p.deleted {
		if p.deleted[v] == alive {
			all = false
			break
		}
	}
	e.Input().Sequence(0, p.g.VertexCount())
	return all
}
