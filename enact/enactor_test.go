package enact_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/angeil/essentials/enact"
	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/operator"
)

// reachPolicy is a minimal guest algorithm: breadth-style reachability
// from a source with a CAS visited guard. It exists to exercise the
// driver, not to be a useful traversal.
type reachPolicy struct {
	g       *graph.CSR
	source  graph.Vertex
	visited []int32
	rounds  []int // frontier size observed by Loop each round
}

func newReachPolicy(g *graph.CSR, source graph.Vertex) *reachPolicy {
	return &reachPolicy{g: g, source: source, visited: make([]int32, g.VertexCount())}
}

func (p *reachPolicy) Prepare(f *frontier.Frontier) {
	p.visited[p.source] = 1
	f.PushBack(int32(p.source))
}

func (p *reachPolicy) Loop(e *enact.Enactor) error {
	p.rounds = append(p.rounds, e.Input().Len())
	err := operator.Advance(p.g, e.Input(), e.Output(), func(src, dst graph.Vertex, _ graph.Edge, _ graph.Weight) bool {
		return atomic.CompareAndSwapInt32(&p.visited[dst], 0, 1)
	}, e.Ops()...)
	if err != nil {
		return err
	}
	e.Swap()
	return nil
}

func (p *reachPolicy) Converged(e *enact.Enactor) bool {
	return e.Input().IsEmpty()
}

// path builds the undirected path 0-1-...-n-1.
func path(t *testing.T, n int) *graph.CSR {
	t.Helper()
	edges := make([]graph.EdgeListEntry, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.EdgeListEntry{From: graph.Vertex(i), To: graph.Vertex(i + 1)})
	}
	g, err := graph.NewCSR(n, edges, graph.WithUndirected())
	if err != nil {
		t.Fatalf("NewCSR: %v", err)
	}
	return g
}

// TestEnact_RunsToConvergence checks the round count, the iteration
// counter's visibility, and that everything is visited.
func TestEnact_RunsToConvergence(t *testing.T) {
	g := path(t, 6)
	p := newReachPolicy(g, 0)

	res, err := enact.Enact(g, p, enact.WithLanes(2))
	if err != nil {
		t.Fatalf("Enact: %v", err)
	}
	// Path of 6 from one end: frontier {0},{1},{2},{3},{4},{5} → 6 rounds.
	if res.Rounds != 6 {
		t.Errorf("Rounds = %d; want 6", res.Rounds)
	}
	if res.Elapsed <= 0 {
		t.Errorf("Elapsed = %v; want > 0", res.Elapsed)
	}
	for v, seen := range p.visited {
		if seen != 1 {
			t.Errorf("vertex %d not visited", v)
		}
	}
	// Every observed frontier during active rounds was non-empty.
	for i, sz := range p.rounds {
		if sz == 0 {
			t.Errorf("round %d saw an empty active frontier", i)
		}
	}
}

// TestEnact_ContextCancel bounds a non-terminating policy externally.
func TestEnact_ContextCancel(t *testing.T) {
	g := path(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &spinPolicy{}
	_, err := enact.Enact(g, p, enact.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// spinPolicy never converges; its frontier never drains.
type spinPolicy struct{}

func (*spinPolicy) Prepare(f *frontier.Frontier)    { f.PushBack(0) }
func (*spinPolicy) Loop(e *enact.Enactor) error     { return nil }
func (*spinPolicy) Converged(e *enact.Enactor) bool { return false }

// TestEnact_Errors verifies sentinel errors for invalid input.
func TestEnact_Errors(t *testing.T) {
	g := path(t, 3)
	if _, err := enact.Enact[enact.Policy](nil, &spinPolicy{}); !errors.Is(err, enact.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := enact.Enact[enact.Policy](g, nil); !errors.Is(err, enact.ErrPolicyNil) {
		t.Errorf("nil policy: want ErrPolicyNil, got %v", err)
	}
	if _, err := enact.Enact(g, &spinPolicy{}, enact.WithLanes(-1)); !errors.Is(err, enact.ErrOptionViolation) {
		t.Errorf("negative lanes: want ErrOptionViolation, got %v", err)
	}
}

// TestEnact_PhaseFlag checks the phase flag round-trips through the
// enactor untouched by the driver.
func TestEnact_PhaseFlag(t *testing.T) {
	g := path(t, 3)
	p := &phasePolicy{}
	if _, err := enact.Enact(g, p); err != nil {
		t.Fatalf("Enact: %v", err)
	}
	if p.sawPhase != 1 {
		t.Errorf("Loop observed phase %d; want 1", p.sawPhase)
	}
}

type phasePolicy struct {
	sawPhase int
	done     bool
}

func (*phasePolicy) Prepare(f *frontier.Frontier) { f.PushBack(0) }

func (p *phasePolicy) Loop(e *enact.Enactor) error {
	p.sawPhase = e.Phase()
	p.done = true
	return nil
}

func (p *phasePolicy) Converged(e *enact.Enactor) bool {
	if !p.done {
		e.SetPhase(1)
		return false
	}
	return true
}

// TestState_String covers the observable lifecycle labels.
func TestState_String(t *testing.T) {
	for s, want := range map[enact.State]string{
		enact.Preparing: "preparing",
		enact.Iterating: "iterating",
		enact.Converged: "converged",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q; want %q", int(s), got, want)
		}
	}
}
