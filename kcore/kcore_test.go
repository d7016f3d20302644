package kcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/angeil/essentials/enact"
	"github.com/angeil/essentials/gen"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/kcore"
	"github.com/angeil/essentials/operator"
)

// refCoreNumbers is the sequential oracle: repeated min-degree peeling.
// For k = 1, 2, ... it removes every vertex whose current degree is ≤ k
// (cascading) and assigns it core number k. Isolated vertices get 0.
func refCoreNumbers(g *graph.CSR) ([]int32, int32) {
	n := g.VertexCount()
	deg := make([]int, n)
	core := make([]int32, n)
	removed := make([]bool, n)
	remaining := 0
	for v := 0; v < n; v++ {
		deg[v] = g.Degree(graph.Vertex(v), graph.Forward)
		if deg[v] == 0 {
			removed[v] = true
		} else {
			remaining++
		}
	}
	var degeneracy int32
	for k := int32(1); remaining > 0; k++ {
		for changed := true; changed; {
			changed = false
			for v := 0; v < n; v++ {
				if removed[v] || deg[v] > int(k) {
					continue
				}
				removed[v] = true
				remaining--
				core[v] = k
				degeneracy = k
				changed = true
				g.Edges(graph.Vertex(v), graph.Forward, func(w graph.Vertex, _ graph.Edge, _ graph.Weight) bool {
					if !removed[w] {
						deg[w]--
					}
					return true
				})
			}
		}
	}
	return core, degeneracy
}

// KCoreSuite checks the engine-hosted decomposition against the oracle
// known-answer scenarios.
type KCoreSuite struct {
	suite.Suite
}

func (s *KCoreSuite) check(g *graph.CSR, opts ...enact.Option) kcore.Result {
	want, wantDegeneracy := refCoreNumbers(g)

	out := make([]int32, g.VertexCount())
	res, err := kcore.Run(g, out, opts...)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, out)
	require.Equal(s.T(), wantDegeneracy, res.Degeneracy)
	return res
}

// TestPath5 — the 5-vertex path has degeneracy 1, every core number 1.
func (s *KCoreSuite) TestPath5() {
	g, err := gen.Path(5)
	require.NoError(s.T(), err)
	res := s.check(g)
	require.EqualValues(s.T(), 1, res.Degeneracy)
}

// TestStar5 — the star (center 0, leaves 1–4) has degeneracy 1.
func (s *KCoreSuite) TestStar5() {
	g, err := gen.Star(5)
	require.NoError(s.T(), err)
	res := s.check(g)
	require.EqualValues(s.T(), 1, res.Degeneracy)
}

// TestTriangle — three mutually connected vertices form a 2-core.
func (s *KCoreSuite) TestTriangle() {
	g, err := gen.Cycle(3)
	require.NoError(s.T(), err)
	res := s.check(g)
	require.EqualValues(s.T(), 2, res.Degeneracy)
}

// TestComplete — K_6 has degeneracy 5.
func (s *KCoreSuite) TestComplete() {
	g, err := gen.Complete(6)
	require.NoError(s.T(), err)
	res := s.check(g)
	require.EqualValues(s.T(), 5, res.Degeneracy)
}

// TestIsolatedVertices — vertices with no edges belong to no core and
// keep core number 0.
func (s *KCoreSuite) TestIsolatedVertices() {
	// 0-1 edge; 2 and 3 isolated.
	g, err := graph.NewCSR(4, []graph.EdgeListEntry{{From: 0, To: 1, Weight: 1}}, graph.WithUndirected())
	require.NoError(s.T(), err)
	out := make([]int32, 4)
	_, err = kcore.Run(g, out)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int32{1, 1, 0, 0}, out)
}

// TestRandomAgainstOracle cross-checks a seeded random graph under both
// balancers and several lane counts.
func (s *KCoreSuite) TestRandomAgainstOracle() {
	g, err := gen.RandomSparse(150, 0.06, 42)
	require.NoError(s.T(), err)
	s.check(g, enact.WithLanes(1))
	s.check(g, enact.WithLanes(8))
	s.check(g, enact.WithBalancer(operator.PerElement{}))
}

// TestAllDeletedAtConvergence — after the run every vertex is deleted.
func (s *KCoreSuite) TestAllDeletedAtConvergence() {
	g, err := gen.Grid(4, 5)
	require.NoError(s.T(), err)
	p, err := kcore.NewProblem(g, make([]int32, g.VertexCount()))
	require.NoError(s.T(), err)
	_, err = p.Run()
	require.NoError(s.T(), err)
	for v := 0; v < g.VertexCount(); v++ {
		require.True(s.T(), p.Deleted(graph.Vertex(v)), "vertex %d not deleted", v)
	}
}

// TestResetRerun — a reset Problem reruns with no residue.
func (s *KCoreSuite) TestResetRerun() {
	g, err := gen.RandomSparse(60, 0.1, 7)
	require.NoError(s.T(), err)
	out := make([]int32, g.VertexCount())
	p, err := kcore.NewProblem(g, out)
	require.NoError(s.T(), err)

	res1, err := p.Run()
	require.NoError(s.T(), err)
	first := append([]int32(nil), out...)

	p.Reset()
	res2, err := p.Run()
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, out)
	require.Equal(s.T(), res1.Degeneracy, res2.Degeneracy)
}

// TestErrors covers the sentinel errors.
func (s *KCoreSuite) TestErrors() {
	g, err := gen.Path(4)
	require.NoError(s.T(), err)
	_, err = kcore.Run(nil, make([]int32, 4))
	require.ErrorIs(s.T(), err, kcore.ErrGraphNil)
	_, err = kcore.Run(g, make([]int32, 3))
	require.ErrorIs(s.T(), err, kcore.ErrOutputSize)
}

func TestKCoreSuite(t *testing.T) {
	suite.Run(t, new(KCoreSuite))
}
