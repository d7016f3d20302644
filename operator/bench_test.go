package operator_test

import (
	"fmt"
	"testing"

	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/gen"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/operator"
)

// benchAdvance expands the full vertex range once per op under the
// given balancer.
func benchAdvance(b *testing.B, g *graph.CSR, bal operator.Balancer) {
	in := frontier.New(frontier.Vertices, g.VertexCount())
	in.Sequence(0, g.VertexCount())
	out := frontier.New(frontier.Vertices, g.EdgeCount())
	op := func(_, _ graph.Vertex, _ graph.Edge, _ graph.Weight) bool { return true }

	b.ReportAllocs()
	b.SetBytes(int64(g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := operator.Advance(g, in, out, op, operator.WithBalancer(bal)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdvance_Balancers contrasts the two strategies on a heavily
// skewed graph: one hub holds almost all the edge work, so per-element
// chunks serialize while merge-based splits stay even.
func BenchmarkAdvance_Balancers(b *testing.B) {
	g, err := gen.Star(5000)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("merge-path", func(b *testing.B) { benchAdvance(b, g, operator.MergePath{}) })
	b.Run("per-element", func(b *testing.B) { benchAdvance(b, g, operator.PerElement{}) })
}

// BenchmarkAdvance_Lanes scales lane count on a uniform random graph.
func BenchmarkAdvance_Lanes(b *testing.B) {
	g, err := gen.RandomSparse(4000, 0.003, 17)
	if err != nil {
		b.Fatal(err)
	}
	in := frontier.New(frontier.Vertices, g.VertexCount())
	in.Sequence(0, g.VertexCount())
	out := frontier.New(frontier.Vertices, g.EdgeCount())
	op := func(_, _ graph.Vertex, _ graph.Edge, _ graph.Weight) bool { return true }

	for _, lanes := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("lanes-%d", lanes), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := operator.Advance(g, in, out, op, operator.WithLanes(lanes)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFilter_Dense filters the full vertex range with a cheap
// predicate, measuring merge overhead.
func BenchmarkFilter_Dense(b *testing.B) {
	const n = 100000
	in := frontier.New(frontier.Vertices, n)
	in.Sequence(0, n)
	out := frontier.New(frontier.Vertices, n)
	op := func(v graph.Vertex) bool { return v%2 == 0 }

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := operator.Filter(in, out, op); err != nil {
			b.Fatal(err)
		}
	}
}
