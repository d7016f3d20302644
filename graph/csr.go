package graph

import "fmt"

// adjacency is one direction of a CSR: neighbors of vertex v live in
// targets[offsets[v]:offsets[v+1]], with parallel weight and edge-id
// slices. ids is nil for the forward direction, where the slice position
// itself is the edge id.
type adjacency struct {
	offsets []int32
	targets []Vertex
	weights []Weight
	ids     []Edge
}

func (a *adjacency) degree(v Vertex) int {
	return int(a.offsets[v+1] - a.offsets[v])
}

// CSR is an immutable compressed-sparse-row graph. Safe for concurrent
// readers; never mutated after NewCSR returns.
type CSR struct {
	n   int
	fwd adjacency
	rev *adjacency
}

// NewCSR builds a CSR graph over n vertices from the given edge list.
// Endpoints must lie in [0, n). With WithUndirected every entry is stored
// in both directions (two distinct edge ids). With WithReverse the
// in-edge adjacency is materialized as well.
func NewCSR(n int, edges []EdgeListEntry, opts ...Option) (*CSR, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoVertices, n)
	}
	var o csrOptions
	for _, opt := range opts {
		opt(&o)
	}
	for _, e := range edges {
		if e.From < 0 || int(e.From) >= n || e.To < 0 || int(e.To) >= n {
			return nil, fmt.Errorf("%w: edge %d→%d with n=%d", ErrVertexRange, e.From, e.To, n)
		}
	}

	// Materialize the directed edge list, mirroring if undirected.
	m := len(edges)
	if o.undirected {
		m *= 2
	}
	from := make([]Vertex, 0, m)
	to := make([]Vertex, 0, m)
	w := make([]Weight, 0, m)
	for _, e := range edges {
		from = append(from, e.From)
		to = append(to, e.To)
		w = append(w, e.Weight)
		if o.undirected {
			from = append(from, e.To)
			to = append(to, e.From)
			w = append(w, e.Weight)
		}
	}

	g := &CSR{n: n}
	g.fwd = buildAdjacency(n, from, to, w, nil)
	if o.reverse {
		// Reverse entries carry the forward edge id so predicates see the
		// same id regardless of traversal direction.
		ids := make([]Edge, m)
		for i := range ids {
			ids[i] = Edge(i)
		}
		rev := buildAdjacency(n, to, from, w, ids)
		g.rev = &rev
	}
	return g, nil
}

// buildAdjacency counting-sorts the directed edges by source vertex.
// Preserves input order within each source bucket.
func buildAdjacency(n int, from, to []Vertex, w []Weight, ids []Edge) adjacency {
	m := len(from)
	a := adjacency{
		offsets: make([]int32, n+1),
		targets: make([]Vertex, m),
		weights: make([]Weight, m),
	}
	if ids != nil {
		a.ids = make([]Edge, m)
	}
	for _, v := range from {
		a.offsets[v+1]++
	}
	for v := 1; v <= n; v++ {
		a.offsets[v] += a.offsets[v-1]
	}
	cursor := make([]int32, n)
	copy(cursor, a.offsets[:n])
	for i := 0; i < m; i++ {
		p := cursor[from[i]]
		cursor[from[i]]++
		a.targets[p] = to[i]
		a.weights[p] = w[i]
		if ids != nil {
			a.ids[p] = ids[i]
		}
	}
	return a
}

// VertexCount reports the number of vertices n.
func (g *CSR) VertexCount() int { return g.n }

// EdgeCount reports the number of stored directed edges m
// (2× the input edge count for undirected graphs).
func (g *CSR) EdgeCount() int { return len(g.fwd.targets) }

// HasReverse reports whether the in-edge adjacency was built.
func (g *CSR) HasReverse() bool { return g.rev != nil }

// Degree reports the neighbor count of v in direction d.
// Reverse on a CSR built without WithReverse panics with ErrNoReverse.
func (g *CSR) Degree(v Vertex, d Dir) int {
	return g.adj(d).degree(v)
}

// EdgeAt returns the i-th neighbor of v in direction d.
func (g *CSR) EdgeAt(v Vertex, i int, d Dir) (Vertex, Edge, Weight) {
	a := g.adj(d)
	p := int(a.offsets[v]) + i
	e := Edge(p)
	if a.ids != nil {
		e = a.ids[p]
	}
	return a.targets[p], e, a.weights[p]
}

// Edges enumerates the neighbors of v in direction d in stable order,
// stopping early when fn returns false.
func (g *CSR) Edges(v Vertex, d Dir, fn func(to Vertex, e Edge, w Weight) bool) {
	a := g.adj(d)
	lo, hi := int(a.offsets[v]), int(a.offsets[v+1])
	for p := lo; p < hi; p++ {
		e := Edge(p)
		if a.ids != nil {
			e = a.ids[p]
		}
		if !fn(a.targets[p], e, a.weights[p]) {
			return
		}
	}
}

func (g *CSR) adj(d Dir) *adjacency {
	if d == Reverse {
		if g.rev == nil {
			panic(ErrNoReverse)
		}
		return g.rev
	}
	return &g.fwd
}
