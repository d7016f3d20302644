// Package graph core types, sentinel errors, and construction options.
package graph

import "errors"

// Vertex identifies a vertex; valid ids form the dense range [0, n).
type Vertex = int32

// Edge identifies an edge; valid ids form the dense range [0, m) in
// forward-adjacency order.
type Edge = int32

// Weight is the per-edge weight type. Unweighted inputs carry weight 1.
type Weight = float64

// Sentinel errors for graph construction.
var (
	// ErrNoVertices is returned when a graph is built with n < 1.
	ErrNoVertices = errors.New("graph: vertex count must be positive")

	// ErrVertexRange is returned when an edge endpoint is outside [0, n).
	ErrVertexRange = errors.New("graph: edge endpoint out of range")

	// ErrNoReverse is returned when Reverse adjacency is requested from a
	// CSR built without WithReverse.
	ErrNoReverse = errors.New("graph: reverse adjacency not built")
)

// Dir selects the traversal direction of neighbor enumeration.
type Dir int

const (
	// Forward enumerates out-edges (v → neighbor).
	Forward Dir = iota
	// Reverse enumerates in-edges (neighbor → v).
	Reverse
)

// EdgeListEntry is one input edge for NewCSR.
type EdgeListEntry struct {
	From, To Vertex
	Weight   Weight
}

// Graph is the read-only adjacency contract the engine consumes.
// Implementations must be safe for concurrent readers and must keep
// enumeration order stable for the duration of a run.
type Graph interface {
	// VertexCount reports n, the number of vertices.
	VertexCount() int

	// EdgeCount reports m, the number of (directed) edges stored forward.
	EdgeCount() int

	// Degree reports the number of neighbors of v in direction d.
	Degree(v Vertex, d Dir) int

	// EdgeAt returns the i-th neighbor of v in direction d, together with
	// the edge's id and weight. i must be in [0, Degree(v, d)).
	EdgeAt(v Vertex, i int, d Dir) (to Vertex, e Edge, w Weight)

	// Edges calls fn for each neighbor of v in direction d, in EdgeAt
	// order, stopping early when fn returns false.
	Edges(v Vertex, d Dir, fn func(to Vertex, e Edge, w Weight) bool)
}

// Option configures CSR construction.
type Option func(*csrOptions)

type csrOptions struct {
	undirected bool
	reverse    bool
}

// WithUndirected mirrors every input edge into both directions; each
// direction receives its own edge id. Algorithms that correct for the
// resulting double counting (e.g. betweenness centrality) expect this.
func WithUndirected() Option {
	return func(o *csrOptions) { o.undirected = true }
}

// WithReverse additionally builds the in-edge adjacency so the graph can
// be traversed in the Reverse direction.
func WithReverse() Option {
	return func(o *csrOptions) { o.reverse = true }
}
