package frontier

// Kind reports what a Frontier's identifiers denote.
type Kind int

const (
	// Vertices marks a frontier of vertex identifiers.
	Vertices Kind = iota
	// Edges marks a frontier of edge identifiers.
	Edges
)

// Frontier is a dynamic sequence of active element identifiers.
// The zero value is an empty vertex frontier ready for use.
type Frontier struct {
	kind  Kind
	items []int32
}

// New returns an empty frontier of the given kind with room for hint
// elements.
func New(kind Kind, hint int) *Frontier {
	return &Frontier{kind: kind, items: make([]int32, 0, hint)}
}

// Kind reports whether the frontier holds vertex or edge identifiers.
func (f *Frontier) Kind() Kind { return f.kind }

// SetKind relabels the frontier's element kind. Used by operators whose
// output element kind differs from their input's.
func (f *Frontier) SetKind(k Kind) { f.kind = k }

// Sequence replaces the contents with the contiguous identifier range
// [start, start+count).
func (f *Frontier) Sequence(start int32, count int) {
	f.items = f.items[:0]
	for i := 0; i < count; i++ {
		f.items = append(f.items, start+int32(i))
	}
}

// PushBack appends a single identifier.
func (f *Frontier) PushBack(id int32) {
	f.items = append(f.items, id)
}

// Append appends a batch of identifiers.
func (f *Frontier) Append(ids ...int32) {
	f.items = append(f.items, ids...)
}

// Clear empties the frontier, keeping its capacity.
func (f *Frontier) Clear() {
	f.items = f.items[:0]
}

// IsEmpty reports whether no active identifiers remain.
func (f *Frontier) IsEmpty() bool { return len(f.items) == 0 }

// Len reports the number of active identifiers.
func (f *Frontier) Len() int { return len(f.items) }

// At returns the i-th identifier.
func (f *Frontier) At(i int) int32 { return f.items[i] }

// Slice exposes the backing identifier slice. Read-only for callers;
// valid until the next mutating call.
func (f *Frontier) Slice() []int32 { return f.items }
