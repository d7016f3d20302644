package operator

import (
	"sort"
	"sync"

	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/graph"
)

// Advance expands the input frontier edge-parallel: every edge incident
// to every input element is visited under op, in the configured
// direction, and qualifying destinations (or edge ids, per WithOutput)
// are appended to out. Visitation order across lanes is unspecified;
// every qualifying edge is visited exactly once per call.
//
// out is cleared first and may alias a frontier from a previous round;
// with WithNoOutput it may be nil. Returns ErrGraphNil, ErrFrontierNil,
// ErrPredicateNil, ErrInputKind or ErrOptionViolation on invalid input.
func Advance(g graph.Graph, in, out *frontier.Frontier, op AdvanceOp, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if in == nil {
		return ErrFrontierNil
	}
	if op == nil {
		return ErrPredicateNil
	}
	if in.Kind() != frontier.Vertices {
		return ErrInputKind
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if !o.NoOutput {
		if out == nil {
			return ErrFrontierNil
		}
		out.Clear()
		out.SetKind(o.Output)
	}
	if in.IsEmpty() {
		return nil
	}

	items := in.Slice()
	// Cumulative degree of the frontier: the workload the balancer splits.
	prefix := make([]int64, len(items)+1)
	for i, v := range items {
		prefix[i+1] = prefix[i] + int64(g.Degree(v, o.Dir))
	}
	spans := o.Balancer.Partition(prefix, o.Lanes)
	if len(spans) == 0 {
		return nil
	}

	locals := make([][]int32, len(spans))
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for li, sp := range spans {
		go func(li int, sp Span) {
			defer wg.Done()
			locals[li] = advanceSpan(g, items, prefix, sp, &o, op)
		}(li, sp)
	}
	wg.Wait()

	if !o.NoOutput {
		for _, buf := range locals {
			out.Append(buf...)
		}
	}
	return nil
}

// advanceSpan walks one lane's edge-offset range, mapping offsets back to
// (frontier element, adjacency position) pairs via the prefix array.
func advanceSpan(g graph.Graph, items []int32, prefix []int64, sp Span, o *Options, op AdvanceOp) []int32 {
	var buf []int32
	// First element whose adjacency contains offset sp.Lo.
	ei := sort.Search(len(items), func(i int) bool { return prefix[i+1] > sp.Lo })
	for off := sp.Lo; ei < len(items) && off < sp.Hi; ei++ {
		src := graph.Vertex(items[ei])
		deg := int(prefix[ei+1] - prefix[ei])
		pos := int(off - prefix[ei])
		for ; pos < deg && off < sp.Hi; pos, off = pos+1, off+1 {
			dst, e, w := g.EdgeAt(src, pos, o.Dir)
			if !op(src, dst, e, w) || o.NoOutput {
				continue
			}
			if o.Output == frontier.Edges {
				buf = append(buf, int32(e))
			} else {
				buf = append(buf, int32(dst))
			}
		}
	}
	return buf
}
