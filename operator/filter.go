package operator

import (
	"sync"

	"github.com/angeil/essentials/frontier"
)

// Filter contracts the input frontier vertex-parallel: op is evaluated
// exactly once per input element — no duplication, no omission — and out
// receives only the elements for which it returned true, in input order.
// Unlike Advance, which may reach a vertex through several edges, Filter
// is the right place for exactly-once local state transitions.
//
// out is cleared first. Returns ErrFrontierNil, ErrPredicateNil or
// ErrOptionViolation on invalid input.
func Filter(in, out *frontier.Frontier, op FilterOp, opts ...Option) error {
	if in == nil || out == nil {
		return ErrFrontierNil
	}
	if op == nil {
		return ErrPredicateNil
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	out.Clear()
	out.SetKind(in.Kind())
	if in.IsEmpty() {
		return nil
	}

	items := in.Slice()
	lanes := o.Lanes
	if lanes > len(items) {
		lanes = len(items)
	}
	chunk := (len(items) + lanes - 1) / lanes

	locals := make([][]int32, lanes)
	var wg sync.WaitGroup
	for li := 0; li < lanes; li++ {
		lo := li * chunk
		hi := lo + chunk
		if hi > len(items) {
			hi = len(items)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(li, lo, hi int) {
			defer wg.Done()
			var buf []int32
			for _, id := range items[lo:hi] {
				if op(id) {
					buf = append(buf, id)
				}
			}
			locals[li] = buf
		}(li, lo, hi)
	}
	wg.Wait()

	for _, buf := range locals {
		out.Append(buf...)
	}
	return nil
}
