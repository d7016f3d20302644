package operator_test

import (
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/angeil/essentials/frontier"
	"github.com/angeil/essentials/operator"
)

// TestFilter_ExactlyOnce verifies each input element is evaluated exactly
// once, including duplicate occurrences, which are distinct elements.
func TestFilter_ExactlyOnce(t *testing.T) {
	in := frontier.New(frontier.Vertices, 8)
	in.Append(1, 1, 2, 3, 3, 3)
	out := frontier.New(frontier.Vertices, 8)

	counts := make([]int32, 4)
	err := operator.Filter(in, out, func(v int32) bool {
		atomic.AddInt32(&counts[v], 1)
		return true
	}, operator.WithLanes(4))
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	want := []int32{0, 2, 1, 3}
	for v, c := range counts {
		if c != want[v] {
			t.Errorf("evaluations of %d = %d; want %d", v, c, want[v])
		}
	}
	if out.Len() != in.Len() {
		t.Errorf("all-true filter: out.Len = %d; want %d", out.Len(), in.Len())
	}
}

// TestFilter_KeepsOrder verifies survivors appear in input order.
func TestFilter_KeepsOrder(t *testing.T) {
	in := frontier.New(frontier.Vertices, 16)
	in.Sequence(0, 10)
	out := frontier.New(frontier.Vertices, 16)

	err := operator.Filter(in, out, func(v int32) bool { return v%2 == 0 }, operator.WithLanes(3))
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if want := []int32{0, 2, 4, 6, 8}; !reflect.DeepEqual(out.Slice(), want) {
		t.Errorf("survivors = %v; want %v", out.Slice(), want)
	}
}

// TestFilter_Empty ensures an empty input clears stale output.
func TestFilter_Empty(t *testing.T) {
	in := frontier.New(frontier.Vertices, 0)
	out := frontier.New(frontier.Vertices, 4)
	out.PushBack(7)

	if err := operator.Filter(in, out, func(int32) bool { return true }); err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if !out.IsEmpty() {
		t.Error("output not cleared for empty input")
	}
}

// TestFilter_Errors verifies the sentinel errors.
func TestFilter_Errors(t *testing.T) {
	in := frontier.New(frontier.Vertices, 0)
	out := frontier.New(frontier.Vertices, 0)
	if err := operator.Filter(nil, out, func(int32) bool { return true }); !errors.Is(err, operator.ErrFrontierNil) {
		t.Errorf("nil in: want ErrFrontierNil, got %v", err)
	}
	if err := operator.Filter(in, nil, func(int32) bool { return true }); !errors.Is(err, operator.ErrFrontierNil) {
		t.Errorf("nil out: want ErrFrontierNil, got %v", err)
	}
	if err := operator.Filter(in, out, nil); !errors.Is(err, operator.ErrPredicateNil) {
		t.Errorf("nil predicate: want ErrPredicateNil, got %v", err)
	}
	if err := operator.Filter(in, out, func(int32) bool { return true }, operator.WithLanes(-2)); !errors.Is(err, operator.ErrOptionViolation) {
		t.Errorf("negative lanes: want ErrOptionViolation, got %v", err)
	}
}

// TestForAll_Coverage checks every index of [0,n) is touched exactly once
// for an n not divisible by the lane count.
func TestForAll_Coverage(t *testing.T) {
	const n = 101
	touched := make([]int32, n)
	err := operator.ForAll(n, func(i int) {
		atomic.AddInt32(&touched[i], 1)
	}, operator.WithLanes(7))
	if err != nil {
		t.Fatalf("ForAll: %v", err)
	}
	for i, c := range touched {
		if c != 1 {
			t.Errorf("index %d touched %d times; want 1", i, c)
		}
	}
}

// TestForAll_Degenerate covers n == 0 and nil fn.
func TestForAll_Degenerate(t *testing.T) {
	if err := operator.ForAll(0, func(int) {}); err != nil {
		t.Errorf("n=0: unexpected error %v", err)
	}
	if err := operator.ForAll(4, nil); !errors.Is(err, operator.ErrPredicateNil) {
		t.Errorf("nil fn: want ErrPredicateNil, got %v", err)
	}
}
