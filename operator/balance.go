package operator

// Span is one lane's slice of the frontier's combined edge workload,
// expressed as the half-open range [Lo, Hi) of global edge offsets.
// Offset k is the k-th edge in frontier order, i.e. the prefix-sum space
// prefix[i] ≤ k < prefix[i+1] locates it inside element i's adjacency.
type Span struct {
	Lo, Hi int64
}

// Balancer partitions the cumulative edge workload of a frontier across
// execution lanes. prefix has length elements+1 with prefix[0] == 0 and
// prefix[i+1]-prefix[i] the degree of element i; the returned spans are
// disjoint, ordered, and cover [0, prefix[elements]) exactly. At most
// lanes spans are returned.
type Balancer interface {
	// Name identifies the strategy in logs and benchmarks.
	Name() string

	// Partition computes the per-lane spans; lanes ≥ 1.
	Partition(prefix []int64, lanes int) []Span
}

// MergePath splits the total edge count into near-equal contiguous
// chunks regardless of which element an edge belongs to, so lane
// occupancy stays balanced under any degree distribution. A chunk
// boundary falling inside a high-degree element simply hands the rest of
// that element's adjacency to the next lane.
type MergePath struct{}

// Name implements Balancer.
func (MergePath) Name() string { return "merge-path" }

// Partition implements Balancer: ceil(total/lanes)-sized edge chunks.
func (MergePath) Partition(prefix []int64, lanes int) []Span {
	total := prefix[len(prefix)-1]
	if total == 0 {
		return nil
	}
	chunk := (total + int64(lanes) - 1) / int64(lanes)
	spans := make([]Span, 0, lanes)
	for lo := int64(0); lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
	}
	return spans
}

// PerElement assigns contiguous chunks of frontier elements to lanes,
// the naive one-lane-per-vertex-range mapping. Kept as the contrast
// strategy: correct for every workload, badly skewed when a few hubs
// dominate the edge count.
type PerElement struct{}

// Name implements Balancer.
func (PerElement) Name() string { return "per-element" }

// Partition implements Balancer: element-aligned spans, so no element's
// adjacency is ever split between lanes.
func (PerElement) Partition(prefix []int64, lanes int) []Span {
	elements := len(prefix) - 1
	if elements == 0 || prefix[elements] == 0 {
		return nil
	}
	chunk := (elements + lanes - 1) / lanes
	spans := make([]Span, 0, lanes)
	for e0 := 0; e0 < elements; e0 += chunk {
		e1 := e0 + chunk
		if e1 > elements {
			e1 = elements
		}
		if prefix[e0] == prefix[e1] {
			continue // all-zero-degree stretch carries no work
		}
		spans = append(spans, Span{Lo: prefix[e0], Hi: prefix[e1]})
	}
	return spans
}
