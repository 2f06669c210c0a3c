package geodesic

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/chamfer/chamfer"
	"github.com/katalvlaran/chamfer/grid"
	"github.com/katalvlaran/chamfer/progress"
)

// DistanceMap returns, for every sample, the chamfer length of the cheapest
// path from a non-zero marker sample that stays on mask samples equal to
// MaskLabel.
//
// Preconditions and validation (in order, before any allocation):
//  1. k must be non-nil (ErrNilKernel).
//  2. MaskLabel must be non-zero (ErrBadMaskLabel).
//  3. marker and mask must be non-nil and non-empty (grid.ErrEmptyGrid).
//  4. marker and mask must share dimensionality and extents, and the
//     kernel must match that dimensionality (ErrDimensionMismatch).
//
// Result:
//   - 0 at marker samples;
//   - the geodesic distance at reached MaskLabel samples, divided by
//     weights[0] when Normalize is set;
//   - grid.MaxValue[T]() everywhere else.
//
// Complexity: O(N·K·log N) time, O(N·K) memory in the worst case.
func DistanceMap[T grid.Sample](marker, mask *grid.Mask, k *chamfer.Kernel[T], opts ...Option) (*grid.Grid[T], error) {
	// 1) Validate the kernel.
	if k == nil {
		return nil, ErrNilKernel
	}

	// 2) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaskLabel == 0 {
		return nil, ErrBadMaskLabel
	}

	// 3) Validate grids: present, same shape, same dimensionality as k.
	if marker == nil || mask == nil || marker.Len() == 0 || mask.Len() == 0 {
		return nil, grid.ErrEmptyGrid
	}
	if !grid.SameShape(marker, mask) {
		return nil, fmt.Errorf("%w: marker %dx%dx%d, mask %dx%dx%d", ErrDimensionMismatch,
			marker.SizeX(), marker.SizeY(), marker.SizeZ(), mask.SizeX(), mask.SizeY(), mask.SizeZ())
	}
	if mask.Dims() != k.Dims() {
		return nil, fmt.Errorf("%w: %dD grids, %s kernel",
			ErrDimensionMismatch, mask.Dims(), k.Neighborhood())
	}

	// 4) Allocate the result, settled flags and heap.
	r := newRunner(marker, mask, k, cfg)

	// 5) Seed every marker at distance 0, then settle samples in
	//    increasing distance order.
	r.init()
	r.process()

	// 6) Optionally express distances in units of the orthogonal step.
	if cfg.Normalize {
		r.normalize(k.Unit())
	}

	return r.dist, nil
}

// runner holds the mutable state for a single DistanceMap execution.
type runner[T grid.Sample] struct {
	marker  []uint8
	mask    []uint8
	dist    *grid.Grid[T]
	data    []T
	settled []bool
	pq      itemPQ[T]
	moves   []chamfer.WeightedOffset[T]
	deltas  []int
	sx      int
	sy      int
	sz      int
	label   uint8
	max     T
	sink    progress.Sink
}

func newRunner[T grid.Sample](marker, mask *grid.Mask, k *chamfer.Kernel[T], cfg Options) *runner[T] {
	dist := grid.NewLike[T](mask)
	moves := k.Neighbors()
	deltas := make([]int, len(moves))
	for i, o := range moves {
		deltas[i] = (o.DZ*mask.SizeY()+o.DY)*mask.SizeX() + o.DX
	}

	return &runner[T]{
		marker:  marker.Data(),
		mask:    mask.Data(),
		dist:    dist,
		data:    dist.Data(),
		settled: make([]bool, mask.Len()),
		moves:   moves,
		deltas:  deltas,
		sx:      mask.SizeX(),
		sy:      mask.SizeY(),
		sz:      mask.SizeZ(),
		label:   cfg.MaskLabel,
		max:     grid.MaxValue[T](),
		sink:    cfg.Progress,
	}
}

// init sets every marker sample to 0, pushes it onto the heap, and every
// other sample to the sentinel.
func (r *runner[T]) init() {
	// 1) Announce the phase and prepare an empty heap.
	r.sink.StatusChanged(StatusInit)
	heap.Init(&r.pq)

	// 2) Markers are sources at 0 whatever their mask value; every other
	//    sample starts unreached.
	for i, m := range r.marker {
		if m != 0 {
			r.data[i] = 0
			heap.Push(&r.pq, item[T]{idx: i, dist: 0})
		} else {
			r.data[i] = r.max
		}
	}

	// 3) Initialization is a single unit of work.
	r.sink.ProgressChanged(1, 1)
}

// process settles samples in increasing distance order until the heap is empty.
// Progress is reported once per settled row's worth of samples.
func (r *runner[T]) process() {
	r.sink.StatusChanged(StatusPropagation)
	total := len(r.data)
	count := 0
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		it := heap.Pop(&r.pq).(item[T])

		// 2) Skip stale entries left behind by lazy decrease-key.
		if r.settled[it.idx] || it.dist > r.data[it.idx] {
			continue
		}

		// 3) Its distance is now final; relax its neighbors.
		r.settled[it.idx] = true
		r.relax(it.idx)

		// 4) Report progress once per row's worth of settled samples.
		count++
		if count%r.sx == 0 {
			r.sink.ProgressChanged(count, total)
		}
	}

	// 5) Unreachable samples never settle; close the phase explicitly.
	r.sink.ProgressChanged(total, total)
}

// relax improves every unsettled MaskLabel neighbor of idx.
func (r *runner[T]) relax(idx int) {
	// 1) Recover coordinates for the bounds checks.
	x := idx % r.sx
	y := (idx / r.sx) % r.sy
	z := idx / (r.sx * r.sy)
	d := r.data[idx]

	// 2) Try every move of the symmetric neighborhood.
	for i, o := range r.moves {
		x2, y2, z2 := x+o.DX, y+o.DY, z+o.DZ
		if x2 < 0 || x2 >= r.sx || y2 < 0 || y2 >= r.sy || z2 < 0 || z2 >= r.sz {
			continue
		}

		// Only unsettled MaskLabel samples may be entered.
		j := idx + r.deltas[i]
		if r.settled[j] || r.mask[j] != r.label {
			continue
		}

		// Saturate: d + w would reach the sentinel.
		if d >= r.max-o.Weight {
			continue
		}

		// 3) Strictly shorter: record it and push a fresh heap entry.
		if nd := d + o.Weight; nd < r.data[j] {
			r.data[j] = nd
			heap.Push(&r.pq, item[T]{idx: j, dist: nd})
		}
	}
}

// normalize divides reached non-marker samples by unit. A zero unit leaves
// the map unchanged.
func (r *runner[T]) normalize(unit T) {
	r.sink.StatusChanged(StatusNormalize)
	total := len(r.data)
	if unit != 0 {
		for i, v := range r.data {
			if v != 0 && v != r.max {
				r.data[i] = v / unit
			}
		}
	}
	r.sink.ProgressChanged(total, total)
}

// item is a sample index and its tentative distance.
type item[T grid.Sample] struct {
	idx  int
	dist T
}

// itemPQ is a min-heap of items ordered by dist, ties broken by index so the
// settle order is deterministic.
type itemPQ[T grid.Sample] []item[T]

func (pq itemPQ[T]) Len() int { return len(pq) }

func (pq itemPQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq itemPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ[T]) Push(x interface{}) { *pq = append(*pq, x.(item[T])) }

func (pq *itemPQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
