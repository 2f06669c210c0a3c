package distmap

import (
	"fmt"

	"github.com/katalvlaran/chamfer/chamfer"
	"github.com/katalvlaran/chamfer/grid"
	"github.com/katalvlaran/chamfer/progress"
)

// Engine computes chamfer distance maps with a fixed kernel and options.
// It holds no per-call state and is safe for concurrent use.
type Engine[T grid.Sample] struct {
	kernel   *chamfer.Kernel[T]
	forward  []chamfer.WeightedOffset[T]
	backward []chamfer.WeightedOffset[T]
	options  Options
}

// New builds the kernel for n and weights, then the engine.
// Configuration errors (chamfer.ErrWeightCount, chamfer.ErrInvalidWeight,
// chamfer.ErrUnknownNeighborhood, ErrBadMaskLabel) are returned here,
// before any grid is touched.
func New[T grid.Sample](n chamfer.Neighborhood, weights []T, opts ...Option) (*Engine[T], error) {
	k, err := chamfer.NewKernel(n, weights)
	if err != nil {
		return nil, err
	}

	return NewWithKernel(k, opts...)
}

// NewWithKernel builds an engine around an existing, possibly shared, kernel.
func NewWithKernel[T grid.Sample](k *chamfer.Kernel[T], opts ...Option) (*Engine[T], error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaskLabel == 0 {
		return nil, ErrBadMaskLabel
	}

	return &Engine[T]{
		kernel:   k,
		forward:  k.Forward(),
		backward: k.Backward(),
		options:  cfg,
	}, nil
}

// Compute is a one-shot helper: New followed by DistanceMap.
func Compute[T grid.Sample](mask *grid.Mask, n chamfer.Neighborhood, weights []T, opts ...Option) (*grid.Grid[T], error) {
	e, err := New(n, weights, opts...)
	if err != nil {
		return nil, err
	}

	return e.DistanceMap(mask)
}

// Kernel returns the engine's kernel.
func (e *Engine[T]) Kernel() *chamfer.Kernel[T] {
	return e.kernel
}

// Options returns a copy of the engine's configuration.
func (e *Engine[T]) Options() Options {
	return e.options
}

// DistanceMap returns a new grid, with the extents of mask, holding:
//   - 0 where mask == 0;
//   - the chamfer distance to the nearest 0 where mask == MaskLabel,
//     divided by weights[0] when normalization is enabled;
//   - grid.MaxValue[T]() where mask holds another label, or where no
//     background is reachable.
//
// Returns grid.ErrEmptyGrid for a nil or empty mask and ErrDimensionMismatch
// when the mask dimensionality differs from the kernel's.
//
// Complexity: O(N·K) time, O(N) memory.
func (e *Engine[T]) DistanceMap(mask *grid.Mask) (*grid.Grid[T], error) {
	// 1) Validate the mask is present and non-empty.
	if mask == nil || mask.Len() == 0 {
		return nil, grid.ErrEmptyGrid
	}

	// 2) Validate the mask dimensionality matches the kernel.
	if mask.Dims() != e.kernel.Dims() {
		return nil, fmt.Errorf("%w: %dD mask, %s kernel",
			ErrDimensionMismatch, mask.Dims(), e.kernel.Neighborhood())
	}

	// 3) Allocate the result and per-call state; the engine stays untouched.
	r := newRunner(e, mask)

	// 4) Seed background with 0 and everything else with the sentinel.
	r.init()

	// 5) Forward sweep, then backward sweep with the reflected offsets.
	r.sweep(e.forward, false)
	r.sweep(e.backward, true)

	// 6) Optionally express distances in units of the orthogonal step.
	if e.options.Normalize {
		r.normalize(e.kernel.Unit())
	}

	return r.dist, nil
}

// runner holds the mutable state of a single DistanceMap call.
type runner[T grid.Sample] struct {
	mask   []uint8
	data   []T
	dist   *grid.Grid[T]
	sx     int
	sy     int
	sz     int
	dims   int
	label  uint8
	max    T
	sink   progress.Sink
	deltas []int // linear index delta of each offset, reused by both sweeps
}

func newRunner[T grid.Sample](e *Engine[T], mask *grid.Mask) *runner[T] {
	dist := grid.NewLike[T](mask)

	return &runner[T]{
		mask:   mask.Data(),
		data:   dist.Data(),
		dist:   dist,
		sx:     mask.SizeX(),
		sy:     mask.SizeY(),
		sz:     mask.SizeZ(),
		dims:   mask.Dims(),
		label:  e.options.MaskLabel,
		max:    grid.MaxValue[T](),
		sink:   e.options.Progress,
		deltas: make([]int, len(e.forward)),
	}
}

// units returns the number of outer-scan units: planes in 3D, rows in 2D.
func (r *runner[T]) units() int {
	if r.dims == 3 {
		return r.sz
	}

	return r.sy
}

// init sets background to 0 and everything else to the sentinel.
func (r *runner[T]) init() {
	// 1) Announce the phase.
	r.sink.StatusChanged(StatusInit)

	// 2) Background (mask 0) is at distance 0; every other label starts
	//    unreached. Inert labels keep the sentinel for good.
	for i, m := range r.mask {
		if m == 0 {
			r.data[i] = 0
		} else {
			r.data[i] = r.max
		}
	}

	// 3) Initialization is a single unit of work.
	r.sink.ProgressChanged(1, 1)
}

// sweep relaxes every MaskLabel sample against offsets, in ascending raster
// order, or descending when backward is set. Offsets must only reference
// samples already visited in that order.
func (r *runner[T]) sweep(offsets []chamfer.WeightedOffset[T], backward bool) {
	// 1) Announce the phase.
	if backward {
		r.sink.StatusChanged(StatusBackward)
	} else {
		r.sink.StatusChanged(StatusForward)
	}

	// 2) Precompute the linear index delta of each offset for this grid.
	for i, o := range offsets {
		r.deltas[i] = (o.DZ*r.sy+o.DY)*r.sx + o.DX
	}

	// 3) Visit every sample in raster order (reversed for the backward
	//    sweep), ticking progress once per row in 2D or per plane in 3D.
	total := r.units()
	step := 0
	for zi := 0; zi < r.sz; zi++ {
		z := zi
		if backward {
			z = r.sz - 1 - zi
		}
		for yi := 0; yi < r.sy; yi++ {
			y := yi
			if backward {
				y = r.sy - 1 - yi
			}
			if r.dims == 2 || yi == 0 {
				r.sink.ProgressChanged(step, total)
				step++
			}
			for xi := 0; xi < r.sx; xi++ {
				x := xi
				if backward {
					x = r.sx - 1 - xi
				}
				r.relax(x, y, z, offsets)
			}
		}
	}

	// 4) Report completion of the sweep.
	r.sink.ProgressChanged(total, total)
}

// relax lowers d(x,y,z) to the cheapest in-bounds neighbor plus its weight.
// The minimum over all offsets is computed first and stored once.
func (r *runner[T]) relax(x, y, z int, offsets []chamfer.WeightedOffset[T]) {
	// 1) Only MaskLabel samples are updated.
	idx := (z*r.sy+y)*r.sx + x
	if r.mask[idx] != r.label {
		return
	}

	// 2) Take the cheapest in-bounds neighbor plus its class weight.
	best := r.data[idx]
	for i, o := range offsets {
		x2, y2, z2 := x+o.DX, y+o.DY, z+o.DZ
		if x2 < 0 || x2 >= r.sx || y2 < 0 || y2 >= r.sy || z2 < 0 || z2 >= r.sz {
			continue
		}
		v := r.data[idx+r.deltas[i]]

		// Saturate: v + w would reach the sentinel, so the neighbor is
		// treated as unreached.
		if v >= r.max-o.Weight {
			continue
		}
		if c := v + o.Weight; c < best {
			best = c
		}
	}

	// 3) Store once.
	r.data[idx] = best
}

// normalize divides every reached MaskLabel sample by unit. Unreached samples
// keep the sentinel. A zero unit leaves the map unchanged.
func (r *runner[T]) normalize(unit T) {
	r.sink.StatusChanged(StatusNormalize)
	total := r.units()
	if unit == 0 {
		r.sink.ProgressChanged(total, total)
		return
	}

	perUnit := r.sx
	if r.dims == 3 {
		perUnit = r.sx * r.sy
	}
	for i := range r.data {
		if i%perUnit == 0 {
			r.sink.ProgressChanged(i/perUnit, total)
		}
		if r.mask[i] == r.label && r.data[i] != r.max {
			r.data[i] /= unit
		}
	}
	r.sink.ProgressChanged(total, total)
}
