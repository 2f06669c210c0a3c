package chamfer

import (
	"fmt"

	"github.com/katalvlaran/chamfer/grid"
)

// NewKernel expands weights into the forward and backward offset lists of n.
//
// Validation (in order, before any allocation):
//  1. n must be a defined neighborhood (ErrUnknownNeighborhood).
//  2. len(weights) must equal n.Classes() (ErrWeightCount).
//  3. every weight must be non-negative and not NaN (ErrInvalidWeight).
//
// A zero weight is accepted; it yields zero-cost moves and degenerate maps.
//
// Complexity: O((2r+1)^D) time and memory.
func NewKernel[T grid.Sample](n Neighborhood, weights []T) (*Kernel[T], error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNeighborhood, int(n))
	}
	if len(weights) != n.Classes() {
		return nil, fmt.Errorf("%w: %s needs %d weights, got %d",
			ErrWeightCount, n, n.Classes(), len(weights))
	}
	for i, w := range weights {
		if w < 0 || w != w {
			return nil, fmt.Errorf("%w: weights[%d]=%v", ErrInvalidWeight, i, w)
		}
	}

	ws := make([]T, len(weights))
	copy(ws, weights)

	forward := forwardOffsets(n)
	k := &Kernel[T]{
		neighborhood: n,
		weights:      ws,
		forward:      make([]WeightedOffset[T], len(forward)),
		backward:     make([]WeightedOffset[T], len(forward)),
	}
	for i, o := range forward {
		w := ws[o.class]
		k.forward[i] = WeightedOffset[T]{DX: o.dx, DY: o.dy, DZ: o.dz, Class: o.class, Weight: w}
		k.backward[i] = WeightedOffset[T]{DX: -o.dx, DY: -o.dy, DZ: -o.dz, Class: o.class, Weight: w}
	}

	return k, nil
}

// offset is an unweighted displacement tagged with its weight class.
type offset struct {
	dx, dy, dz int
	class      int
}

// forwardOffsets enumerates the offsets of n that point to positions strictly
// before the origin in raster order, sorted in ascending raster order.
func forwardOffsets(n Neighborhood) []offset {
	spec := neighborhoods[n]
	r := spec.radius
	zr := 0
	if spec.dims == 3 {
		zr = r
	}

	var out []offset
	for dz := -zr; dz <= zr; dz++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if !precedes(dx, dy, dz) {
					continue
				}
				class, ok := spec.classes[classOf(dx, dy, dz)]
				if !ok {
					continue
				}
				out = append(out, offset{dx: dx, dy: dy, dz: dz, class: class})
			}
		}
	}

	return out
}

// precedes reports whether the offset's leading non-zero coordinate, taken
// in (z, y, x) order, is negative.
func precedes(dx, dy, dz int) bool {
	if dz != 0 {
		return dz < 0
	}
	if dy != 0 {
		return dy < 0
	}

	return dx < 0
}

// classOf returns the absolute components of an offset sorted descending.
func classOf(dx, dy, dz int) classKey {
	k := classKey{abs(dx), abs(dy), abs(dz)}
	if k[0] < k[1] {
		k[0], k[1] = k[1], k[0]
	}
	if k[1] < k[2] {
		k[1], k[2] = k[2], k[1]
	}
	if k[0] < k[1] {
		k[0], k[1] = k[1], k[0]
	}

	return k
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Neighborhood returns the mask shape the kernel was built for.
func (k *Kernel[T]) Neighborhood() Neighborhood {
	return k.neighborhood
}

// Dims returns the dimensionality of the kernel: 2 or 3.
func (k *Kernel[T]) Dims() int {
	return k.neighborhood.Dims()
}

// Weights returns a copy of the weight set, one weight per class.
func (k *Kernel[T]) Weights() []T {
	out := make([]T, len(k.weights))
	copy(out, k.weights)

	return out
}

// Unit returns the orthogonal weight, the divisor used for normalization.
func (k *Kernel[T]) Unit() T {
	return k.weights[0]
}

// Forward returns a copy of the forward-sweep offsets in ascending raster order.
func (k *Kernel[T]) Forward() []WeightedOffset[T] {
	return append([]WeightedOffset[T](nil), k.forward...)
}

// Backward returns a copy of the backward-sweep offsets; Backward()[i] is the
// reflection of Forward()[i].
func (k *Kernel[T]) Backward() []WeightedOffset[T] {
	return append([]WeightedOffset[T](nil), k.backward...)
}

// Neighbors returns the full symmetric neighborhood: Forward followed by Backward.
func (k *Kernel[T]) Neighbors() []WeightedOffset[T] {
	out := make([]WeightedOffset[T], 0, 2*len(k.forward))
	out = append(out, k.forward...)

	return append(out, k.backward...)
}
