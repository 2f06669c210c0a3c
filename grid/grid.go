package grid

import (
	"fmt"
	"math"
)

// New2D allocates a zero-filled 2D grid of sizeX columns and sizeY rows.
// Returns ErrBadShape if either extent is not positive.
// Complexity: O(sizeX·sizeY) time and memory.
func New2D[T Sample](sizeX, sizeY int) (*Grid[T], error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, sizeX, sizeY)
	}

	return &Grid[T]{
		sizeX: sizeX,
		sizeY: sizeY,
		sizeZ: 1,
		dims:  2,
		data:  make([]T, sizeX*sizeY),
	}, nil
}

// New3D allocates a zero-filled 3D grid of sizeX×sizeY×sizeZ samples.
// Returns ErrBadShape if any extent is not positive.
// Complexity: O(sizeX·sizeY·sizeZ) time and memory.
func New3D[T Sample](sizeX, sizeY, sizeZ int) (*Grid[T], error) {
	if sizeX <= 0 || sizeY <= 0 || sizeZ <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrBadShape, sizeX, sizeY, sizeZ)
	}

	return &Grid[T]{
		sizeX: sizeX,
		sizeY: sizeY,
		sizeZ: sizeZ,
		dims:  3,
		data:  make([]T, sizeX*sizeY*sizeZ),
	}, nil
}

// NewLike allocates a zero-filled grid with the same dimensionality and
// extents as ref, holding samples of type T.
func NewLike[T, U Sample](ref *Grid[U]) *Grid[T] {
	return &Grid[T]{
		sizeX: ref.sizeX,
		sizeY: ref.sizeY,
		sizeZ: ref.sizeZ,
		dims:  ref.dims,
		data:  make([]T, len(ref.data)),
	}
}

// From2D builds a 2D grid from a non-empty, rectangular slice indexed as
// values[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D[T Sample](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New2D[T](w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		copy(g.data[y*w:(y+1)*w], values[y])
	}

	return g, nil
}

// From3D builds a 3D grid from a non-empty slice indexed as values[z][y][x].
// Every plane must have the same number of rows and every row the same
// length. The input is deep-copied.
func From3D[T Sample](values [][][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	d, h, w := len(values), len(values[0]), len(values[0][0])
	for _, plane := range values {
		if len(plane) != h {
			return nil, ErrNonRectangular
		}
		for _, row := range plane {
			if len(row) != w {
				return nil, ErrNonRectangular
			}
		}
	}
	g, err := New3D[T](w, h, d)
	if err != nil {
		return nil, err
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			start := g.Index(0, y, z)
			copy(g.data[start:start+w], values[z][y])
		}
	}

	return g, nil
}

// SizeX returns the number of columns.
func (g *Grid[T]) SizeX() int {
	return g.sizeX
}

// SizeY returns the number of rows.
func (g *Grid[T]) SizeY() int {
	return g.sizeY
}

// SizeZ returns the number of planes; 1 for a 2D grid.
func (g *Grid[T]) SizeZ() int {
	return g.sizeZ
}

// Dims returns the dimensionality of the grid: 2 or 3.
func (g *Grid[T]) Dims() int {
	return g.dims
}

// Len returns the total number of samples.
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// Data returns the backing row-major slice. Writes through it are visible
// in the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// InBounds reports whether (x,y,z) lies within the grid.
// In 2D only z == 0 is in bounds.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.sizeX && y >= 0 && y < g.sizeY && z >= 0 && z < g.sizeZ
}

// Index maps (x,y,z) to a row-major index without bounds checks.
// Complexity: O(1).
func (g *Grid[T]) Index(x, y, z int) int {
	return (z*g.sizeY+y)*g.sizeX + x
}

// Coordinate converts a row-major index back to (x,y,z).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) (x, y, z int) {
	plane := g.sizeX * g.sizeY
	z = idx / plane
	rem := idx % plane

	return rem % g.sizeX, rem / g.sizeX, z
}

// At returns the sample at (x,y,z), or ErrOutOfRange.
func (g *Grid[T]) At(x, y, z int) (T, error) {
	if !g.InBounds(x, y, z) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d,%d)", ErrOutOfRange, x, y, z)
	}

	return g.data[g.Index(x, y, z)], nil
}

// Set stores v at (x,y,z), or returns ErrOutOfRange.
func (g *Grid[T]) Set(x, y, z int, v T) error {
	if !g.InBounds(x, y, z) {
		return fmt.Errorf("%w: (%d,%d,%d)", ErrOutOfRange, x, y, z)
	}
	g.data[g.Index(x, y, z)] = v

	return nil
}

// Fill assigns v to every sample.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := NewLike[T](g)
	copy(c.data, g.data)

	return c
}

// Rows returns a copy of plane z as values[y][x].
// Returns ErrOutOfRange if z is not a valid plane.
func (g *Grid[T]) Rows(z int) ([][]T, error) {
	if z < 0 || z >= g.sizeZ {
		return nil, fmt.Errorf("%w: plane %d", ErrOutOfRange, z)
	}
	rows := make([][]T, g.sizeY)
	for y := range rows {
		start := g.Index(0, y, z)
		rows[y] = make([]T, g.sizeX)
		copy(rows[y], g.data[start:start+g.sizeX])
	}

	return rows, nil
}

// SameShape reports whether a and b have identical dimensionality and extents.
func SameShape[T, U Sample](a *Grid[T], b *Grid[U]) bool {
	return a.dims == b.dims && a.sizeX == b.sizeX && a.sizeY == b.sizeY && a.sizeZ == b.sizeZ
}

// MaxValue returns the largest finite value representable by T. Distance
// transforms use it as the "not yet reached" sentinel.
func MaxValue[T Sample]() T {
	var zero T
	var v any
	switch any(zero).(type) {
	case uint8:
		v = uint8(math.MaxUint8)
	case uint16:
		v = uint16(math.MaxUint16)
	case int16:
		v = int16(math.MaxInt16)
	case int32:
		v = int32(math.MaxInt32)
	case int64:
		v = int64(math.MaxInt64)
	case float32:
		v = float32(math.MaxFloat32)
	default:
		v = float64(math.MaxFloat64)
	}

	return v.(T)
}
