package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows, columns or planes.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one sample")
	// ErrNonRectangular indicates rows or planes of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadShape indicates non-positive extents or an unsupported dimensionality.
	ErrBadShape = errors.New("grid: invalid shape")
	// ErrOutOfRange indicates coordinates outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// Sample enumerates the numeric types a Grid may hold.
type Sample interface {
	uint8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// Grid is a dense 2D or 3D array of samples stored in row-major order.
// Extents are fixed at construction; only sample values change.
type Grid[T Sample] struct {
	sizeX, sizeY, sizeZ int
	dims                int
	data                []T
}

// Mask is the 8-bit label grid consumed by the distance transforms.
type Mask = Grid[uint8]
