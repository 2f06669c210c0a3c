// Package grid provides the dense 2D and 3D sample arrays that the chamfer
// distance transforms read from and write into.
//
// What:
//
//   - Grid[T] is a row-major array of samples with explicit dimensionality
//     (2 or 3) and extents SizeX × SizeY × SizeZ (SizeZ = 1 in 2D).
//   - Mask is Grid[uint8], the input type of every transform.
//   - Sample is the closed set of accumulator types: uint8, uint16, int16,
//     int32, int64, float32 and float64.
//
// Indexing:
//
//	index = (z*SizeY + y)*SizeX + x
//
// At and Set are bounds-checked and return ErrOutOfRange. Data exposes the
// backing slice for algorithms that validate coordinates themselves.
//
// Complexity:
//
//   - New, From2D, From3D: O(N) time and memory, N = SizeX·SizeY·SizeZ.
//   - At, Set, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows, columns or planes.
//   - ErrNonRectangular: rows (or planes) have differing lengths.
//   - ErrBadShape: requested extents are not positive.
//   - ErrOutOfRange: coordinates outside the grid.
package grid
