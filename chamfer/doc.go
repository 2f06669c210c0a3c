// Package chamfer turns a chamfer weight set into the ordered, weighted
// neighbor offsets that drive raster-scan distance transforms.
//
// What:
//
//   - Neighborhood selects dimensionality and radius: Chamfer3x3, Chamfer5x5,
//     Chamfer3x3x3 and Chamfer5x5x5.
//   - A weight set is an ordered slice with one weight per weight class,
//     classes sorted by increasing geometric length:
//     orthogonal, diagonal, knight (2,1) in 2D;
//     orthogonal, face diagonal, cube diagonal, knight (2,1,1) in 3D.
//   - Kernel holds the weights plus two offset lists: Forward, whose offsets
//     all point to positions visited earlier in raster order (z, then y,
//     then x ascending), and Backward, the point reflection of Forward.
//   - Preset names the classic weight sets (city-block, chessboard,
//     Borgefors, chess-knight, quasi-Euclidean) and fits them to a
//     neighborhood.
//
// Offsets are generated, not listed by hand: every integer vector within the
// radius is classified by its sorted absolute components and kept only when
// that class belongs to the neighborhood.
//
//	Chamfer5x5 forward offsets (o = current position, * = offset):
//
//	  . * . * .
//	  * * * * *
//	  . * o . .
//
// Kernels are immutable and safe for concurrent use.
//
// Errors:
//
//   - ErrUnknownNeighborhood: neighborhood constant out of range.
//   - ErrWeightCount: number of weights differs from the neighborhood's class count.
//   - ErrInvalidWeight: a weight is negative or NaN.
//   - ErrUnknownPreset, ErrPresetMismatch: preset lookup and fitting failures.
package chamfer
