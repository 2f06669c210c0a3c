// Package distmap computes chamfer distance maps of 2D and 3D label masks.
//
// 🚀 What is a chamfer distance map?
//
//	For every foreground sample (mask value == MaskLabel) it holds the
//	length of the cheapest chain of chamfer moves to the nearest background
//	sample (mask value 0). Moves and their costs come from a chamfer.Kernel.
//
// ✨ Key features:
//   - one generic Engine[T] for every precision (uint8 ... float64) and every
//     chamfer.Neighborhood (3x3, 5x5, 3x3x3, 5x5x5);
//   - two raster sweeps, O(N·K) time, no auxiliary memory beyond the result;
//   - saturating arithmetic: integer accumulators never wrap;
//   - optional normalization by the orthogonal weight;
//   - multi-label masks: labels other than 0 and MaskLabel are left inert;
//   - progress reporting through a progress.Sink.
//
// Algorithm Outline:
//  1. Initialization: distance = 0 where mask == 0, else the maximum value of T.
//  2. Forward sweep: z, y, x ascending; for each MaskLabel sample,
//     d(p) = min(d(p), min over forward offsets o of d(p+o) + w(o)).
//  3. Backward sweep: z, y, x descending, with the reflected offsets.
//  4. Normalization (optional): reached samples are divided by weights[0].
//
// Two sweeps reach the fixed point because every cheapest chain can be
// reordered into moves that go forward in raster order followed by moves
// that go backward.
//
// ⚙️ Usage:
//
//	w, _ := chamfer.PresetWeights[float32](chamfer.ChessKnight, chamfer.Chamfer5x5)
//	eng, err := distmap.New(chamfer.Chamfer5x5, w, distmap.WithNormalize(true))
//	if err != nil {
//		// chamfer.ErrWeightCount, chamfer.ErrInvalidWeight, ...
//	}
//	dist, err := eng.DistanceMap(mask)
//
// Performance:
//
//   - Time:   O(N·K), N samples, K forward offsets (4, 8, 13 or 25).
//   - Memory: O(N) for the result.
//
// Engines are immutable and may be shared between goroutines; each call
// owns its result grid.
package distmap
