// Package geodesic computes chamfer distances from a marker set, measured
// along paths that stay inside a mask.
//
// Every non-zero marker sample is a source at distance 0. Distance spreads
// to mask samples equal to MaskLabel through the full symmetric neighborhood
// of a chamfer.Kernel, each move costing its class weight. Samples the
// distance cannot reach, and samples outside the mask, hold the maximum
// value of T.
//
// Algorithm:
//
//	Multi-source Dijkstra over the implicit grid graph: all markers are
//	pushed at distance 0, then samples are settled in increasing distance
//	order. A lazy decrease-key min-heap keeps duplicates and skips stale
//	entries when popped.
//
// Complexity:
//
//   - Time:  O(N·K·log N), N samples, K kernel neighbors (8, 16, 26 or 50).
//   - Space: O(N + N·K) worst case for the heap.
//
// With the background of a 0/255 mask used as the marker, the result equals
// the two-sweep map of package distmap on the foreground. The package serves
// as a reference for it and as the building block of geodesic measurements
// on labeled particles.
//
// Options:
//
//	– MaskLabel: traversable label, default 255, must be non-zero.
//	– Normalize: divide reached distances by weights[0], default false.
//	– Progress:  progress.Sink, default progress.Nop.
//
//	Phases reported: StatusInit, StatusPropagation and, when normalizing,
//	StatusNormalize; each ends with a (total, total) tick.
//
// Errors (sentinel):
//
//	– ErrNilKernel         if the kernel is nil.
//	– ErrDimensionMismatch if marker and mask extents differ, or the kernel
//	                       dimensionality differs from theirs.
//	– ErrBadMaskLabel      if MaskLabel is 0.
//	– grid.ErrEmptyGrid    if marker or mask is nil or empty.
package geodesic
