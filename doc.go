// Package chamfer is an in-memory toolkit for chamfer distance transforms of
// 2D images and 3D volumes.
//
// 🚀 What is a chamfer distance transform?
//
//	For every foreground sample of a mask it computes the length of the
//	cheapest chain of small integer moves to the nearest background sample.
//	Each move class (orthogonal, diagonal, knight ...) has a weight, and the
//	weight set decides how closely the result approximates Euclidean distance.
//
// ✨ Packages:
//
//	grid/      dense 2D/3D sample arrays; Mask is the uint8 input type
//	chamfer/   neighborhoods, weight sets, presets and the ordered forward
//	           and backward offset lists built from them
//	distmap/   the two-sweep distance-map engine, generic over the
//	           accumulator type, plus summary statistics
//	geodesic/  marker-to-mask distances constrained to a mask, by Dijkstra
//	progress/  status and progress sinks (no-op, recorder, zerolog)
//
// Quick example:
//
//	mask, _ := grid.From2D([][]uint8{
//		{0, 0, 0, 0, 0},
//		{0, 255, 255, 255, 0},
//		{0, 0, 0, 0, 0},
//	})
//	dist, err := distmap.Compute(mask, chamfer.Chamfer3x3, []int32{3, 4})
//	// dist row 1: [0 1 1 1 0]
//
//	go get github.com/katalvlaran/chamfer
package chamfer
