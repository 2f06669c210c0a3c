package distmap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/chamfer/grid"
)

// Stats summarizes the reached foreground samples of a distance map.
//
// Count – number of label samples holding a finite distance.
// Max   – largest distance, the radius of the largest inscribed chamfer ball.
// Mean  – arithmetic mean distance.
type Stats struct {
	Count int
	Max   float64
	Mean  float64
}

// Summarize computes Stats over the samples of dist where mask == label and
// the distance is not the sentinel. An empty selection yields the zero Stats.
// Returns ErrDimensionMismatch when dist and mask differ in shape.
func Summarize[T grid.Sample](dist *grid.Grid[T], mask *grid.Mask, label uint8) (Stats, error) {
	if dist == nil || mask == nil {
		return Stats{}, grid.ErrEmptyGrid
	}
	if !grid.SameShape(dist, mask) {
		return Stats{}, ErrDimensionMismatch
	}

	sentinel := grid.MaxValue[T]()
	m := mask.Data()
	vals := make([]float64, 0, len(m))
	for i, v := range dist.Data() {
		if m[i] == label && v != sentinel {
			vals = append(vals, float64(v))
		}
	}
	if len(vals) == 0 {
		return Stats{}, nil
	}

	return Stats{
		Count: len(vals),
		Max:   floats.Max(vals),
		Mean:  stat.Mean(vals, nil),
	}, nil
}
