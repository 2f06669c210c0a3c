package chamfer

import (
	"fmt"

	"github.com/katalvlaran/chamfer/grid"
)

// Preset names a classic chamfer weight set.
type Preset int

const (
	// CityBlock approximates the L1 metric in 2D: (1, 2).
	CityBlock Preset = iota
	// Chessboard approximates the L∞ metric in 2D: (1, 1).
	Chessboard
	// Weights23 uses (2, 3).
	Weights23
	// Borgefors uses the (3, 4) weights recommended by Borgefors for 3x3 masks.
	Borgefors
	// ChessKnight uses (5, 7, 11), a close Euclidean approximation on 5x5 masks.
	ChessKnight
	// CityBlock3D approximates the L1 metric in 3D: (1, 2, 3).
	CityBlock3D
	// Chessboard3D approximates the L∞ metric in 3D: (1, 1, 1).
	Chessboard3D
	// Borgefors3D uses (3, 4, 5).
	Borgefors3D
	// QuasiEuclidean3D uses (10, 14, 17).
	QuasiEuclidean3D
	// Weights3457 uses (3, 4, 5, 7) on 5x5x5 masks.
	Weights3457
)

type presetSpec struct {
	name    string
	dims    int
	weights []int
}

var presets = map[Preset]presetSpec{
	CityBlock:        {"City-Block (1,2)", 2, []int{1, 2}},
	Chessboard:       {"Chessboard (1,1)", 2, []int{1, 1}},
	Weights23:        {"Weights (2,3)", 2, []int{2, 3}},
	Borgefors:        {"Borgefors (3,4)", 2, []int{3, 4}},
	ChessKnight:      {"Chessknight (5,7,11)", 2, []int{5, 7, 11}},
	CityBlock3D:      {"City-Block (1,2,3)", 3, []int{1, 2, 3}},
	Chessboard3D:     {"Chessboard (1,1,1)", 3, []int{1, 1, 1}},
	Borgefors3D:      {"Borgefors (3,4,5)", 3, []int{3, 4, 5}},
	QuasiEuclidean3D: {"Quasi-Euclidean (10,14,17)", 3, []int{10, 14, 17}},
	Weights3457:      {"Weights (3,4,5,7)", 3, []int{3, 4, 5, 7}},
}

// Presets lists the catalog in declaration order.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for p := CityBlock; p <= Weights3457; p++ {
		out = append(out, p)
	}

	return out
}

// String returns the display name, e.g. "Borgefors (3,4)".
func (p Preset) String() string {
	if s, ok := presets[p]; ok {
		return s.name
	}

	return "unknown"
}

// Dims returns the dimensionality the preset is defined for, or 0.
func (p Preset) Dims() int {
	return presets[p].dims
}

// Values returns a copy of the preset's own weights.
func (p Preset) Values() []int {
	return append([]int(nil), presets[p].weights...)
}

// PresetWeights fits preset p to neighborhood n and converts it to T.
//
// Fitting rules:
//   - classes beyond n.Classes() are dropped;
//   - a missing 2D knight weight is w0 + w1 (one orthogonal plus one diagonal step);
//   - a missing 3D knight weight is min(w0 + w2, 2·w1).
//
// Returns ErrUnknownPreset, ErrUnknownNeighborhood, ErrPresetMismatch when
// the dimensionalities differ, or ErrWeightCount when a class cannot be derived.
func PresetWeights[T grid.Sample](p Preset, n Neighborhood) ([]T, error) {
	spec, ok := presets[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNeighborhood, int(n))
	}
	if spec.dims != n.Dims() {
		return nil, fmt.Errorf("%w: %s is %dD, %s is %dD", ErrPresetMismatch, p, spec.dims, n, n.Dims())
	}

	w := append([]int(nil), spec.weights...)
	need := n.Classes()
	if len(w) < need {
		switch {
		case n == Chamfer5x5 && len(w) == 2:
			w = append(w, w[0]+w[1])
		case n == Chamfer5x5x5 && len(w) == 3:
			w = append(w, min(w[0]+w[2], 2*w[1]))
		default:
			return nil, fmt.Errorf("%w: %s has %d weights, %s needs %d", ErrWeightCount, p, len(w), n, need)
		}
	}

	out := make([]T, need)
	for i := range out {
		out[i] = T(w[i])
	}

	return out, nil
}

// PresetKernel is PresetWeights followed by NewKernel.
func PresetKernel[T grid.Sample](p Preset, n Neighborhood) (*Kernel[T], error) {
	w, err := PresetWeights[T](p, n)
	if err != nil {
		return nil, err
	}

	return NewKernel(n, w)
}
