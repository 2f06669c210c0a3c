package chamfer

import (
	"errors"

	"github.com/katalvlaran/chamfer/grid"
)

// Sentinel errors returned by kernel construction and preset fitting.
var (
	// ErrUnknownNeighborhood indicates a Neighborhood value outside the defined constants.
	ErrUnknownNeighborhood = errors.New("chamfer: unknown neighborhood")

	// ErrWeightCount indicates the weight set does not have exactly one weight
	// per weight class of the neighborhood.
	ErrWeightCount = errors.New("chamfer: weight count does not match neighborhood")

	// ErrInvalidWeight indicates a negative or NaN weight.
	ErrInvalidWeight = errors.New("chamfer: weights must be non-negative numbers")

	// ErrUnknownPreset indicates a Preset value outside the catalog.
	ErrUnknownPreset = errors.New("chamfer: unknown preset")

	// ErrPresetMismatch indicates a preset defined for another dimensionality.
	ErrPresetMismatch = errors.New("chamfer: preset dimensionality does not match neighborhood")
)

// Neighborhood selects the dimensionality and radius of a chamfer mask.
type Neighborhood int

const (
	// Chamfer3x3 is the 2D radius-1 mask: orthogonal and diagonal weights.
	Chamfer3x3 Neighborhood = iota
	// Chamfer5x5 is the 2D radius-2 mask: orthogonal, diagonal and (2,1) knight weights.
	Chamfer5x5
	// Chamfer3x3x3 is the 3D radius-1 mask: orthogonal, face-diagonal and cube-diagonal weights.
	Chamfer3x3x3
	// Chamfer5x5x5 is the 3D radius-2 mask: the 3x3x3 classes plus the (2,1,1) knight.
	Chamfer5x5x5
)

// classKey is the sorted absolute value of an offset, largest first.
type classKey [3]int

// neighborhoodSpec describes the shape of a Neighborhood.
type neighborhoodSpec struct {
	name    string
	dims    int
	radius  int
	classes map[classKey]int
}

var neighborhoods = map[Neighborhood]neighborhoodSpec{
	Chamfer3x3: {
		name: "3x3", dims: 2, radius: 1,
		classes: map[classKey]int{{1, 0, 0}: 0, {1, 1, 0}: 1},
	},
	Chamfer5x5: {
		name: "5x5", dims: 2, radius: 2,
		classes: map[classKey]int{{1, 0, 0}: 0, {1, 1, 0}: 1, {2, 1, 0}: 2},
	},
	Chamfer3x3x3: {
		name: "3x3x3", dims: 3, radius: 1,
		classes: map[classKey]int{{1, 0, 0}: 0, {1, 1, 0}: 1, {1, 1, 1}: 2},
	},
	Chamfer5x5x5: {
		name: "5x5x5", dims: 3, radius: 2,
		classes: map[classKey]int{{1, 0, 0}: 0, {1, 1, 0}: 1, {1, 1, 1}: 2, {2, 1, 1}: 3},
	},
}

// Valid reports whether n is one of the defined neighborhoods.
func (n Neighborhood) Valid() bool {
	_, ok := neighborhoods[n]
	return ok
}

// Dims returns 2 or 3, or 0 for an unknown neighborhood.
func (n Neighborhood) Dims() int {
	return neighborhoods[n].dims
}

// Radius returns the mask radius: 1 for 3x3 masks, 2 for 5x5 masks.
func (n Neighborhood) Radius() int {
	return neighborhoods[n].radius
}

// Classes returns the number of weights the neighborhood requires.
func (n Neighborhood) Classes() int {
	return len(neighborhoods[n].classes)
}

// String returns the mask size, e.g. "5x5x5".
func (n Neighborhood) String() string {
	if s, ok := neighborhoods[n]; ok {
		return s.name
	}

	return "unknown"
}

// WeightedOffset is one neighbor displacement with the weight of its class.
type WeightedOffset[T grid.Sample] struct {
	DX, DY, DZ int
	Class      int // index into the weight set
	Weight     T
}

// Kernel is an immutable chamfer mask: a weight set expanded into forward and
// backward offset lists for one Neighborhood.
type Kernel[T grid.Sample] struct {
	neighborhood Neighborhood
	weights      []T
	forward      []WeightedOffset[T]
	backward     []WeightedOffset[T]
}
