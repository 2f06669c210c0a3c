package geodesic

import (
	"errors"

	"github.com/katalvlaran/chamfer/progress"
)

// Sentinel errors returned by the geodesic distance implementation.
var (
	// ErrNilKernel indicates that a nil *chamfer.Kernel was passed to DistanceMap.
	ErrNilKernel = errors.New("geodesic: kernel is nil")

	// ErrDimensionMismatch indicates that marker, mask and kernel do not share
	// the same dimensionality and extents.
	ErrDimensionMismatch = errors.New("geodesic: dimension mismatch")

	// ErrBadMaskLabel indicates MaskLabel 0, which is reserved for background.
	ErrBadMaskLabel = errors.New("geodesic: mask label must be non-zero")
)

// Status strings reported to the progress sink.
const (
	StatusInit        = "Initialization"
	StatusPropagation = "Propagation"
	StatusNormalize   = "Normalization"
)

// Options configures DistanceMap.
//
// MaskLabel – mask value of the positions the distance may travel through.
// Normalize – if true, reached distances are divided by the kernel's weights[0].
// Progress  – receives status and progress notifications; never nil.
type Options struct {
	MaskLabel uint8
	Normalize bool
	Progress  progress.Sink
}

// Option represents a functional option for configuring DistanceMap.
type Option func(*Options)

// WithMaskLabel selects the traversable mask label. Must be non-zero.
func WithMaskLabel(label uint8) Option {
	return func(o *Options) {
		o.MaskLabel = label
	}
}

// WithNormalize toggles division of reached distances by weights[0].
func WithNormalize(normalize bool) Option {
	return func(o *Options) {
		o.Normalize = normalize
	}
}

// WithProgress sets the progress sink. A nil sink selects progress.Nop.
func WithProgress(sink progress.Sink) Option {
	return func(o *Options) {
		if sink == nil {
			sink = progress.Nop{}
		}
		o.Progress = sink
	}
}

// DefaultOptions returns the configuration used when no Option is given.
//
// Defaults:
//   - MaskLabel: 255
//   - Normalize: false
//   - Progress:  progress.Nop{}
func DefaultOptions() Options {
	return Options{
		MaskLabel: 255,
		Normalize: false,
		Progress:  progress.Nop{},
	}
}
