package distmap

import (
	"errors"

	"github.com/katalvlaran/chamfer/progress"
)

// Sentinel errors returned by the distance-map engine.
var (
	// ErrNilKernel indicates NewWithKernel was given a nil kernel.
	ErrNilKernel = errors.New("distmap: kernel is nil")

	// ErrDimensionMismatch indicates grids whose dimensionality or extents do
	// not match each other or the kernel.
	ErrDimensionMismatch = errors.New("distmap: dimension mismatch")

	// ErrBadMaskLabel indicates MaskLabel 0, which is reserved for background.
	ErrBadMaskLabel = errors.New("distmap: mask label must be non-zero")
)

// DefaultMaskLabel is the mask value processed by default.
const DefaultMaskLabel uint8 = 255

// Status strings reported to the progress sink, in emission order.
const (
	StatusInit      = "Initialization"
	StatusForward   = "Forward scan"
	StatusBackward  = "Backward scan"
	StatusNormalize = "Normalization"
)

// Options configures an Engine.
//
// Normalize – divide reached distances by the orthogonal weight.
// MaskLabel – the only mask value whose distance is computed; must be non-zero.
// Progress  – receives status and progress notifications; never nil.
type Options struct {
	Normalize bool
	MaskLabel uint8
	Progress  progress.Sink
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithNormalize toggles division of the final map by weights[0].
// Only reached MaskLabel samples are divided: samples of other labels and
// unreached samples keep grid.MaxValue, unlike the reference transform,
// which divides every non-background sample.
func WithNormalize(normalize bool) Option {
	return func(o *Options) {
		o.Normalize = normalize
	}
}

// WithMaskLabel selects the foreground label. Samples with any other
// non-zero value keep the sentinel and are never updated.
func WithMaskLabel(label uint8) Option {
	return func(o *Options) {
		o.MaskLabel = label
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
//   - Normalize: true
//   - MaskLabel: DefaultMaskLabel (255)
//   - Progress:  progress.Nop{}
func DefaultOptions() Options {
	return Options{
		Normalize: true,
		MaskLabel: DefaultMaskLabel,
		Progress:  progress.Nop{},
	}
}
