package distmap

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chamfer/chamfer"
	"github.com/katalvlaran/chamfer/grid"
	"github.com/stretchr/testify/require"
)

// TestRunner_SweepsNeverIncrease drives the runner phase by phase and checks
// each sweep only lowers distances, and that a third sweep changes nothing.
func TestRunner_SweepsNeverIncrease(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	mask, err := grid.New2D[uint8](17, 13)
	require.NoError(t, err)
	for i := range mask.Data() {
		if rng.Intn(6) != 0 {
			mask.Data()[i] = 255
		}
	}

	e, err := New(chamfer.Chamfer5x5, []int32{5, 7, 11}, WithNormalize(false))
	require.NoError(t, err)

	r := newRunner(e, mask)
	r.init()
	initial := append([]int32(nil), r.data...)

	r.sweep(e.forward, false)
	afterForward := append([]int32(nil), r.data...)
	for i := range initial {
		require.LessOrEqual(t, afterForward[i], initial[i], "forward idx=%d", i)
	}

	r.sweep(e.backward, true)
	afterBackward := append([]int32(nil), r.data...)
	for i := range afterForward {
		require.LessOrEqual(t, afterBackward[i], afterForward[i], "backward idx=%d", i)
	}

	// fixed point
	r.sweep(e.forward, false)
	r.sweep(e.backward, true)
	require.Equal(t, afterBackward, r.data)
}

func TestRunner_NormalizeKeepsSentinel(t *testing.T) {
	mask, err := grid.From2D([][]uint8{{0, 255, 7, 255}})
	require.NoError(t, err)
	e, err := New(chamfer.Chamfer3x3, []float64{2, 3})
	require.NoError(t, err)

	r := newRunner(e, mask)
	r.init()
	r.sweep(e.forward, false)
	r.sweep(e.backward, true)
	r.normalize(2)

	inf := grid.MaxValue[float64]()
	require.Equal(t, []float64{0, 1, inf, inf}, r.data)
}
