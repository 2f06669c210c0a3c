// Package geodesic_test checks geodesic distances on constrained masks and
// uses them as an independent oracle for the two-sweep distance maps.
package geodesic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chamfer/chamfer"
	"github.com/katalvlaran/chamfer/distmap"
	"github.com/katalvlaran/chamfer/geodesic"
	"github.com/katalvlaran/chamfer/grid"
	"github.com/katalvlaran/chamfer/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kernel[T grid.Sample](t *testing.T, n chamfer.Neighborhood, w ...T) *chamfer.Kernel[T] {
	t.Helper()
	k, err := chamfer.NewKernel(n, w)
	require.NoError(t, err)
	return k
}

// TestDistanceMap_AroundWall: the path from (0,0) to (4,0) must pass under
// the wall at x=2, doubling its length.
func TestDistanceMap_AroundWall(t *testing.T) {
	mask, err := grid.From2D([][]uint8{
		{255, 255, 0, 255, 255},
		{255, 255, 0, 255, 255},
		{255, 255, 255, 255, 255},
	})
	require.NoError(t, err)
	marker, err := grid.New2D[uint8](5, 3)
	require.NoError(t, err)
	require.NoError(t, marker.Set(0, 0, 0, 1))

	d, err := geodesic.DistanceMap(marker, mask, kernel[int32](t, chamfer.Chamfer3x3, 1, 2))
	require.NoError(t, err)

	inf := grid.MaxValue[int32]()
	assert.Equal(t, []int32{
		0, 1, inf, 7, 8,
		1, 2, inf, 6, 7,
		2, 3, 4, 5, 6,
	}, d.Data())
}

func TestDistanceMap_UnreachableComponent(t *testing.T) {
	mask, err := grid.From2D([][]uint8{{255, 255, 0, 255, 128}})
	require.NoError(t, err)
	marker, err := grid.From2D([][]uint8{{1, 0, 0, 0, 0}})
	require.NoError(t, err)

	d, err := geodesic.DistanceMap(marker, mask, kernel[float64](t, chamfer.Chamfer3x3, 1, 2))
	require.NoError(t, err)
	inf := grid.MaxValue[float64]()
	assert.Equal(t, []float64{0, 1, inf, inf, inf}, d.Data())

	// label 128 reached from a marker sitting outside the mask
	marker, err = grid.From2D([][]uint8{{0, 0, 0, 9, 0}})
	require.NoError(t, err)
	d, err = geodesic.DistanceMap(marker, mask, kernel[float64](t, chamfer.Chamfer3x3, 1, 2),
		geodesic.WithMaskLabel(128))
	require.NoError(t, err)
	assert.Equal(t, []float64{inf, inf, inf, 0, 1}, d.Data())
}

func TestDistanceMap_Normalize(t *testing.T) {
	mask, err := grid.From2D([][]uint8{{255, 255, 255, 255}})
	require.NoError(t, err)
	marker, err := grid.From2D([][]uint8{{255, 0, 0, 0}})
	require.NoError(t, err)

	d, err := geodesic.DistanceMap(marker, mask, kernel[uint16](t, chamfer.Chamfer3x3, 3, 4),
		geodesic.WithNormalize(true))
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 2, 3}, d.Data())
}

func TestDistanceMap_3D(t *testing.T) {
	mask, err := grid.New3D[uint8](4, 4, 4)
	require.NoError(t, err)
	mask.Fill(255)
	marker, err := grid.New3D[uint8](4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, marker.Set(0, 0, 0, 1))

	d, err := geodesic.DistanceMap(marker, mask, kernel[int32](t, chamfer.Chamfer3x3x3, 3, 4, 5))
	require.NoError(t, err)
	v, err := d.At(3, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(15), v)
	v, err = d.At(3, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)
}

func TestDistanceMap_Errors(t *testing.T) {
	m2, err := grid.New2D[uint8](3, 3)
	require.NoError(t, err)
	m2b, err := grid.New2D[uint8](3, 4)
	require.NoError(t, err)
	m3, err := grid.New3D[uint8](3, 3, 3)
	require.NoError(t, err)
	k2 := kernel[float32](t, chamfer.Chamfer3x3, 1, 1)

	_, err = geodesic.DistanceMap[float32](m2, m2, nil)
	require.ErrorIs(t, err, geodesic.ErrNilKernel)

	_, err = geodesic.DistanceMap(m2, m2, k2, geodesic.WithMaskLabel(0))
	require.ErrorIs(t, err, geodesic.ErrBadMaskLabel)

	_, err = geodesic.DistanceMap(nil, m2, k2)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = geodesic.DistanceMap(m2, m2b, k2)
	require.ErrorIs(t, err, geodesic.ErrDimensionMismatch)

	_, err = geodesic.DistanceMap(m3, m3, k2)
	require.ErrorIs(t, err, geodesic.ErrDimensionMismatch)
}

func TestDistanceMap_Progress(t *testing.T) {
	mask, err := grid.New2D[uint8](4, 2)
	require.NoError(t, err)
	mask.Fill(255)
	marker, err := grid.New2D[uint8](4, 2)
	require.NoError(t, err)
	require.NoError(t, marker.Set(0, 0, 0, 1))

	var rec progress.Recorder
	_, err = geodesic.DistanceMap(marker, mask, kernel[int32](t, chamfer.Chamfer3x3, 1, 1),
		geodesic.WithProgress(&rec))
	require.NoError(t, err)

	assert.Equal(t, []string{geodesic.StatusInit, geodesic.StatusPropagation}, rec.Statuses())
	events := rec.Events()
	assert.Equal(t, progress.Event{Kind: progress.Progress, Step: 8, Total: 8}, events[len(events)-1])
}

// TestDistanceMap_NormalizationPhase checks normalization is reported as its
// own phase and closed with a final tick, including for a zero unit.
func TestDistanceMap_NormalizationPhase(t *testing.T) {
	mask, err := grid.From2D([][]uint8{{255, 255, 255}})
	require.NoError(t, err)
	marker, err := grid.From2D([][]uint8{{1, 0, 0}})
	require.NoError(t, err)

	for _, unit := range []float32{2, 0} {
		var rec progress.Recorder
		d, err := geodesic.DistanceMap(marker, mask, kernel[float32](t, chamfer.Chamfer3x3, unit, 3),
			geodesic.WithNormalize(true), geodesic.WithProgress(&rec))
		require.NoError(t, err)

		assert.Equal(t, []string{geodesic.StatusInit, geodesic.StatusPropagation, geodesic.StatusNormalize},
			rec.Statuses(), "unit=%v", unit)
		events := rec.Events()
		assert.Equal(t, progress.Event{Kind: progress.Status, Status: geodesic.StatusNormalize}, events[len(events)-2])
		assert.Equal(t, progress.Event{Kind: progress.Progress, Step: 3, Total: 3}, events[len(events)-1])
		if unit != 0 {
			assert.Equal(t, []float32{0, 1, 2}, d.Data())
		}
	}

	// no normalization, no phase
	var rec progress.Recorder
	_, err = geodesic.DistanceMap(marker, mask, kernel[float32](t, chamfer.Chamfer3x3, 2, 3),
		geodesic.WithProgress(&rec))
	require.NoError(t, err)
	assert.NotContains(t, rec.Statuses(), geodesic.StatusNormalize)
}

// ------------------------------------------------------------------------
// Oracle: two raster sweeps equal Dijkstra from the background.
// ------------------------------------------------------------------------

func randomMask(t *testing.T, rng *rand.Rand, sx, sy, sz int) *grid.Mask {
	t.Helper()
	var (
		m   *grid.Mask
		err error
	)
	if sz == 0 {
		m, err = grid.New2D[uint8](sx, sy)
	} else {
		m, err = grid.New3D[uint8](sx, sy, sz)
	}
	require.NoError(t, err)
	for i := range m.Data() {
		if rng.Intn(8) != 0 {
			m.Data()[i] = 255
		}
	}
	return m
}

// backgroundMarker marks every background sample of mask.
func backgroundMarker(mask *grid.Mask) *grid.Mask {
	marker := grid.NewLike[uint8](mask)
	for i, v := range mask.Data() {
		if v == 0 {
			marker.Data()[i] = 1
		}
	}
	return marker
}

func TestDistanceMap_MatchesTwoSweeps(t *testing.T) {
	cases := []struct {
		name   string
		preset chamfer.Preset
		n      chamfer.Neighborhood
		sz     int
	}{
		{"Borgefors3x3", chamfer.Borgefors, chamfer.Chamfer3x3, 0},
		{"ChessKnight5x5", chamfer.ChessKnight, chamfer.Chamfer5x5, 0},
		{"CityBlock5x5", chamfer.CityBlock, chamfer.Chamfer5x5, 0},
		{"Borgefors3x3x3", chamfer.Borgefors3D, chamfer.Chamfer3x3x3, 9},
		{"Weights3457", chamfer.Weights3457, chamfer.Chamfer5x5x5, 9},
	}
	rng := rand.New(rand.NewSource(42))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := chamfer.PresetKernel[int32](tc.preset, tc.n)
			require.NoError(t, err)
			eng, err := distmap.NewWithKernel(k, distmap.WithNormalize(false))
			require.NoError(t, err)

			for trial := 0; trial < 5; trial++ {
				mask := randomMask(t, rng, 23, 17, tc.sz)
				want, err := geodesic.DistanceMap(backgroundMarker(mask), mask, k)
				require.NoError(t, err)
				got, err := eng.DistanceMap(mask)
				require.NoError(t, err)
				require.Equal(t, want.Data(), got.Data(), "trial %d", trial)
			}
		})
	}
}
