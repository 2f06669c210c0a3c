package grid_test

import (
	"fmt"

	"github.com/katalvlaran/chamfer/grid"
)

// ExampleFrom2D builds a 4×3 mask and reads it back by coordinate.
func ExampleFrom2D() {
	mask, err := grid.From2D([][]uint8{
		{0, 0, 0, 0},
		{0, 255, 255, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, _ := mask.At(1, 1, 0)
	fmt.Printf("%dD %dx%d, (1,1)=%d, index(2,1)=%d\n",
		mask.Dims(), mask.SizeX(), mask.SizeY(), v, mask.Index(2, 1, 0))
	// Output: 2D 4x3, (1,1)=255, index(2,1)=6
}
