package lazyframe_test

import (
	"fmt"

	"github.com/katalvlaran/edpdf/lazyframe"
)

// ExampleWindows lists the chunk windows of a rank-3 scan: 6 positions
// split into chunks of 3, each frame 8x8 pixels.
func ExampleWindows() {
	data := make([]float64, 6*8*8)
	block, _ := lazyframe.WrapBlock(data, 6, 8, 8)
	scan, _ := lazyframe.NewDenseArray(block, [][]int{{3, 3}})

	windows, _ := lazyframe.Windows(scan)
	for _, w := range windows {
		fmt.Printf("[%d:%d]\n", w.Nav[0].Start, w.Nav[0].Stop)
	}
	// Output:
	// [0:3]
	// [3:6]
}

// ExampleMapFrames computes an integrated-intensity image over a tiny scan
// of two 2x2 frames, one chunk per frame.
func ExampleMapFrames() {
	data := []float64{
		0, 1, 2, 3, // frame 0
		4, 5, 6, 7, // frame 1
	}
	block, _ := lazyframe.WrapBlock(data, 2, 2, 2)
	scan, _ := lazyframe.NewDenseArray(block, [][]int{{1, 1}})

	out, err := lazyframe.MapFrames(scan, lazyframe.SumFrame, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Data())
	// Output:
	// [6 22]
}
