package lazyframe

import "gonum.org/v1/gonum/mat"

// SumFrame is a FrameFunc returning a frame's total intensity. Mapping it
// over a scan yields the conventional integrated-intensity image.
func SumFrame(frame mat.Matrix) ([]float64, error) {
	return []float64{mat.Sum(frame)}, nil
}

// RectSum returns a FrameFunc that sums intensity inside a rectangular
// detector region (a virtual aperture): rows [row, row+height), columns
// [col, col+width). The region is checked against each frame's dimensions;
// a region outside the frame yields ErrROIBounds.
func RectSum(row, col, height, width int) FrameFunc {
	return func(frame mat.Matrix) ([]float64, error) {
		r, c := frame.Dims()
		if row < 0 || col < 0 || height <= 0 || width <= 0 ||
			row+height > r || col+width > c {
			return nil, ErrROIBounds
		}
		sum := 0.0
		for i := row; i < row+height; i++ {
			for j := col; j < col+width; j++ {
				sum += frame.At(i, j)
			}
		}
		return []float64{sum}, nil
	}
}

// IntegratedIntensity maps a scalar intensity reducer over every frame of a
// and returns the navigation-shaped virtual image. A nil fn defaults to
// SumFrame (integrate the whole detector); pass RectSum to restrict the
// integration to a scattering region.
func IntegratedIntensity(a Array, fn FrameFunc, opts *Options) (*Block, error) {
	if fn == nil {
		fn = SumFrame
	}
	o := DefaultOptions()
	if opts != nil {
		o.Progress = opts.Progress
	}
	o.ResultSize = 1
	return MapFrames(a, fn, &o)
}
