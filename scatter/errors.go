package scatter

import "errors"

var (
	// ErrUnknownElement indicates an element symbol with no tabulated parameters.
	ErrUnknownElement = errors.New("scatter: no scattering parameters for element")
	// ErrUnknownModel indicates a Model value other than Lobato or XTables.
	ErrUnknownModel = errors.New("scatter: unknown scattering model")
	// ErrLengthMismatch indicates element and fraction lists of different lengths.
	ErrLengthMismatch = errors.New("scatter: elements and fractions must have equal length")
	// ErrGridShape indicates N and C fit grids with different dimensions.
	ErrGridShape = errors.New("scatter: N and C grids must share dimensions")
	// ErrCurveSize indicates a non-positive curve length.
	ErrCurveSize = errors.New("scatter: curve length must be positive")
	// ErrCubeShape indicates non-positive cube dimensions.
	ErrCubeShape = errors.New("scatter: cube dimensions must be positive")
)
