package reduced

import "errors"

var (
	// ErrIndexRange indicates a normalization cutoff index outside the profile.
	ErrIndexRange = errors.New("reduced: index outside profile range")
	// ErrPatternLength indicates a mask pattern whose length differs from the profile.
	ErrPatternLength = errors.New("reduced: pattern length must match profile length")
	// ErrNonPositiveSMax indicates a Lorch window with sMax <= 0.
	ErrNonPositiveSMax = errors.New("reduced: sMax must be positive")
)
