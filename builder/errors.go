package builder

import "errors"

// Sentinel errors. Constructors wrap them with the constructor name, so
// callers branch with errors.Is.
var (
	// ErrTooFewVertices indicates n is below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p is outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor was passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
