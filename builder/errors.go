// File: errors.go
// Role: sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without a *rand.Rand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// builderErrorf prefixes a formatted message with the constructor name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
