package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// MaxIterations caps accuracy-driven regula falsi, which otherwise could
// loop forever on an accuracy the method cannot reach.
const MaxIterations = 100

// ErrNoConvergence indicates that regula falsi did not reach the
// requested accuracy within MaxIterations.
var ErrNoConvergence = errors.New("rootfind: no convergence")

type intervalSide int

const (
	noSide intervalSide = iota
	leftSide
	rightSide
)

// RegulaFalsi finds a root of the interval's function by linear
// interpolation between the endpoints, accurate to the supplied
// accuracy. When the same endpoint is retained twice in a row its cached
// function value is halved, which keeps the method from stalling on
// convex functions. It fails after MaxIterations without convergence.
func RegulaFalsi(iv *Interval, accuracy float64) (float64, error) {
	iv.setX(interpolate(iv))

	adjusted := noSide
	for i := 1; math.Abs(iv.fx) >= accuracy; i++ {
		adjusted = falsiStep(iv, adjusted)
		if i > MaxIterations {
			return 0, fmt.Errorf("%w within %d iterations", ErrNoConvergence, MaxIterations)
		}
	}
	return iv.x, nil
}

// RegulaFalsiN finds a root of the interval's function using at most the
// supplied number of interpolations, or fewer when an exact root is hit.
func RegulaFalsiN(iv *Interval, iterations int) float64 {
	iv.setX(interpolate(iv))

	adjusted := noSide
	for i := 1; i <= iterations && iv.fx != 0; i++ {
		adjusted = falsiStep(iv, adjusted)
	}
	return iv.x
}

// falsiStep keeps the part of the interval that still brackets the root,
// halves the stale endpoint value when the same side is kept twice in a
// row, and moves x to the new interpolation point.
func falsiStep(iv *Interval, previous intervalSide) intervalSide {
	var side intervalSide
	if iv.fa*iv.fx > 0 {
		iv.a, iv.fa = iv.x, iv.fx
		if previous == leftSide {
			iv.fb /= 2
		}
		side = leftSide
	} else {
		iv.b, iv.fb = iv.x, iv.fx
		if previous == rightSide {
			iv.fa /= 2
		}
		side = rightSide
	}

	iv.setX(interpolate(iv))
	return side
}

// interpolate is the x where the secant through (a, fa) and (b, fb)
// crosses zero.
func interpolate(iv *Interval) float64 {
	return (iv.fb*iv.a - iv.fa*iv.b) / (iv.fb - iv.fa)
}
