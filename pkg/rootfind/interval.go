package rootfind

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroWidth indicates an interval with identical endpoints.
	ErrZeroWidth = errors.New("rootfind: interval has zero width")
	// ErrNotANumber indicates a function value of NaN at an endpoint.
	ErrNotANumber = errors.New("rootfind: function value is not a number")
	// ErrSameSign indicates endpoint function values that do not bracket
	// a root.
	ErrSameSign = errors.New("rootfind: function values at the endpoints have the same sign")
)

// Interval is a bracketing interval of a function: the endpoints a and b
// together with their cached function values, plus the current root
// estimate x. A finder narrows the interval in place, so an Interval is
// single use.
type Interval struct {
	f func(float64) float64

	a, fa float64
	b, fb float64
	x, fx float64
}

// NewInterval creates a bracketing interval for the supplied function.
// It evaluates the function at both endpoints and rejects intervals of
// zero width, endpoint values that are NaN, and endpoint values with the
// same sign.
func NewInterval(f func(float64) float64, a, b float64) (*Interval, error) {
	if a == b {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrZeroWidth, a, b)
	}

	iv := &Interval{f: f, a: a, b: b, fa: f(a), fb: f(b)}
	if math.IsNaN(iv.fa) {
		return nil, fmt.Errorf("%w: f(%g)", ErrNotANumber, a)
	}
	if math.IsNaN(iv.fb) {
		return nil, fmt.Errorf("%w: f(%g)", ErrNotANumber, b)
	}
	if iv.fa*iv.fb > 0 {
		return nil, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrSameSign, a, iv.fa, b, iv.fb)
	}
	return iv, nil
}

// setX moves the root estimate and evaluates the function there.
func (iv *Interval) setX(x float64) {
	iv.x = x
	iv.fx = iv.f(x)
}
