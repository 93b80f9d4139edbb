package rootfind

import "math"

// Bisect finds a root of the interval's function by repeated halving,
// accurate to the supplied accuracy. The number of iterations needed for
// that accuracy follows from the interval width, so the method always
// terminates; it exits early once |f(x)| drops to the accuracy.
func Bisect(iv *Interval, accuracy float64) float64 {
	iv.setX((iv.a + iv.b) / 2)

	iterations := 1 + int((math.Log(iv.b-iv.a)-math.Log(accuracy))/math.Ln2)
	for i := 1; i <= iterations && math.Abs(iv.fx) > accuracy; i++ {
		bisectStep(iv)
	}
	return iv.x
}

// BisectN finds a root of the interval's function using at most the
// supplied number of halvings, or fewer when an exact root is hit.
func BisectN(iv *Interval, iterations int) float64 {
	iv.setX((iv.a + iv.b) / 2)

	for i := 1; i < iterations && iv.fx != 0; i++ {
		bisectStep(iv)
	}
	return iv.x
}

// bisectStep keeps the half of the interval that still brackets the root
// and moves x to its midpoint.
func bisectStep(iv *Interval) {
	if iv.fa*iv.fx > 0 {
		iv.a, iv.fa = iv.x, iv.fx
	} else {
		iv.b, iv.fb = iv.x, iv.fx
	}
	iv.setX((iv.a + iv.b) / 2)
}
