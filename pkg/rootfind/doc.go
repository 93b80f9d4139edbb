// Package rootfind locates roots of continuous real functions within a
// bracketing interval, using the bisection and regula falsi (false
// position) methods.
//
// Both methods operate on an Interval that brackets a root: the function
// values at its endpoints must have opposite signs. An interval is
// consumed by the finder that receives it and must not be reused:
//
//	iv, err := rootfind.NewInterval(func(x float64) float64 {
//		return x*x - 2
//	}, 0, 2)
//	if err != nil {
//		return err
//	}
//	root := rootfind.Bisect(iv, 1e-10) // 1.41421356...
package rootfind
