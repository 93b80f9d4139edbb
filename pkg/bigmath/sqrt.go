package bigmath

import (
	"errors"
	"math/big"
)

// ErrNegativeSquareRoot indicates a square root of a negative number.
var ErrNegativeSquareRoot = errors.New("bigmath: square root of negative number")

// Sqrt computes the integer square root of n using the Babylonian
// (Newton) method with integer division only. The iteration stops when
// two successive approximations differ by at most one; of those final two
// candidates the one whose square is closer to n is returned, so the
// result is the nearest integer to the real square root: Sqrt(15) is 4,
// Sqrt(13) is 4 and Sqrt(24) is 5. For perfect squares the result is
// exact.
func Sqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeSquareRoot
	}
	if n.Sign() == 0 {
		return new(big.Int), nil
	}

	prev := new(big.Int).Set(n)
	curr := next(n, prev)
	diff := new(big.Int)
	for diff.Sub(prev, curr).CmpAbs(one) > 0 {
		prev.Set(curr)
		curr = next(n, curr)
	}

	// Pick the candidate whose square has the smaller error.
	prevErr := new(big.Int).Mul(prev, prev)
	prevErr.Sub(prevErr, n)
	currErr := new(big.Int).Mul(curr, curr)
	currErr.Sub(currErr, n)
	if prevErr.CmpAbs(currErr) < 0 {
		return prev, nil
	}
	return curr, nil
}

// next computes one Newton step: (x + n/x) / 2.
func next(n, x *big.Int) *big.Int {
	step := new(big.Int).Quo(n, x)
	step.Add(step, x)
	return step.Rsh(step, 1)
}
