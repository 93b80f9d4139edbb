package bigmath

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ErrNotFactorizable indicates a factorization argument below 2.
var ErrNotFactorizable = errors.New("bigmath: factorization needs a number larger than one")

// IsPrime reports whether the supplied number is prime. By definition 0
// and 1 are not primes. The number is divided by 2 and by all odd
// candidates up to and including its square root.
func IsPrime(number *big.Int) bool {
	if number.Cmp(two) == 0 {
		return true
	}
	if number.Cmp(two) < 0 || number.Bit(0) == 0 {
		return false
	}

	root, _ := Sqrt(number)
	mod := new(big.Int)
	for candidate := new(big.Int).Set(three); candidate.Cmp(root) <= 0; candidate.Add(candidate, two) {
		if mod.Mod(number, candidate).Sign() == 0 {
			return false
		}
	}
	return true
}

// Factorial computes number! = 1*2*3*...*number. The factorial of 0 is 1.
// The precondition number >= 0 is not checked; for anything below 2 the
// result is simply 1.
func Factorial(number *big.Int) *big.Int {
	factorial := big.NewInt(1)
	for counter := big.NewInt(2); counter.Cmp(number) <= 0; counter.Add(counter, one) {
		factorial.Mul(factorial, counter)
	}
	return factorial
}

// PrimeFactor is a prime number together with its exponent, one term of a
// factorization.
type PrimeFactor struct {
	Prime    *big.Int
	Exponent int
}

func (f PrimeFactor) String() string {
	return fmt.Sprintf("%s^%d", f.Prime, f.Exponent)
}

// Factorize decomposes the supplied number into its prime factors: 2
// first, then odd candidates up to the square root of the number; any
// remainder above 1 is itself a prime factor.
//
// This runs noticeably slower than the int64 variant in package intmath;
// prefer that one when the input fits.
func Factorize(number *big.Int) ([]PrimeFactor, error) {
	if number.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFactorizable, number)
	}

	var factors []PrimeFactor
	remainder := new(big.Int).Set(number)

	divideOut := func(factor *big.Int) {
		exponent := 0
		quo, rem := new(big.Int), new(big.Int)
		for quo.QuoRem(remainder, factor, rem); rem.Sign() == 0; quo.QuoRem(remainder, factor, rem) {
			remainder.Set(quo)
			exponent++
		}
		if exponent > 0 {
			factors = append(factors, PrimeFactor{Prime: new(big.Int).Set(factor), Exponent: exponent})
		}
	}

	lastFactor, _ := Sqrt(number)
	divideOut(two)
	for candidate := new(big.Int).Set(three); candidate.Cmp(lastFactor) <= 0 && remainder.Cmp(one) != 0; candidate.Add(candidate, two) {
		divideOut(candidate)
	}

	if remainder.Cmp(one) != 0 {
		factors = append(factors, PrimeFactor{Prime: remainder, Exponent: 1})
	}
	return factors, nil
}
