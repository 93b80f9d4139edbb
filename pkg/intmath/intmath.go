package intmath

import (
	"errors"
	"fmt"
	"math"
)

// MaxFactorial is the largest value whose factorial fits in an int64.
const MaxFactorial = 20

var (
	// ErrZeroDivisor indicates a GCD or LCM call with a zero second value.
	ErrZeroDivisor = errors.New("intmath: second value must not be zero")

	// ErrFactorialRange indicates a factorial argument outside [0, MaxFactorial].
	ErrFactorialRange = errors.New("intmath: factorial argument out of range")

	// ErrNegativePosition indicates a rounding position below zero.
	ErrNegativePosition = errors.New("intmath: rounding position must not be negative")
)

// GCD computes the greatest common divisor of two values using Euclid's
// algorithm (Elements, Book VII).
func GCD(first, second int64) (int64, error) {
	if second == 0 {
		return 0, ErrZeroDivisor
	}

	a, b := first, second
	for r := a % b; r != 0; r = a % b {
		a, b = b, r
	}
	return b, nil
}

// LCM computes the least common multiple of a and b, the smallest integer
// divisible by both. It is derived from the GCD: lcm = a*b/gcd.
func LCM(a, b int64) (int64, error) {
	gcd, err := GCD(a, b)
	if err != nil {
		return 0, err
	}
	return a * b / gcd, nil
}

// IsPrime reports whether the supplied value is a prime number. By
// definition 0 and 1 are not primes. The value is divided by 2 and by all
// odd candidates up to and including its square root; a prime survives
// every division.
func IsPrime(value int64) bool {
	if value == 2 {
		return true
	}
	if value < 2 || value%2 == 0 {
		return false
	}

	root := int64(math.Sqrt(float64(value)))
	for i := int64(3); i <= root; i += 2 {
		if value%i == 0 {
			return false
		}
	}
	return true
}

// Factorial computes value! = 1*2*3*...*value. The factorial of 0 is 1.
// Arguments outside [0, MaxFactorial] do not fit in an int64 and are
// rejected.
func Factorial(value int) (int64, error) {
	if value < 0 || value > MaxFactorial {
		return 0, fmt.Errorf("%w: %d not in [0,%d]", ErrFactorialRange, value, MaxFactorial)
	}

	factorial := int64(1)
	for i := int64(2); i <= int64(value); i++ {
		factorial *= i
	}
	return factorial, nil
}

// Round rounds the supplied value to the supplied power-of-ten position:
// 1 rounds to tens, 2 to hundreds, 3 to thousands. Ties round up, so
// Round(54, 1) = 50 and Round(-55, 1) = -50.
func Round(value int64, position int) (int64, error) {
	if position < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativePosition, position)
	}

	p := math.Pow(10, float64(position))
	return int64(math.Floor(float64(value)/p+0.5) * p), nil
}

// RoundUp rounds the supplied value up to the supplied power-of-ten
// position: RoundUp(54, 1) = 60 and RoundUp(-55, 1) = -50.
func RoundUp(value int64, position int) (int64, error) {
	if position < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativePosition, position)
	}

	p := math.Pow(10, float64(position))
	return int64(math.Ceil(float64(value)/p) * p), nil
}
