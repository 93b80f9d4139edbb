package intmath

import (
	"errors"
	"fmt"
)

// ErrNotFactorizable indicates a factorization argument below 2.
var ErrNotFactorizable = errors.New("intmath: factorization needs a number larger than one")

// smallPrimeLimit bounds the precomputed prime table. Trial division
// first exhausts the table before falling back to odd candidates.
const smallPrimeLimit = 1000

// smallPrimes holds all primes below smallPrimeLimit, in ascending order.
var smallPrimes = sieve(smallPrimeLimit)

// sieve returns all primes below limit (sieve of Eratosthenes).
func sieve(limit int) []int64 {
	composite := make([]bool, limit)
	var primes []int64
	for i := 2; i < limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, int64(i))
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// PrimeFactor is a prime number together with its exponent, one term of a
// factorization.
type PrimeFactor struct {
	Prime    int64
	Exponent int
}

func (f PrimeFactor) String() string {
	return fmt.Sprintf("%d^%d", f.Prime, f.Exponent)
}

// Factorize decomposes the supplied value into its prime factors. Trial
// division runs over the precomputed small-prime table first and then
// over odd candidates, stopping once the candidate exceeds the square
// root of what remains; any remainder above 1 is itself prime.
func Factorize(value int64) ([]PrimeFactor, error) {
	if value < 2 {
		return nil, fmt.Errorf("%w: %d", ErrNotFactorizable, value)
	}

	var factors []PrimeFactor
	remainder := value

	divideOut := func(factor int64) {
		exponent := 0
		for remainder%factor == 0 {
			remainder /= factor
			exponent++
		}
		if exponent > 0 {
			factors = append(factors, PrimeFactor{Prime: factor, Exponent: exponent})
		}
	}

	for _, p := range smallPrimes {
		if remainder == 1 || p*p > remainder {
			break
		}
		divideOut(p)
	}

	// Continue past the table with odd candidates.
	for candidate := smallPrimes[len(smallPrimes)-1] + 2; remainder > 1 && candidate*candidate <= remainder; candidate += 2 {
		divideOut(candidate)
	}

	if remainder > 1 {
		factors = append(factors, PrimeFactor{Prime: remainder, Exponent: 1})
	}
	return factors, nil
}
