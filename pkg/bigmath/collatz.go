package bigmath

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotPositive indicates a Collatz argument below 1.
var ErrNotPositive = errors.New("bigmath: collatz expects a positive integer")

// Collatz computes the Collatz (3n+1) trajectory of the supplied number:
// while the value is not 1, an even value is halved and an odd value is
// tripled plus one. The returned slice starts with the number itself and,
// assuming the conjecture holds, ends with 1.
func Collatz(number *big.Int) ([]*big.Int, error) {
	if number.Sign() <= 0 {
		return nil, fmt.Errorf("%w, but received %s", ErrNotPositive, number)
	}

	result := []*big.Int{new(big.Int).Set(number)}
	current := new(big.Int).Set(number)
	for current.Cmp(one) != 0 {
		if current.Bit(0) == 1 {
			current.Mul(current, three).Add(current, one)
			result = append(result, new(big.Int).Set(current))
			// 3n+1 of an odd n is even, so the halving below always applies.
		}
		current.Rsh(current, 1)
		result = append(result, new(big.Int).Set(current))
	}
	return result, nil
}
