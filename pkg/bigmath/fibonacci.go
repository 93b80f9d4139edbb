package bigmath

import (
	"iter"
	"math/big"
)

// Fibonacci returns the standard Fibonacci sequence 1, 1, 2, 3, 5, 8, ...
// as a lazy iterator. The sequence is unbounded; the consumer decides
// when to stop:
//
//	for n := range bigmath.Fibonacci() {
//		if n.BitLen() > 64 {
//			break
//		}
//		fmt.Println(n)
//	}
func Fibonacci() iter.Seq[*big.Int] {
	return FibonacciFrom(big.NewInt(0), big.NewInt(1))
}

// FibonacciFrom returns a Fibonacci-like sequence seeded with the two
// supplied starting values. The first yielded value is current; every
// following value is the sum of its two predecessors.
func FibonacciFrom(previous, current *big.Int) iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		prev := new(big.Int).Set(previous)
		cur := new(big.Int).Set(current)
		for {
			if !yield(new(big.Int).Set(cur)) {
				return
			}
			prev.Add(prev, cur)
			prev, cur = cur, prev
		}
	}
}

// IsFibonacci reports whether the supplied number occurs in the row of
// Fibonacci numbers, using Gessel's test: n is a Fibonacci number exactly
// when 5n²+4 or 5n²-4 is a perfect square.
func IsFibonacci(number *big.Int) bool {
	fiveSquared := new(big.Int).Mul(number, number)
	fiveSquared.Mul(fiveSquared, big.NewInt(5))

	four := big.NewInt(4)
	plus := new(big.Int).Add(fiveSquared, four)
	if isPerfectSquare(plus) {
		return true
	}
	minus := new(big.Int).Sub(fiveSquared, four)
	return isPerfectSquare(minus)
}

func isPerfectSquare(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	root, err := Sqrt(n)
	if err != nil {
		return false
	}
	square := new(big.Int).Mul(root, root)
	return square.Cmp(n) == 0
}
