package combin

import (
	"errors"
	"fmt"
	"iter"
	"math/big"

	"github.com/schotanus/goutil/pkg/bigmath"
)

// MaxAllSetSize bounds the input of All: a larger set would yield more
// than a million subsets.
const MaxAllSetSize = 20

var (
	// ErrSubsetSize indicates a subset size outside [1, len(set)].
	ErrSubsetSize = errors.New("combin: subset size out of range")
	// ErrSetSize indicates a set size outside [1, MaxAllSetSize].
	ErrSetSize = errors.New("combin: set size out of range")
)

// Count computes the binomial coefficient C(n, r), the number of ways to
// select r items out of n when order is irrelevant. It returns 0 when
// n <= 0, r < 0 or r > n.
func Count(n, r int64) *big.Int {
	if n <= 0 || r < 0 || r > n {
		return new(big.Int)
	}

	result := bigmath.Factorial(big.NewInt(n))
	divisor := bigmath.Factorial(big.NewInt(r))
	divisor.Mul(divisor, bigmath.Factorial(big.NewInt(n-r)))
	return result.Quo(result, divisor)
}

// Combinations enumerates all subsets of size r of the supplied set in
// lexicographic order of the element indices. The yielded slice is reused
// between iterations. r must be in [1, len(set)].
func Combinations[T any](set []T, r int) (iter.Seq[[]T], error) {
	if r < 1 || r > len(set) {
		return nil, fmt.Errorf("%w: size %d of a set of %d", ErrSubsetSize, r, len(set))
	}

	return func(yield func([]T) bool) {
		indices := make([]int, r)
		for i := range indices {
			indices[i] = i
		}

		subset := make([]T, r)
		for {
			for i, index := range indices {
				subset[i] = set[index]
			}
			if !yield(subset) {
				return
			}
			if !advance(indices, len(set)) {
				return
			}
		}
	}, nil
}

// advance moves the index array to the next combination: it increments
// the rightmost index that can still move and resets the suffix behind
// it. It reports false when the last combination has been reached.
func advance(indices []int, n int) bool {
	r := len(indices)
	i := r - 1
	for ; i >= 0; i-- {
		if indices[i] < n-r+i {
			break
		}
	}
	if i < 0 {
		return false
	}

	indices[i]++
	for j := i + 1; j < r; j++ {
		indices[j] = indices[j-1] + 1
	}
	return true
}

// All enumerates every non-empty subset of the supplied set, ordered by
// subset size and lexicographically within a size. The yielded slice is
// reused between iterations. The set size must be in [1, MaxAllSetSize].
func All[T any](set []T) (iter.Seq[[]T], error) {
	if len(set) < 1 || len(set) > MaxAllSetSize {
		return nil, fmt.Errorf("%w: %d elements, want 1 to %d", ErrSetSize, len(set), MaxAllSetSize)
	}

	return func(yield func([]T) bool) {
		for r := 1; r <= len(set); r++ {
			seq, _ := Combinations(set, r)
			for subset := range seq {
				if !yield(subset) {
					return
				}
			}
		}
	}, nil
}
