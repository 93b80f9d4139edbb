// Package combin provides combinatorics helpers: binomial coefficients
// and lazy enumeration of combinations (subsets) of a slice.
//
// Enumeration is exposed as iterators so callers can walk very large
// combination spaces without materializing them:
//
//	seq, err := combin.Combinations([]string{"a", "b", "c"}, 2)
//	if err != nil {
//		return err
//	}
//	for subset := range seq {
//		fmt.Println(subset) // [a b], [a c], [b c]
//	}
//
// The slice yielded by an iterator is reused between iterations; callers
// that retain subsets must copy them.
package combin
