// Package bigmath provides numeric helpers on arbitrary-precision
// integers (math/big): integer square roots, primality testing,
// factorials, prime factorization, the Collatz trajectory and the
// Fibonacci sequence.
//
// Keep in mind that big.Int arithmetic allocates; the trial-division
// routines here are correct but deliberately simple and become slow for
// very large inputs. For values that fit in an int64, package intmath is
// considerably faster.
//
// Functions never modify their big.Int arguments and always return
// freshly allocated values.
package bigmath
