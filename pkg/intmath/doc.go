// Package intmath provides numeric helpers on int64 values: greatest
// common divisor, least common multiple, primality testing, factorials,
// prime factorization and power-of-ten rounding.
//
// All functions are pure and validate their inputs; invalid arguments are
// reported as errors wrapping the package sentinel errors. For numbers
// beyond the int64 range use package bigmath.
package intmath
