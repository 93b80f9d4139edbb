// Package roman converts between Roman and Arabic numbers.
//
// Roman numbers are built from the numerals I=1, V=5, X=10, L=50, C=100,
// D=500 and M=1000 and are read from left to right. A numeral with a lower
// value than its successor is subtracted instead of added, which is how
// IX encodes 9. The largest representable number is 3999 (MMMCMXCIX);
// the Romans had no numeral for zero, so 0 converts to the empty string.
//
// # Usage
//
//	s, err := roman.ToRoman(1984) // "MCMLXXXIV"
//	n, err := roman.ToArabic("MCMLXXXIV") // 1984
//
// ToArabic accepts any sequence of valid numerals, including malformed
// ones such as "IIX"; use IsValid to check that a string is a
// well-formed Roman number:
//
//	roman.IsValid("IIX") // false, 8 is written VIII
package roman
