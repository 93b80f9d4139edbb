package roman

import (
	"errors"
	"fmt"
	"strings"
)

// LargestNumber is the largest number representable as a Roman number.
const LargestNumber = 3999

var (
	// ErrOutOfRange indicates an Arabic number outside [0, LargestNumber].
	ErrOutOfRange = errors.New("roman: number out of range [0,3999]")

	// ErrInvalidNumeral indicates a character that is not a Roman numeral.
	ErrInvalidNumeral = errors.New("roman: invalid numeral")
)

// numerals maps an Arabic digit at a power of ten to its Roman spelling.
// numerals[0][7] spells 7, numerals[2][8] spells 800. The Romans had no
// zero, hence the empty strings.
var numerals = [4][]string{
	{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"},
	{"", "X", "XX", "XXX", "XL", "L", "LX", "LXX", "LXXX", "XC"},
	{"", "C", "CC", "CCC", "CD", "D", "DC", "DCC", "DCCC", "CM"},
	{"", "M", "MM", "MMM"},
}

var values = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// Value returns the Arabic value of a single Roman numeral.
func Value(numeral rune) (int, error) {
	v, ok := values[numeral]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumeral, numeral)
	}
	return v, nil
}

// ToRoman converts an Arabic number to a Roman number by looking up and
// concatenating the Roman spelling of each decimal digit.
func ToRoman(number int) (string, error) {
	if number < 0 || number > LargestNumber {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, number)
	}

	digits := fmt.Sprintf("%d", number)
	var b strings.Builder
	for i, c := range digits {
		powerOfTen := len(digits) - i - 1
		b.WriteString(numerals[powerOfTen][c-'0'])
	}
	return b.String(), nil
}

// ToArabic converts a Roman number to an Arabic number. Each numeral adds
// its value, except when the next numeral is larger, in which case the
// current value is subtracted (IX = 10 - 1 = 9).
func ToArabic(number string) (int, error) {
	runes := []rune(number)
	result := 0
	for i, r := range runes {
		value, err := Value(r)
		if err != nil {
			return 0, err
		}
		if i < len(runes)-1 {
			next, err := Value(runes[i+1])
			if err != nil {
				return 0, err
			}
			if value < next {
				result -= value
				continue
			}
		}
		result += value
	}
	return result, nil
}

// IsValid reports whether the supplied string is a well-formed Roman
// number. Rather than checking every composition rule separately, the
// input is converted to Arabic and back; only well-formed numbers
// round-trip to themselves.
func IsValid(number string) bool {
	arabic, err := ToArabic(strings.ToUpper(number))
	if err != nil {
		return false
	}
	round, err := ToRoman(arabic)
	if err != nil {
		return false
	}
	return strings.ToUpper(number) == round
}
