package finance

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrNotAlphanumeric indicates input outside [0-9A-Z].
var ErrNotAlphanumeric = errors.New("finance: input must consist of digits and upper case letters")

var ninetySeven = big.NewInt(97)

// IsModulo10 reports whether the supplied digit string passes the
// modulo 10 check used by credit cards and UK sort code plus account
// number combinations. Digits are processed right to left: digits at
// odd positions count as is, digits at even positions are doubled and
// reduced modulo 9. The total must end in 0. Empty or non-digit input
// is invalid.
func IsModulo10(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	sum := 0
	odd := true
	for i := len(input) - 1; i >= 0; i-- {
		digit := int(input[i]) - '0'
		if digit < 0 || digit > 9 {
			return false
		}
		if odd {
			sum += digit
		} else {
			sum += digit * 2 % 9
		}
		odd = !odd
	}
	return sum%10 == 0
}

// IsModulo11 reports whether the supplied number passes the modulo 11
// check used by classic Dutch bank account numbers: the sum of every
// digit multiplied by its position, counted from the right starting at
// 1, must be a positive multiple of 11.
//
// For example 736160221: 1*1 + 2*2 + 2*3 + 0*4 + 6*5 + 1*6 + 6*7 +
// 3*8 + 7*9 = 176 = 16 * 11.
func IsModulo11(number int64) bool {
	var sum, position int64
	for remaining := number; remaining > 0; remaining /= 10 {
		position++
		sum += position * (remaining % 10)
	}
	return sum > 0 && sum%11 == 0
}

// IsModulo11String reports whether the supplied string is a number that
// passes the modulo 11 check. Input that does not parse as an integer
// is invalid.
func IsModulo11String(number string) bool {
	parsed, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return false
	}
	return IsModulo11(parsed)
}

// IsBSN reports whether the supplied string is a valid Dutch burger
// service nummer: 8 or 9 digits passing a variant of the modulo 11
// check in which the rightmost digit is subtracted from the sum instead
// of added. The subtraction makes classic Dutch bank account numbers
// invalid BSNs.
func IsBSN(bsn string) bool {
	if len(bsn) < 8 || len(bsn) > 9 {
		return false
	}

	var sum int64
	for i := range len(bsn) - 1 {
		digit := int64(bsn[i]) - '0'
		if digit < 0 || digit > 9 {
			return false
		}
		sum += digit * int64(len(bsn)-i)
	}
	last := int64(bsn[len(bsn)-1]) - '0'
	if last < 0 || last > 9 {
		return false
	}
	sum -= last

	return sum > 0 && sum%11 == 0
}

// IsModulo97 reports whether the supplied input passes the ISO 7064
// MOD 97-10 check: after mapping letters to numbers the value modulo 97
// must be 1. Input outside [0-9A-Z] is invalid.
func IsModulo97(input string) bool {
	numeric, err := Mod97ToNumeric(input)
	if err != nil {
		return false
	}
	number, ok := new(big.Int).SetString(numeric, 10)
	if !ok {
		return false
	}
	return number.Mod(number, ninetySeven).Int64() == 1
}

// Mod97ToNumeric maps the letters of the supplied input to numbers, A
// to 10, B to 11 up to Z to 35, leaving digits as they are. This is the
// expansion the MOD 97-10 check applies to IBANs. Only [0-9A-Z] is
// accepted.
func Mod97ToNumeric(input string) (string, error) {
	var result strings.Builder
	for _, c := range input {
		switch {
		case c >= '0' && c <= '9':
			result.WriteRune(c)
		case c >= 'A' && c <= 'Z':
			result.WriteString(strconv.Itoa(int(c-'A') + 10))
		default:
			return "", fmt.Errorf("%w: %q", ErrNotAlphanumeric, input)
		}
	}
	return result.String(), nil
}
