package mask

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrEmptyMask indicates an empty mask.
	ErrEmptyMask = errors.New("mask: mask is empty")
	// ErrValueTooLong indicates a value with characters left over after
	// the whole mask has been filled.
	ErrValueTooLong = errors.New("mask: value is too long for mask")
	// ErrValueTooShort indicates a value that ran out before the mask
	// was filled.
	ErrValueTooShort = errors.New("mask: value is too short for mask")
	// ErrInvalidCharacter indicates a value character that does not
	// match its mask character.
	ErrInvalidCharacter = errors.New("mask: character not valid for mask character")
)

// maskRule validates a value character against one mask character and
// optionally converts it.
type maskRule struct {
	valid   func(rune) bool
	convert func(rune) rune
}

func identity(r rune) rune { return r }

func isAlphanumeric(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

var rules = map[rune]maskRule{
	'#': {valid: unicode.IsDigit, convert: identity},
	'A': {valid: unicode.IsLetter, convert: identity},
	'U': {valid: unicode.IsLetter, convert: unicode.ToUpper},
	'L': {valid: unicode.IsLetter, convert: unicode.ToLower},
	'N': {valid: isAlphanumeric, convert: identity},
	'?': {valid: func(rune) bool { return true }, convert: identity},
}

// Apply formats the supplied value against the mask: mask characters
// consume and possibly convert value characters, literals are inserted
// verbatim. A value character equal to an expected literal is consumed,
// so both "nl1234" and "(nl-1234)" fit the mask "(UU-####)". The value
// must fill the mask exactly.
func Apply(mask, value string) (string, error) {
	if mask == "" {
		return "", ErrEmptyMask
	}

	var result strings.Builder
	valueRunes := []rune(value)
	index := 0
	for _, m := range mask {
		rule, isRule := rules[m]
		if !isRule {
			result.WriteRune(m)
			// The value may spell out the literal itself.
			if index < len(valueRunes) && valueRunes[index] == m {
				index++
			}
			continue
		}

		converted, err := take(rule, m, mask, valueRunes, index)
		if err != nil {
			return "", err
		}
		result.WriteRune(converted)
		index++
	}

	if index != len(valueRunes) {
		return "", fmt.Errorf("%w: %q does not fit %q", ErrValueTooLong, value, mask)
	}
	return result.String(), nil
}

// Strip removes the mask literals from a masked value, returning the
// bare value characters: "(NL-1234)" stripped of "(UU-####)" is
// "NL1234". The masked value must fill the mask exactly.
func Strip(mask, maskedValue string) (string, error) {
	if mask == "" {
		return "", ErrEmptyMask
	}

	var result strings.Builder
	valueRunes := []rune(maskedValue)
	index := 0
	for _, m := range mask {
		rule, isRule := rules[m]
		if !isRule {
			if index < len(valueRunes) && valueRunes[index] == m {
				index++
			}
			continue
		}

		converted, err := take(rule, m, mask, valueRunes, index)
		if err != nil {
			return "", err
		}
		result.WriteRune(converted)
		index++
	}

	if index != len(valueRunes) {
		return "", fmt.Errorf("%w: %q does not fit %q", ErrValueTooLong, maskedValue, mask)
	}
	return result.String(), nil
}

// take validates and converts the value character at the supplied index
// against one mask character.
func take(rule maskRule, maskChar rune, mask string, value []rune, index int) (rune, error) {
	if index >= len(value) {
		return 0, fmt.Errorf("%w: %q does not fill %q", ErrValueTooShort, string(value), mask)
	}
	c := value[index]
	if !rule.valid(c) {
		return 0, fmt.Errorf("%w: %q does not match %q", ErrInvalidCharacter, c, maskChar)
	}
	return rule.convert(c), nil
}
