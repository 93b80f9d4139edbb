package finance

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/schotanus/goutil/pkg/country"
)

const (
	minIBANLength = 6
	maxIBANLength = 34
	maxBBANLength = 30
)

var (
	// ErrIBANLength indicates an IBAN that is empty, shorter than 6 or
	// longer than 34 characters.
	ErrIBANLength = errors.New("finance: iban length out of range")
	// ErrIBANFormat indicates an IBAN with lower case letters or
	// characters outside [0-9A-Z].
	ErrIBANFormat = errors.New("finance: iban must consist of digits and upper case letters")
	// ErrIBANCountry indicates an IBAN whose first two characters are
	// not an ISO 3166 country code.
	ErrIBANCountry = errors.New("finance: iban country does not exist")
	// ErrIBANCheckDigits indicates check digits that are not numeric or
	// have one of the reserved values 00, 01 and 99.
	ErrIBANCheckDigits = errors.New("finance: iban check digits are illegal")
	// ErrIBANChecksum indicates an IBAN that fails the MOD 97-10 check.
	ErrIBANChecksum = errors.New("finance: iban fails the modulo 97 check")

	// ErrCountryCode indicates a country argument that is not an upper
	// case ISO 3166 alpha-2 code.
	ErrCountryCode = errors.New("finance: invalid country code")
	// ErrBBAN indicates a basic bank account number that is empty,
	// longer than 30 characters or not upper case alphanumeric.
	ErrBBAN = errors.New("finance: invalid basic bank account number")
)

// IBAN is a validated International Bank Account Number: an ISO 3166
// country code, two check digits and a national part (the basic bank
// account number, or BBAN). The zero value is not a valid IBAN; use
// ParseIBAN or ComposeIBAN.
type IBAN struct {
	value string
}

// ParseIBAN validates the supplied IBAN and returns it as a value.
func ParseIBAN(iban string) (IBAN, error) {
	if err := CheckIBAN(iban); err != nil {
		return IBAN{}, err
	}
	return IBAN{value: iban}, nil
}

// ComposeIBAN builds an IBAN from a country code and a basic bank
// account number by computing the check digits, per ISO 13616: the
// remainder of BBAN+country+"00" modulo 97 subtracted from 98, zero
// padded to two digits.
func ComposeIBAN(countryCode, bban string) (IBAN, error) {
	if err := checkComposeCountry(countryCode); err != nil {
		return IBAN{}, err
	}
	if err := checkBBAN(bban); err != nil {
		return IBAN{}, err
	}

	numeric, err := Mod97ToNumeric(bban + countryCode + "00")
	if err != nil {
		return IBAN{}, fmt.Errorf("%w: %v", ErrBBAN, err)
	}
	number, _ := new(big.Int).SetString(numeric, 10)
	checkDigits := 98 - number.Mod(number, ninetySeven).Int64()

	return IBAN{value: fmt.Sprintf("%s%02d%s", countryCode, checkDigits, bban)}, nil
}

// IsValidIBAN reports whether the supplied string is a valid IBAN.
func IsValidIBAN(iban string) bool {
	return CheckIBAN(iban) == nil
}

// CheckIBAN validates the supplied IBAN and reports the first violated
// rule: length within [6, 34], upper case alphanumeric, an existing ISO
// 3166 country, numeric non-reserved check digits, and the MOD 97-10
// check over the rearranged IBAN.
func CheckIBAN(iban string) error {
	if strings.TrimSpace(iban) == "" || len(iban) < minIBANLength {
		return fmt.Errorf("%w: %q is shorter than %d", ErrIBANLength, iban, minIBANLength)
	}
	if len(iban) > maxIBANLength {
		return fmt.Errorf("%w: %q is longer than %d", ErrIBANLength, iban, maxIBANLength)
	}
	if !isUpperAlphanumeric(iban) {
		return fmt.Errorf("%w: %q", ErrIBANFormat, iban)
	}

	countryCode := iban[:2]
	if !country.IsValidAlpha2(countryCode) {
		return fmt.Errorf("%w: %q", ErrIBANCountry, countryCode)
	}

	checkDigits := iban[2:4]
	if !isNumeric(checkDigits) {
		return fmt.Errorf("%w: %q is not numeric", ErrIBANCheckDigits, checkDigits)
	}
	if checkDigits == "00" || checkDigits == "01" || checkDigits == "99" {
		return fmt.Errorf("%w: %q is a reserved value", ErrIBANCheckDigits, checkDigits)
	}

	if !IsModulo97(iban[4:] + countryCode + checkDigits) {
		return fmt.Errorf("%w: %q", ErrIBANChecksum, iban)
	}
	return nil
}

// Country returns the ISO 3166 alpha-2 country code of the IBAN.
func (i IBAN) Country() string {
	return i.value[:2]
}

// CheckDigits returns the two check digits of the IBAN.
func (i IBAN) CheckDigits() string {
	return i.value[2:4]
}

// BBAN returns the national part of the IBAN, the basic bank account
// number.
func (i IBAN) BBAN() string {
	return i.value[4:]
}

// PaperFormat returns the IBAN in groups of four characters separated
// by spaces, the presentation mandated for print.
func (i IBAN) PaperFormat() string {
	var b strings.Builder
	for start := 0; start < len(i.value); start += 4 {
		if start > 0 {
			b.WriteByte(' ')
		}
		end := min(start+4, len(i.value))
		b.WriteString(i.value[start:end])
	}
	return b.String()
}

func (i IBAN) String() string {
	return i.value
}

func checkComposeCountry(countryCode string) error {
	if strings.TrimSpace(countryCode) == "" {
		return fmt.Errorf("%w: country is mandatory", ErrCountryCode)
	}
	if len(countryCode) != 2 || !isUpperAlphabetic(countryCode) {
		return fmt.Errorf("%w: %q", ErrCountryCode, countryCode)
	}
	if !country.IsValidAlpha2(countryCode) {
		return fmt.Errorf("%w: %q does not exist", ErrCountryCode, countryCode)
	}
	return nil
}

func checkBBAN(bban string) error {
	if strings.TrimSpace(bban) == "" {
		return fmt.Errorf("%w: bban is mandatory", ErrBBAN)
	}
	if len(bban) > maxBBANLength {
		return fmt.Errorf("%w: %q is longer than %d", ErrBBAN, bban, maxBBANLength)
	}
	if !isUpperAlphanumeric(bban) {
		return fmt.Errorf("%w: %q", ErrBBAN, bban)
	}
	return nil
}

func isUpperAlphanumeric(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isUpperAlphabetic(s string) bool {
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
