package finance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/schotanus/goutil/pkg/country"
)

const (
	shortBICLength = 8
	longBICLength  = 11
)

var (
	// ErrBICLength indicates a BIC that is not 8 or 11 characters long.
	ErrBICLength = errors.New("finance: bic must be 8 or 11 characters")
	// ErrBICFormat indicates a BIC with lower case letters or
	// characters outside [0-9A-Z].
	ErrBICFormat = errors.New("finance: bic must consist of digits and upper case letters")
	// ErrBICBankCode indicates a bank code with non-alphabetic
	// characters.
	ErrBICBankCode = errors.New("finance: bic bank code must be alphabetic")
	// ErrBICCountry indicates a BIC whose country code is not an ISO
	// 3166 country.
	ErrBICCountry = errors.New("finance: bic country does not exist")
	// ErrBICTest indicates a test BIC, recognizable by a location code
	// ending in 0.
	ErrBICTest = errors.New("finance: bic is a test bic")
	// ErrBICUnconnected indicates a BIC that is not connected to the
	// SWIFT network, recognizable by a location code ending in 1.
	ErrBICUnconnected = errors.New("finance: bic is not connected to the network")
)

// BIC is a validated ISO 9362 Bank Identifier Code: a four letter bank
// code, an ISO 3166 country code, a two character location code and an
// optional three character branch code. The zero value is not a valid
// BIC; use ParseBIC.
type BIC struct {
	value string
}

// ParseBIC validates the supplied BIC and returns it as a value.
func ParseBIC(bic string) (BIC, error) {
	if err := CheckBIC(bic); err != nil {
		return BIC{}, err
	}
	return BIC{value: bic}, nil
}

// IsValidBIC reports whether the supplied string is a valid BIC.
func IsValidBIC(bic string) bool {
	return CheckBIC(bic) == nil
}

// CheckBIC validates the supplied BIC and reports the first violated
// rule: 8 or 11 characters, upper case alphanumeric, an alphabetic bank
// code, an existing ISO 3166 country, and a location code that marks
// neither a test BIC nor an unconnected one.
func CheckBIC(bic string) error {
	if strings.TrimSpace(bic) == "" || (len(bic) != shortBICLength && len(bic) != longBICLength) {
		return fmt.Errorf("%w: %q", ErrBICLength, bic)
	}
	if !isUpperAlphanumeric(bic) {
		return fmt.Errorf("%w: %q", ErrBICFormat, bic)
	}

	if bankCode := bic[:4]; !isUpperAlphabetic(bankCode) {
		return fmt.Errorf("%w: %q", ErrBICBankCode, bankCode)
	}
	if countryCode := bic[4:6]; !country.IsValidAlpha2(countryCode) {
		return fmt.Errorf("%w: %q", ErrBICCountry, countryCode)
	}

	switch bic[7] {
	case '0':
		return fmt.Errorf("%w: %q", ErrBICTest, bic)
	case '1':
		return fmt.Errorf("%w: %q", ErrBICUnconnected, bic)
	}
	return nil
}

// BankCode returns the four letter bank code of the BIC.
func (b BIC) BankCode() string {
	return b.value[:4]
}

// CountryCode returns the ISO 3166 alpha-2 country code of the BIC.
func (b BIC) CountryCode() string {
	return b.value[4:6]
}

// LocationCode returns the two character location code of the BIC.
func (b BIC) LocationCode() string {
	return b.value[6:8]
}

// BranchCode returns the three character branch code, or the empty
// string for an 8 character BIC.
func (b BIC) BranchCode() string {
	if len(b.value) == shortBICLength {
		return ""
	}
	return b.value[shortBICLength:]
}

func (b BIC) String() string {
	return b.value
}
