package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/schotanus/goutil/pkg/country"
)

// ErrMalformed indicates a locale identifier that does not follow the
// language[_COUNTRY[_variant]] form.
var ErrMalformed = errors.New("locale: malformed locale")

// Parse converts an underscore separated locale identifier into a BCP 47
// language tag. The identifier consists of a two letter language code,
// optionally followed by an ISO 3166 country code and a variant:
// "nl", "nl_NL" and "en_US_posix" are all accepted. Language case is
// normalized, so "NL_nl" parses as well.
func Parse(locale string) (language.Tag, error) {
	parts := strings.Split(locale, "_")
	if len(parts) > 3 {
		return language.Und, fmt.Errorf("%w: %q", ErrMalformed, locale)
	}

	lang := strings.ToLower(strings.TrimSpace(parts[0]))
	if len(lang) != 2 {
		return language.Und, fmt.Errorf("%w: illegal language %q in %q", ErrMalformed, lang, locale)
	}

	tag := lang
	if len(parts) > 1 {
		countryCode := strings.ToUpper(strings.TrimSpace(parts[1]))
		if countryCode != "" {
			if len(countryCode) != 2 || !IsValidISOCountry(countryCode) {
				return language.Und, fmt.Errorf("%w: illegal country %q in %q", ErrMalformed, countryCode, locale)
			}
			tag += "-" + countryCode
		}
	}
	if len(parts) == 3 {
		if variant := strings.TrimSpace(parts[2]); variant != "" {
			tag += "-" + strings.ToLower(variant)
		}
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrMalformed, locale, err)
	}
	return parsed, nil
}

// MustParse is Parse for identifiers known to be valid at compile time;
// it panics on malformed input.
func MustParse(locale string) language.Tag {
	tag, err := Parse(locale)
	if err != nil {
		panic(err)
	}
	return tag
}

// IsValidISOCountry reports whether the supplied code is an ISO 3166
// alpha-2 country code, current or withdrawn.
func IsValidISOCountry(alpha2 string) bool {
	return country.IsValidAlpha2(alpha2)
}
