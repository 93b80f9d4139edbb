package country

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Country is an ISO 3166-1 entry. A zero ActiveFrom means the code was
// assigned in the first edition of the standard; a zero ActiveUntil
// means the code is still assigned.
type Country struct {
	Alpha2      string
	ActiveFrom  time.Time
	ActiveUntil time.Time
}

// IsActive reports whether the country is assigned today.
func (c Country) IsActive() bool {
	return c.IsActiveAt(time.Now())
}

// IsActiveAt reports whether the country was assigned at the supplied
// date: strictly after ActiveFrom and strictly before ActiveUntil.
func (c Country) IsActiveAt(date time.Time) bool {
	if !c.ActiveFrom.IsZero() && !date.After(c.ActiveFrom) {
		return false
	}
	if !c.ActiveUntil.IsZero() && !date.Before(c.ActiveUntil) {
		return false
	}
	return true
}

// Name returns the English name of the country, or the empty string for
// a code the CLDR data does not know.
func (c Country) Name() string {
	return NameIn(c.Alpha2, language.English)
}

// Lookup returns the country with the supplied alpha-2 code. The code
// is upper cased before the lookup. Withdrawn codes are found as well;
// check IsActive when that matters.
func Lookup(alpha2 string) (Country, bool) {
	c, ok := countries[strings.ToUpper(alpha2)]
	return c, ok
}

// IsValidAlpha2 reports whether the supplied code is an ISO 3166-1
// alpha-2 code, assigned now or in the past.
func IsValidAlpha2(alpha2 string) bool {
	_, ok := countries[strings.ToUpper(alpha2)]
	return ok
}

// All returns every registered country ordered by alpha-2 code,
// including withdrawn ones.
func All() []Country {
	result := make([]Country, 0, len(alpha2Codes))
	for _, code := range alpha2Codes {
		result = append(result, countries[code])
	}
	return result
}

// ActiveAt returns the countries assigned at the supplied date, ordered
// by alpha-2 code.
func ActiveAt(date time.Time) []Country {
	var result []Country
	for _, code := range alpha2Codes {
		if c := countries[code]; c.IsActiveAt(date) {
			result = append(result, c)
		}
	}
	return result
}

// NameIn returns the name of the supplied alpha-2 code in the language
// of the supplied tag, or the empty string when either the code or a
// translation is unknown.
func NameIn(alpha2 string, tag language.Tag) string {
	region, err := language.ParseRegion(alpha2)
	if err != nil {
		return ""
	}
	return display.Regions(tag).Name(region)
}

// alpha2Codes holds every assigned code plus the withdrawn codes DD
// (German Democratic Republic) and AN (Netherlands Antilles), sorted.
var alpha2Codes = []string{
	"AD", "AE", "AF", "AG", "AI", "AL", "AM", "AN", "AO", "AQ", "AR", "AS",
	"AT", "AU", "AW", "AX", "AZ", "BA", "BB", "BD", "BE", "BF", "BG", "BH",
	"BI", "BJ", "BL", "BM", "BN", "BO", "BQ", "BR", "BS", "BT", "BV", "BW",
	"BY", "BZ", "CA", "CC", "CD", "CF", "CG", "CH", "CI", "CK", "CL", "CM",
	"CN", "CO", "CR", "CU", "CV", "CW", "CX", "CY", "CZ", "DD", "DE", "DJ",
	"DK", "DM", "DO", "DZ", "EC", "EE", "EG", "EH", "ER", "ES", "ET", "FI",
	"FJ", "FK", "FM", "FO", "FR", "GA", "GB", "GD", "GE", "GF", "GG", "GH",
	"GI", "GL", "GM", "GN", "GP", "GQ", "GR", "GS", "GT", "GU", "GW", "GY",
	"HK", "HM", "HN", "HR", "HT", "HU", "ID", "IE", "IL", "IM", "IN", "IO",
	"IQ", "IR", "IS", "IT", "JE", "JM", "JO", "JP", "KE", "KG", "KH", "KI",
	"KM", "KN", "KP", "KR", "KW", "KY", "KZ", "LA", "LB", "LC", "LI", "LK",
	"LR", "LS", "LT", "LU", "LV", "LY", "MA", "MC", "MD", "ME", "MF", "MG",
	"MH", "MK", "ML", "MM", "MN", "MO", "MP", "MQ", "MR", "MS", "MT", "MU",
	"MV", "MW", "MX", "MY", "MZ", "NA", "NC", "NE", "NF", "NG", "NI", "NL",
	"NO", "NP", "NR", "NU", "NZ", "OM", "PA", "PE", "PF", "PG", "PH", "PK",
	"PL", "PM", "PN", "PR", "PS", "PT", "PW", "PY", "QA", "RE", "RO", "RS",
	"RU", "RW", "SA", "SB", "SC", "SD", "SE", "SG", "SH", "SI", "SJ", "SK",
	"SL", "SM", "SN", "SO", "SR", "SS", "ST", "SV", "SX", "SY", "SZ", "TC",
	"TD", "TF", "TG", "TH", "TJ", "TK", "TL", "TM", "TN", "TO", "TR", "TT",
	"TV", "TW", "TZ", "UA", "UG", "UM", "US", "UY", "UZ", "VA", "VC", "VE",
	"VG", "VI", "VN", "VU", "WF", "WS", "YE", "YT", "ZA", "ZM", "ZW",
}

var countries = func() map[string]Country {
	m := make(map[string]Country, len(alpha2Codes))
	for _, code := range alpha2Codes {
		m[code] = Country{Alpha2: code}
	}
	m["DD"] = Country{
		Alpha2:      "DD",
		ActiveFrom:  time.Date(1974, time.December, 15, 0, 0, 0, 0, time.UTC),
		ActiveUntil: time.Date(1990, time.December, 4, 0, 0, 0, 0, time.UTC),
	}
	m["AN"] = Country{
		Alpha2:      "AN",
		ActiveUntil: time.Date(2010, time.December, 15, 0, 0, 0, 0, time.UTC),
	}
	return m
}()
