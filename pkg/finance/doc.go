// Package finance provides compound interest calculations and checksum
// validation of financial identifiers: modulo 10/11/97 check digits,
// Dutch burger service nummers, International Bank Account Numbers
// (IBAN) and Bank Identifier Codes (BIC).
//
// Identifiers come in two flavors. The Check functions report the first
// violated rule as an error, suitable for user-facing validation
// messages. The IsValid functions reduce that to a boolean. Parsed
// identifiers are value types that are guaranteed valid:
//
//	iban, err := finance.ParseIBAN("NL91ABNA0417164300")
//	if err != nil {
//		return err
//	}
//	fmt.Println(iban.Country(), iban.BBAN()) // NL ABNA0417164300
package finance
