// Package country is a registry of ISO 3166-1 alpha-2 country codes.
// Besides the currently assigned codes it carries withdrawn codes with
// the period in which they were active, so historical data referencing
// the German Democratic Republic or the Netherlands Antilles can still
// be resolved.
//
// Country names are localized through the CLDR data shipped with
// golang.org/x/text:
//
//	country.NameIn("NL", language.Dutch) // Nederland
package country
