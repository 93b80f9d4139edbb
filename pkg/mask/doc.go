// Package mask formats values against character masks, the way entry
// fields in forms do. A mask mixes mask characters with literals:
//
//	'#'  digit
//	'A'  letter
//	'U'  letter, converted to upper case
//	'L'  letter, converted to lower case
//	'N'  letter or digit
//	'?'  any character
//
// Everything else in a mask is a literal that appears in the formatted
// value as is:
//
//	mask.Apply("(UU-####)", "nl1234")   // (NL-1234)
//	mask.Strip("(UU-####)", "(NL-1234)") // NL1234
package mask
