// Package codedesc pairs machine codes with human readable
// descriptions, the shape dropdown lists and reference tables are made
// of. Sorting by description uses locale aware collation, so a Dutch
// list puts "IJsland" where a Dutch reader expects it.
package codedesc
