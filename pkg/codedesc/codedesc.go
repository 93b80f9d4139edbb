package codedesc

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pair couples a code with its description. Codes are ordered, so a
// list of pairs can be sorted either way.
type Pair[T cmp.Ordered] struct {
	Code        T
	Description string
}

// String returns the description, the part meant for human eyes.
func (p Pair[T]) String() string {
	return p.Description
}

// SortByCode sorts the pairs by code.
func SortByCode[T cmp.Ordered](pairs []Pair[T], ascending bool) {
	slices.SortFunc(pairs, func(a, b Pair[T]) int {
		return direction(ascending) * cmp.Compare(a.Code, b.Code)
	})
}

// SortByDescription sorts the pairs by description according to the
// collation rules of the supplied language tag.
func SortByDescription[T cmp.Ordered](pairs []Pair[T], tag language.Tag, ascending bool) {
	collator := collate.New(tag)
	slices.SortFunc(pairs, func(a, b Pair[T]) int {
		return direction(ascending) * collator.CompareString(a.Description, b.Description)
	})
}

func direction(ascending bool) int {
	if ascending {
		return 1
	}
	return -1
}
