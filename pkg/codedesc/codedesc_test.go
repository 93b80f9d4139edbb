package codedesc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/schotanus/goutil/pkg/codedesc"
)

func TestSortByCode(t *testing.T) {
	pairs := []codedesc.Pair[string]{
		{Code: "NL", Description: "Netherlands"},
		{Code: "BE", Description: "Belgium"},
		{Code: "DE", Description: "Germany"},
	}
	codedesc.SortByCode(pairs, true)

	assert.Equal(t, "BE", pairs[0].Code)
	assert.Equal(t, "DE", pairs[1].Code)
	assert.Equal(t, "NL", pairs[2].Code)

	codedesc.SortByCode(pairs, false)
	assert.Equal(t, "NL", pairs[0].Code)
}

func TestSortByDescription(t *testing.T) {
	t.Run("english collation", func(t *testing.T) {
		pairs := []codedesc.Pair[int]{
			{Code: 1, Description: "cherry"},
			{Code: 2, Description: "Apple"},
			{Code: 3, Description: "banana"},
		}
		codedesc.SortByDescription(pairs, language.English, true)

		assert.Equal(t, "Apple", pairs[0].Description)
		assert.Equal(t, "banana", pairs[1].Description)
		assert.Equal(t, "cherry", pairs[2].Description)
	})

	t.Run("collation ignores case unlike byte order", func(t *testing.T) {
		pairs := []codedesc.Pair[string]{
			{Code: "a", Description: "zebra"},
			{Code: "b", Description: "Aardvark"},
		}
		codedesc.SortByDescription(pairs, language.English, true)

		assert.Equal(t, "Aardvark", pairs[0].Description, "byte order would put Z before a")
	})
}

func TestPairString(t *testing.T) {
	p := codedesc.Pair[string]{Code: "NL", Description: "Netherlands"}
	assert.Equal(t, "Netherlands", p.String())
}
