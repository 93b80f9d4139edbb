package country_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/schotanus/goutil/pkg/country"
)

func TestLookup(t *testing.T) {
	t.Run("existing code", func(t *testing.T) {
		c, ok := country.Lookup("NL")
		require.True(t, ok)
		assert.Equal(t, "NL", c.Alpha2)
		assert.True(t, c.IsActive())
	})

	t.Run("lower case code", func(t *testing.T) {
		_, ok := country.Lookup("nl")
		assert.True(t, ok)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := country.Lookup("XX")
		assert.False(t, ok)
	})
}

func TestIsValidAlpha2(t *testing.T) {
	assert.True(t, country.IsValidAlpha2("DE"))
	assert.True(t, country.IsValidAlpha2("DD"), "withdrawn codes remain valid")
	assert.False(t, country.IsValidAlpha2("ZZ"))
	assert.False(t, country.IsValidAlpha2(""))
}

func TestIsActiveAt(t *testing.T) {
	gdr, ok := country.Lookup("DD")
	require.True(t, ok)

	assert.False(t, gdr.IsActive())
	assert.True(t, gdr.IsActiveAt(time.Date(1980, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, gdr.IsActiveAt(time.Date(1960, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, gdr.IsActiveAt(time.Date(1995, time.June, 1, 0, 0, 0, 0, time.UTC)))

	antilles, ok := country.Lookup("AN")
	require.True(t, ok)
	assert.True(t, antilles.IsActiveAt(time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, antilles.IsActive())
}

func TestAll(t *testing.T) {
	all := country.All()
	assert.Len(t, all, 251)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Alpha2, all[i].Alpha2, "codes must be sorted")
	}
}

func TestActiveAt(t *testing.T) {
	now := country.ActiveAt(time.Now())
	assert.Len(t, now, 249, "DD and AN are withdrawn")
}

func TestNameIn(t *testing.T) {
	assert.Equal(t, "Netherlands", country.NameIn("NL", language.English))
	assert.Equal(t, "Duitsland", country.NameIn("DE", language.Dutch))
	assert.Empty(t, country.NameIn("not a code", language.English))
}
