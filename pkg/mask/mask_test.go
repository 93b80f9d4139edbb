package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schotanus/goutil/pkg/mask"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name  string
		mask  string
		value string
		want  string
	}{
		{name: "digits", mask: "####", value: "1234", want: "1234"},
		{name: "upper case conversion", mask: "(UUU)", value: "abc", want: "(ABC)"},
		{name: "lower case conversion", mask: "LLL", value: "ABC", want: "abc"},
		{name: "dutch postal code", mask: "#### UU", value: "1234ab", want: "1234 AB"},
		{name: "value spells out the literals", mask: "#### UU", value: "1234 ab", want: "1234 AB"},
		{name: "alphanumeric and any", mask: "N?N", value: "a!b", want: "a!b"},
		{name: "phone number", mask: "(###) ###-####", value: "0201234567", want: "(020) 123-4567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mask.Apply(tc.mask, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("empty mask", func(t *testing.T) {
		_, err := mask.Apply("", "abc")
		assert.ErrorIs(t, err, mask.ErrEmptyMask)
	})

	t.Run("value too short", func(t *testing.T) {
		_, err := mask.Apply("####", "12")
		assert.ErrorIs(t, err, mask.ErrValueTooShort)
	})

	t.Run("value too long", func(t *testing.T) {
		_, err := mask.Apply("##", "1234")
		assert.ErrorIs(t, err, mask.ErrValueTooLong)
	})

	t.Run("character does not match mask", func(t *testing.T) {
		_, err := mask.Apply("####", "12a4")
		assert.ErrorIs(t, err, mask.ErrInvalidCharacter)

		_, err = mask.Apply("AAAA", "ab3d")
		assert.ErrorIs(t, err, mask.ErrInvalidCharacter)
	})
}

func TestStrip(t *testing.T) {
	cases := []struct {
		name   string
		mask   string
		masked string
		want   string
	}{
		{name: "literals removed", mask: "(UU-####)", masked: "(NL-1234)", want: "NL1234"},
		{name: "postal code", mask: "#### UU", masked: "1234 AB", want: "1234AB"},
		{name: "no literals", mask: "####", masked: "1234", want: "1234"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mask.Strip(tc.mask, tc.masked)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("round trip", func(t *testing.T) {
		applied, err := mask.Apply("(UU) ##-##", "ab1234")
		require.NoError(t, err)
		assert.Equal(t, "(AB) 12-34", applied)

		stripped, err := mask.Strip("(UU) ##-##", applied)
		require.NoError(t, err)
		assert.Equal(t, "AB1234", stripped)
	})

	t.Run("empty mask", func(t *testing.T) {
		_, err := mask.Strip("", "abc")
		assert.ErrorIs(t, err, mask.ErrEmptyMask)
	})

	t.Run("masked value too long", func(t *testing.T) {
		_, err := mask.Strip("##", "1234")
		assert.ErrorIs(t, err, mask.ErrValueTooLong)
	})

	t.Run("masked value too short", func(t *testing.T) {
		_, err := mask.Strip("####", "12")
		assert.ErrorIs(t, err, mask.ErrValueTooShort)
	})
}
