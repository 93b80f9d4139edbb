package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schotanus/goutil/pkg/finance"
)

func TestParseBIC(t *testing.T) {
	t.Run("eight character bic", func(t *testing.T) {
		bic, err := finance.ParseBIC("ABNANL2A")
		require.NoError(t, err)

		assert.Equal(t, "ABNA", bic.BankCode())
		assert.Equal(t, "NL", bic.CountryCode())
		assert.Equal(t, "2A", bic.LocationCode())
		assert.Empty(t, bic.BranchCode())
		assert.Equal(t, "ABNANL2A", bic.String())
	})

	t.Run("eleven character bic", func(t *testing.T) {
		bic, err := finance.ParseBIC("DEUTDEFF500")
		require.NoError(t, err)

		assert.Equal(t, "DEUT", bic.BankCode())
		assert.Equal(t, "DE", bic.CountryCode())
		assert.Equal(t, "FF", bic.LocationCode())
		assert.Equal(t, "500", bic.BranchCode())
	})
}

func TestCheckBIC(t *testing.T) {
	cases := []struct {
		name string
		bic  string
		err  error
	}{
		{name: "empty", bic: "", err: finance.ErrBICLength},
		{name: "nine characters", bic: "ABNANL2AX", err: finance.ErrBICLength},
		{name: "lower case", bic: "abnanl2a", err: finance.ErrBICFormat},
		{name: "punctuation", bic: "ABNA-L2A", err: finance.ErrBICFormat},
		{name: "digit in bank code", bic: "AB1ANL2A", err: finance.ErrBICBankCode},
		{name: "unknown country", bic: "ABNAXX2A", err: finance.ErrBICCountry},
		{name: "test bic", bic: "DEUTDEF0", err: finance.ErrBICTest},
		{name: "unconnected bic", bic: "DEUTDEF1", err: finance.ErrBICUnconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, finance.CheckBIC(tc.bic), tc.err)
			assert.False(t, finance.IsValidBIC(tc.bic))
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, finance.CheckBIC("DEUTDEFF"))
		assert.True(t, finance.IsValidBIC("DEUTDEFF500"))
	})
}
