package intmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schotanus/goutil/pkg/intmath"
)

func TestGCD(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		cases := []struct{ a, b, want int64 }{
			{12, 8, 4},
			{8, 12, 4},
			{17, 5, 1},
			{100, 10, 10},
			{21, 14, 7},
		}
		for _, c := range cases {
			got, err := intmath.GCD(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got, "GCD(%d,%d)", c.a, c.b)
		}
	})

	t.Run("zero divisor", func(t *testing.T) {
		_, err := intmath.GCD(12, 0)
		assert.ErrorIs(t, err, intmath.ErrZeroDivisor)
	})
}

func TestLCM(t *testing.T) {
	got, err := intmath.LCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)

	got, err = intmath.LCM(21, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = intmath.LCM(4, 0)
	assert.ErrorIs(t, err, intmath.ErrZeroDivisor)
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		assert.True(t, intmath.IsPrime(p), "IsPrime(%d)", p)
	}

	composites := []int64{-7, 0, 1, 4, 9, 15, 7917}
	for _, c := range composites {
		assert.False(t, intmath.IsPrime(c), "IsPrime(%d)", c)
	}
}

func TestFactorial(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		cases := map[int]int64{
			0:  1,
			1:  1,
			5:  120,
			10: 3628800,
			20: 2432902008176640000,
		}
		for n, want := range cases {
			got, err := intmath.Factorial(n)
			require.NoError(t, err)
			assert.Equal(t, want, got, "Factorial(%d)", n)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := intmath.Factorial(-1)
		assert.ErrorIs(t, err, intmath.ErrFactorialRange)

		_, err = intmath.Factorial(intmath.MaxFactorial + 1)
		assert.ErrorIs(t, err, intmath.ErrFactorialRange)
	})
}

func TestRound(t *testing.T) {
	t.Run("half rounds up", func(t *testing.T) {
		cases := []struct {
			value    int64
			position int
			want     int64
		}{
			{54, 1, 50},
			{55, 1, 60},
			{-55, 1, -50},
			{449, 2, 400},
			{450, 2, 500},
			{1234, 3, 1000},
			{42, 0, 42},
		}
		for _, c := range cases {
			got, err := intmath.Round(c.value, c.position)
			require.NoError(t, err)
			assert.Equal(t, c.want, got, "Round(%d,%d)", c.value, c.position)
		}
	})

	t.Run("negative position", func(t *testing.T) {
		_, err := intmath.Round(54, -1)
		assert.ErrorIs(t, err, intmath.ErrNegativePosition)
	})
}

func TestRoundUp(t *testing.T) {
	cases := []struct {
		value    int64
		position int
		want     int64
	}{
		{54, 1, 60},
		{50, 1, 50},
		{-55, 1, -50},
		{401, 2, 500},
	}
	for _, c := range cases {
		got, err := intmath.RoundUp(c.value, c.position)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "RoundUp(%d,%d)", c.value, c.position)
	}

	_, err := intmath.RoundUp(54, -1)
	assert.ErrorIs(t, err, intmath.ErrNegativePosition)
}

func TestFactorize(t *testing.T) {
	t.Run("known factorizations", func(t *testing.T) {
		factors, err := intmath.Factorize(45)
		require.NoError(t, err)
		require.Len(t, factors, 2)
		assert.Equal(t, intmath.PrimeFactor{Prime: 3, Exponent: 2}, factors[0])
		assert.Equal(t, intmath.PrimeFactor{Prime: 5, Exponent: 1}, factors[1])

		factors, err = intmath.Factorize(1024)
		require.NoError(t, err)
		require.Len(t, factors, 1)
		assert.Equal(t, intmath.PrimeFactor{Prime: 2, Exponent: 10}, factors[0])
	})

	t.Run("prime input", func(t *testing.T) {
		factors, err := intmath.Factorize(7919)
		require.NoError(t, err)
		require.Len(t, factors, 1)
		assert.Equal(t, intmath.PrimeFactor{Prime: 7919, Exponent: 1}, factors[0])
	})

	t.Run("factors beyond the prime table", func(t *testing.T) {
		// 1009 and 1013 are both larger than the largest table prime.
		factors, err := intmath.Factorize(1009 * 1013)
		require.NoError(t, err)
		require.Len(t, factors, 2)
		assert.Equal(t, int64(1009), factors[0].Prime)
		assert.Equal(t, int64(1013), factors[1].Prime)
	})

	t.Run("reconstructs the input", func(t *testing.T) {
		for _, value := range []int64{2, 12, 97, 360, 999983, 1 << 20, 600851475143} {
			factors, err := intmath.Factorize(value)
			require.NoError(t, err)

			product := int64(1)
			for _, f := range factors {
				for range f.Exponent {
					product *= f.Prime
				}
			}
			assert.Equal(t, value, product, "product of factors of %d", value)
		}
	})

	t.Run("rejects values below two", func(t *testing.T) {
		for _, value := range []int64{-4, 0, 1} {
			_, err := intmath.Factorize(value)
			assert.ErrorIs(t, err, intmath.ErrNotFactorizable)
		}
	})
}

func TestPrimeFactorString(t *testing.T) {
	f := intmath.PrimeFactor{Prime: 3, Exponent: 2}
	assert.Equal(t, "3^2", f.String())
}
