package rpn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schotanus/goutil/pkg/rpn"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name       string
		expression string
		want       float64
	}{
		{name: "addition", expression: "3 4 +", want: 7},
		{name: "subtraction", expression: "10 4 -", want: 6},
		{name: "multiplication", expression: "6 7 *", want: 42},
		{name: "division", expression: "1 8 /", want: 0.125},
		{name: "operand order", expression: "2 10 pow", want: 1024},
		{name: "unary operator", expression: "16 sqrt", want: 4},
		{name: "nested expression", expression: "3 4 + 2 *", want: 14},
		{name: "min and max", expression: "3 7 min 10 max", want: 10},
		{name: "pythagoras", expression: "3 4 hypot", want: 5},
		{name: "degrees", expression: "3.141592653589793 degrees", want: 180},
		{name: "single number", expression: "42", want: 42},
		{name: "empty expression", expression: "", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := rpn.New().Evaluate(tc.expression)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, result, 1e-9)
		})
	}
}

func TestEvaluateIncremental(t *testing.T) {
	calc := rpn.New()

	result, err := calc.Evaluate("3 4 +")
	require.NoError(t, err)
	assert.Equal(t, 7.0, result)

	// The stack survives, so the next expression continues with 7.
	result, err = calc.Evaluate("2 *")
	require.NoError(t, err)
	assert.Equal(t, 14.0, result)
	assert.Equal(t, 1, calc.Depth())
}

func TestEvaluateClearCommand(t *testing.T) {
	calc := rpn.New()

	_, err := calc.Evaluate("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, 3, calc.Depth())

	result, err := calc.Evaluate("ac 5 5 +")
	require.NoError(t, err)
	assert.Equal(t, 10.0, result)
	assert.Equal(t, 1, calc.Depth())
}

func TestEvaluateErrors(t *testing.T) {
	t.Run("unary underflow", func(t *testing.T) {
		_, err := rpn.New().Evaluate("sqrt")
		assert.ErrorIs(t, err, rpn.ErrStackUnderflow)
	})

	t.Run("binary underflow", func(t *testing.T) {
		_, err := rpn.New().Evaluate("1 +")
		assert.ErrorIs(t, err, rpn.ErrStackUnderflow)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := rpn.New().Evaluate("1 2 bogus")
		assert.ErrorIs(t, err, rpn.ErrInvalidToken)
	})
}

func TestEvaluateSpecialValues(t *testing.T) {
	result, err := rpn.New().Evaluate("1 0 /")
	require.NoError(t, err)
	assert.True(t, math.IsInf(result, 1), "division by zero follows IEEE 754")
}
