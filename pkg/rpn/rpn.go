package rpn

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrStackUnderflow indicates an operator with too few operands on
	// the stack.
	ErrStackUnderflow = errors.New("rpn: not enough operands on the stack")
	// ErrInvalidToken indicates a token that is neither an operator,
	// a command nor a number.
	ErrInvalidToken = errors.New("rpn: invalid token")
)

var unaryOperators = map[string]func(float64) float64{
	"abs":     math.Abs,
	"acos":    math.Acos,
	"asin":    math.Asin,
	"atan":    math.Atan,
	"cbrt":    math.Cbrt,
	"ceil":    math.Ceil,
	"cos":     math.Cos,
	"cosh":    math.Cosh,
	"exp":     math.Exp,
	"expm1":   math.Expm1,
	"floor":   math.Floor,
	"log":     math.Log,
	"log10":   math.Log10,
	"rint":    math.RoundToEven,
	"round":   math.Round,
	"sin":     math.Sin,
	"sinh":    math.Sinh,
	"sqrt":    math.Sqrt,
	"tan":     math.Tan,
	"tanh":    math.Tanh,
	"degrees": func(x float64) float64 { return x * 180 / math.Pi },
	"radians": func(x float64) float64 { return x * math.Pi / 180 },
}

var binaryOperators = map[string]func(left, right float64) float64{
	"atan2": math.Atan2,
	"hypot": math.Hypot,
	"max":   math.Max,
	"min":   math.Min,
	"pow":   math.Pow,
	"+":     func(left, right float64) float64 { return left + right },
	"-":     func(left, right float64) float64 { return left - right },
	"*":     func(left, right float64) float64 { return left * right },
	"/":     func(left, right float64) float64 { return left / right },
}

// Calculator evaluates reverse Polish notation expressions. The operand
// stack survives between Evaluate calls. The zero value is ready for
// use.
type Calculator struct {
	stack []float64
}

// New returns an empty calculator.
func New() *Calculator {
	return &Calculator{}
}

// Evaluate processes the whitespace separated tokens of the supplied
// expression: numbers are pushed, operators pop their operands and push
// their result, and the command "ac" clears the stack. It returns the
// result of the last token, or 0 for an empty expression.
func (c *Calculator) Evaluate(expression string) (float64, error) {
	var result float64
	for _, token := range strings.Fields(expression) {
		switch {
		case token == "ac":
			c.Clear()
		case unaryOperators[token] != nil:
			value, err := c.applyUnary(token)
			if err != nil {
				return 0, err
			}
			result = value
		case binaryOperators[token] != nil:
			value, err := c.applyBinary(token)
			if err != nil {
				return 0, err
			}
			result = value
		default:
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
			}
			c.stack = append(c.stack, value)
			result = value
		}
	}
	return result, nil
}

// Depth returns the number of operands on the stack.
func (c *Calculator) Depth() int {
	return len(c.stack)
}

// Clear empties the operand stack.
func (c *Calculator) Clear() {
	c.stack = c.stack[:0]
}

func (c *Calculator) applyUnary(token string) (float64, error) {
	if len(c.stack) < 1 {
		return 0, fmt.Errorf("%w: unary operator %q", ErrStackUnderflow, token)
	}
	operand := c.pop()
	result := unaryOperators[token](operand)
	c.stack = append(c.stack, result)
	return result, nil
}

func (c *Calculator) applyBinary(token string) (float64, error) {
	if len(c.stack) < 2 {
		return 0, fmt.Errorf("%w: binary operator %q", ErrStackUnderflow, token)
	}
	right := c.pop()
	left := c.pop()
	result := binaryOperators[token](left, right)
	c.stack = append(c.stack, result)
	return result, nil
}

func (c *Calculator) pop() float64 {
	value := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return value
}
