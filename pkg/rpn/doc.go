// Package rpn evaluates expressions in reverse Polish notation, the
// stack based form where operators follow their operands: "3 4 +" is 7.
//
// A Calculator keeps its operand stack between evaluations, so an
// expression can be built up incrementally:
//
//	calc := rpn.New()
//	calc.Evaluate("3 4 +") // 7
//	calc.Evaluate("2 *")   // 14
//
// The "ac" command clears the stack. The operator set mirrors the
// standard math package: besides + - * / there are unary functions such
// as sqrt, sin and log, and binary ones such as pow, min and max.
package rpn
