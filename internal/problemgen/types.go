package problemgen

import (
	"fmt"
	"strings"
)

// Operation is one of the four arithmetic operations a quiz can drill.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists every supported operation in menu order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol returns the display symbol for the operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return "?"
}

// Valid reports whether o is a supported operation.
func (o Operation) Valid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

func (o Operation) String() string {
	return string(o)
}

// ParseOperation accepts an operation name ("add", "sub", ...) or symbol
// ("+", "-", "x", "*", "×", "/", "÷").
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition", "plus", "+":
		return OpAdd, nil
	case "sub", "subtract", "subtraction", "minus", "-":
		return OpSubtract, nil
	case "mul", "multiply", "multiplication", "times", "x", "*", "×":
		return OpMultiply, nil
	case "div", "divide", "division", "/", "÷":
		return OpDivide, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Problem is a single generated arithmetic problem.
// For subtraction and division the operands are the ones to display:
// A >= B for subtraction, and A is an exact multiple of B for division.
type Problem struct {
	Op     Operation
	A      int
	B      int
	Answer int
}

// Text renders the problem prompt, e.g. "12 + 7 = ?".
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op.Symbol(), p.B)
}
