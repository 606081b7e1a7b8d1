package engine

import (
	"errors"
	"fmt"
)

// Evaluation errors. Division by zero is the canonical failure; the rest
// cover domain violations the float64 operations can hit.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNotFinite        = errors.New("result is not finite")
	ErrInvalidOperand   = errors.New("invalid operand")
	ErrUnknownOperation = errors.New("unknown operation")
)

// OperandCountError reports an operand list whose length does not satisfy
// the operation's arity.
type OperandCountError struct {
	Op  Op
	Got int
	Min int
	Max int // 0 means unbounded
}

func (e *OperandCountError) Error() string {
	switch {
	case e.Max == e.Min:
		return fmt.Sprintf("%s requires exactly %d operand(s), got %d", e.Op, e.Min, e.Got)
	case e.Max == 0:
		return fmt.Sprintf("%s requires at least %d operand(s), got %d", e.Op, e.Min, e.Got)
	default:
		return fmt.Sprintf("%s requires %d to %d operands, got %d", e.Op, e.Min, e.Max, e.Got)
	}
}

func invalidOperandf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperand, fmt.Sprintf(format, args...))
}
