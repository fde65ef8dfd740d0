package wizmon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperand an operand of the wrong type, or a non-integral count
	ErrInvalidOperand = errors.New("invalid operand type")

	// ErrDivisionByZero a Div or Mod by zero
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOp an Op that Apply does not implement
	ErrUnknownOp = errors.New("unknown operation")
)

// OperandError records the operation and operand rejected by Apply.
type OperandError struct {
	Op      Op
	Operand interface{}
}

func (e *OperandError) Error() string {
	if e.Operand == nil {
		return fmt.Sprintf("%v: %v: missing operand", e.Op, ErrInvalidOperand)
	}
	return fmt.Sprintf("%v: %v: %v (%T)", e.Op, ErrInvalidOperand, e.Operand, e.Operand)
}

func (e *OperandError) Unwrap() error {
	return ErrInvalidOperand
}
