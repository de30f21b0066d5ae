package nd

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidShape    = errors.New("invalid shape")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ShapeMismatchError reports the two shapes that failed to match in a binary operation.
type ShapeMismatchError struct {
	Op    string // Operation that required equal shapes
	Left  Shape
	Right Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("shape mismatch: %v on the left and %v on the right", e.Left, e.Right)
	}
	return fmt.Sprintf("%s: shape mismatch: %v on the left and %v on the right", e.Op, e.Left, e.Right)
}

// Unwrap makes errors.Is(err, ErrShapeMismatch) hold.
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// CheckSameShape returns a *ShapeMismatchError when left and right differ.
func CheckSameShape(op string, left, right Shape) error {
	if left.Equal(right) {
		return nil
	}
	return &ShapeMismatchError{Op: op, Left: left.Clone(), Right: right.Clone()}
}
