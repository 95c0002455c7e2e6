package magnitude

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidNumber      = errors.New("not numeric")
	ErrFractionalExponent = errors.New("exponent must be integer")
)

// Field names reported in ValidationError
const (
	FieldCoefficient = "coefficient"
	FieldExponent    = "exponent"
)

// ValidationError reports which input field was rejected and why
type ValidationError struct {
	Field string // FieldCoefficient or FieldExponent
	Value string // Raw input text
	Err   error  // ErrInvalidNumber or ErrFractionalExponent
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
