package conv

import (
	"errors"
	"fmt"

	"buddha-num-conv/internal/scale"
)

// ErrMagnitudeTooLarge means the number needs a scale beyond 不可説不可説転.
var ErrMagnitudeTooLarge = errors.New("magnitude too large to express")

// OverflowError reports the scale ordinal that the decomposition asked for
type OverflowError struct {
	Ordinal int // Required ordinal, always above scale.MaxOrdinal
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("magnitude too large to express: needs scale ordinal %d, largest is %d",
		e.Ordinal, scale.MaxOrdinal)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrMagnitudeTooLarge
}
