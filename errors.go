package pointfield

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pointfield/numeric"
)

var (
	// ErrNaNValue is returned when a NaN reaches a point-field operation.
	// NaN has no order-preserving encoding and must be rejected up front.
	ErrNaNValue = errors.New("NaN is not a point value")
)

// ErrKindMismatch indicates a value or configuration whose numeric kind does
// not match the field type it was used with.
type ErrKindMismatch struct {
	Expected numeric.Kind
	Actual   numeric.Kind
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch: expected %s, got %s", e.Expected, e.Actual)
}
