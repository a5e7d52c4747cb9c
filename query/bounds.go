// Package query translates user-supplied textual bounds into precise numeric
// predicates and builds the point queries the index collaborator executes.
package query

import (
	"fmt"

	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/schema"
)

// Bounds carries the optional textual min/max of a range request plus the
// inclusivity flags. Nil means the bound is open.
type Bounds struct {
	Min          *string
	Max          *string
	MinInclusive bool
	MaxInclusive bool
}

// Interval is the resolved closed-closed numeric interval. Low > High is a
// legal result: it is a queryable empty interval matching zero documents.
type Interval struct {
	Low  numeric.Value
	High numeric.Value
}

// Empty reports whether the interval matches no value.
func (iv Interval) Empty() bool {
	return iv.Low.Compare(iv.High) > 0
}

// BoundParseError indicates a textual bound that is not a valid numeral for
// the field's kind. It is a request rejection, never retryable.
type BoundParseError struct {
	Field string
	Token string
	cause error
}

func (e *BoundParseError) Error() string {
	return fmt.Sprintf("field %q: invalid bound %q", e.Field, e.Token)
}

func (e *BoundParseError) Unwrap() error { return e.cause }

// ResolveBounds turns textual bounds into a closed interval for the field's
// kind.
//
// An open bound resolves to the kind's extreme (infinity for floats) and is
// never inclusivity-adjusted; only supplied, parsed bounds are. Exclusive
// integer bounds step by one, and stepping past the kind's extreme yields a
// canonical empty interval rather than wrapping around. Exclusive float
// bounds step to the adjacent representable value.
func ResolveBounds(cfg *schema.FieldConfig, b Bounds) (Interval, error) {
	kind := cfg.Kind

	low := kind.MinValue()
	if b.Min != nil {
		v, err := numeric.ParseValue(kind, *b.Min)
		if err != nil {
			return Interval{}, &BoundParseError{Field: cfg.Name, Token: *b.Min, cause: err}
		}
		if !b.MinInclusive {
			stepped, ok := numeric.Increment(v)
			if !ok {
				return emptyInterval(kind), nil
			}
			v = stepped
		}
		low = v
	}

	high := kind.MaxValue()
	if b.Max != nil {
		v, err := numeric.ParseValue(kind, *b.Max)
		if err != nil {
			return Interval{}, &BoundParseError{Field: cfg.Name, Token: *b.Max, cause: err}
		}
		if !b.MaxInclusive {
			stepped, ok := numeric.Decrement(v)
			if !ok {
				return emptyInterval(kind), nil
			}
			v = stepped
		}
		high = v
	}

	return Interval{Low: low, High: high}, nil
}

// emptyInterval is the canonical empty interval of a kind: Low is the max
// and High the min, so Low > High for every kind with more than one value.
func emptyInterval(kind numeric.Kind) Interval {
	return Interval{Low: kind.MaxValue(), High: kind.MinValue()}
}
