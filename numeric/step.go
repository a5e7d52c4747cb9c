package numeric

import "math"

// NextUp returns the adjacent representable float strictly greater than v,
// or v itself for +Inf and NaN. NextUp(-0.0) and NextUp(0.0) both return the
// smallest positive subnormal. This is proper adjacent-value stepping, never
// an epsilon offset.
func NextUp(v float64) float64 {
	return math.Nextafter(v, math.Inf(1))
}

// NextDown returns the adjacent representable float strictly less than v,
// or v itself for -Inf and NaN.
func NextDown(v float64) float64 {
	return math.Nextafter(v, math.Inf(-1))
}

// Increment returns the value one step above v, with ok=false when v is
// already the kind's maximum so that callers can map the overflow to an
// empty interval instead of wrapping around.
func Increment(v Value) (Value, bool) {
	switch v.kind {
	case KindInt32:
		i := v.Int32()
		if i == math.MaxInt32 {
			return Value{}, false
		}
		return Int32Value(i + 1), true
	case KindInt64:
		i := v.Int64()
		if i == math.MaxInt64 {
			return Value{}, false
		}
		return Int64Value(i + 1), true
	case KindFloat64:
		// NextUp(+Inf) == +Inf, there is no overflow to report.
		return Float64Value(NextUp(v.Float64())), true
	default:
		return Value{}, false
	}
}

// Decrement returns the value one step below v, with ok=false when v is
// already the kind's minimum.
func Decrement(v Value) (Value, bool) {
	switch v.kind {
	case KindInt32:
		i := v.Int32()
		if i == math.MinInt32 {
			return Value{}, false
		}
		return Int32Value(i - 1), true
	case KindInt64:
		i := v.Int64()
		if i == math.MinInt64 {
			return Value{}, false
		}
		return Int64Value(i - 1), true
	case KindFloat64:
		return Float64Value(NextDown(v.Float64())), true
	default:
		return Value{}, false
	}
}
