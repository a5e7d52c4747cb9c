package numeric

import (
	"fmt"
	"math"
	"strconv"
)

// ParseValue parses a locale-invariant decimal numeral for the given kind.
//
// Integer kinds accept only digits with an optional leading sign. KindFloat64
// accepts standard decimal and exponential notation plus the literal
// infinity forms understood by strconv ("Inf", "Infinity", signed variants).
// NaN text is rejected because NaN has no encodable point form.
func ParseValue(kind Kind, s string) (Value, error) {
	switch kind {
	case KindInt32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("numeric: parse %s %q: %w", kind, s, err)
		}
		return Int32Value(int32(i)), nil
	case KindInt64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("numeric: parse %s %q: %w", kind, s, err)
		}
		return Int64Value(i), nil
	case KindFloat64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("numeric: parse %s %q: %w", kind, s, err)
		}
		if math.IsNaN(f) {
			return Value{}, fmt.Errorf("numeric: parse %s %q: NaN is not a point value", kind, s)
		}
		return Float64Value(f), nil
	default:
		return Value{}, fmt.Errorf("numeric: parse: invalid kind %d", kind)
	}
}

// ParseValueLenient is ParseValue with a float fallback for integer kinds:
// text like "3.0" parses as the truncated integer 3. Used when coercing
// stored or user-supplied native values rather than query bounds.
func ParseValueLenient(kind Kind, s string) (Value, error) {
	v, err := ParseValue(kind, s)
	if err == nil || kind == KindFloat64 {
		return v, err
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || math.IsNaN(f) {
		return Value{}, err
	}
	switch kind {
	case KindInt32:
		return Int32Value(int32(f)), nil
	case KindInt64:
		return Int64Value(int64(f)), nil
	default:
		return Value{}, err
	}
}

// FormatValue renders a decoded value back to its readable decimal form.
func FormatValue(v Value) string {
	return v.String()
}
