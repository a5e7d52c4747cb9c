package numeric

import (
	"math"
	"strconv"
)

// Value is a small tagged numeric union.
//
// The payload is carried as raw bits in a uint64 so a Value is a fixed-size,
// allocation-free scalar regardless of kind. An interface{} here would force
// heap allocation on every decoded doc value.
type Value struct {
	kind Kind
	bits uint64
}

// Int32Value returns a Value holding a 32-bit integer.
func Int32Value(v int32) Value {
	return Value{kind: KindInt32, bits: uint64(uint32(v))}
}

// Int64Value returns a Value holding a 64-bit integer.
func Int64Value(v int64) Value {
	return Value{kind: KindInt64, bits: uint64(v)}
}

// Float64Value returns a Value holding a 64-bit float.
func Float64Value(v float64) Value {
	return Value{kind: KindFloat64, bits: math.Float64bits(v)}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is the zero Value (no kind, no payload).
func (v Value) IsZero() bool { return v.kind == KindInvalid && v.bits == 0 }

// Int32 returns the payload as an int32. It panics if the kind is not KindInt32.
func (v Value) Int32() int32 {
	if v.kind != KindInt32 {
		panic("numeric: Value is not an Int32")
	}
	return int32(uint32(v.bits))
}

// Int64 returns the payload as an int64. It panics if the kind is not KindInt64.
func (v Value) Int64() int64 {
	if v.kind != KindInt64 {
		panic("numeric: Value is not an Int64")
	}
	return int64(v.bits)
}

// Float64 returns the payload as a float64. It panics if the kind is not KindFloat64.
func (v Value) Float64() float64 {
	if v.kind != KindFloat64 {
		panic("numeric: Value is not a Float64")
	}
	return math.Float64frombits(v.bits)
}

// IsNaN reports whether v holds a floating point NaN.
// NaN is not encodable; callers must reject it before Encode.
func (v Value) IsNaN() bool {
	return v.kind == KindFloat64 && math.IsNaN(math.Float64frombits(v.bits))
}

// RawBits returns the doc-value bit pattern of v: the plain two's complement
// value for integer kinds and the IEEE-754 bits for KindFloat64.
//
// This is NOT the order-preserving point encoding; numeric doc-value columns
// store raw bits and leave sort-order handling to their consumer.
func (v Value) RawBits() int64 {
	switch v.kind {
	case KindInt32:
		return int64(int32(uint32(v.bits)))
	case KindInt64:
		return int64(v.bits)
	case KindFloat64:
		return int64(v.bits)
	default:
		return 0
	}
}

// ValueFromRawBits reconstructs a Value from its RawBits form.
func ValueFromRawBits(kind Kind, bits int64) Value {
	switch kind {
	case KindInt32:
		return Int32Value(int32(bits))
	case KindInt64:
		return Int64Value(bits)
	case KindFloat64:
		return Value{kind: KindFloat64, bits: uint64(bits)}
	default:
		return Value{}
	}
}

// Compare returns -1, 0 or 1 ordering v against o.
// Both values must share the same kind; mixed-kind comparison panics.
// For KindFloat64, -0.0 orders before +0.0 and NaN is not comparable.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		panic("numeric: comparing values of different kinds")
	}
	switch v.kind {
	case KindInt32:
		return cmp(int64(v.Int32()), int64(o.Int32()))
	case KindInt64:
		return cmp(v.Int64(), o.Int64())
	case KindFloat64:
		// Total order via sortable bits, so -0.0 < +0.0.
		return cmp(int64(sortableFloat64Bits(v.bits)), int64(sortableFloat64Bits(o.bits)))
	default:
		return 0
	}
}

// String returns a readable decimal rendition of the value.
func (v Value) String() string {
	switch v.kind {
	case KindInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

func cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
