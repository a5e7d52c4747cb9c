package numeric

import (
	"encoding/binary"
	"fmt"
	"math"
)

// This file implements the order-preserving point codec.
//
// Encoded points compare correctly under unsigned lexicographic byte order:
// for two values a < b of the same kind, bytes.Compare(Encode(a), Encode(b)) < 0.
// Integer kinds flip the sign bit of the two's complement form. Float64 uses
// the classic sign-flip/complement transform (flip the sign bit of
// non-negative values, complement all bits of negative ones) so that byte
// order matches IEEE-754 total order, -0.0 ordering just before +0.0 and the
// infinities at the extremes. NaN is excluded; callers reject it up front.
//
// Bytes are big-endian so the most significant byte compares first.

// Encode returns the order-preserving fixed-width encoding of v.
// It panics if v holds NaN or an invalid kind; both are caller errors.
func Encode(v Value) []byte {
	return AppendEncoded(nil, v)
}

// AppendEncoded appends the order-preserving encoding of v to dst and
// returns the extended slice.
func AppendEncoded(dst []byte, v Value) []byte {
	switch v.kind {
	case KindInt32:
		return binary.BigEndian.AppendUint32(dst, uint32(v.Int32())^(1<<31))
	case KindInt64:
		return binary.BigEndian.AppendUint64(dst, uint64(v.Int64())^(1<<63))
	case KindFloat64:
		if v.IsNaN() {
			panic("numeric: NaN is not encodable")
		}
		return binary.BigEndian.AppendUint64(dst, sortableFloat64Bits(v.bits)^(1<<63))
	default:
		panic("numeric: cannot encode invalid value")
	}
}

// Decode reconstructs the logical value from its encoded form.
// It fails only when the byte width does not match the kind.
func Decode(kind Kind, b []byte) (Value, error) {
	if len(b) != kind.ByteWidth() {
		return Value{}, fmt.Errorf("numeric: decode %s: got %d bytes, want %d", kind, len(b), kind.ByteWidth())
	}
	switch kind {
	case KindInt32:
		return Int32Value(int32(binary.BigEndian.Uint32(b) ^ (1 << 31))), nil
	case KindInt64:
		return Int64Value(int64(binary.BigEndian.Uint64(b) ^ (1 << 63))), nil
	case KindFloat64:
		bits := sortableFloat64Bits(binary.BigEndian.Uint64(b) ^ (1 << 63))
		return Float64Value(math.Float64frombits(bits)), nil
	default:
		return Value{}, fmt.Errorf("numeric: decode: invalid kind %d", kind)
	}
}

// MustDecode is Decode for byte slices already known to be well formed,
// e.g. ordinal bytes handed back by a doc-values cursor.
func MustDecode(kind Kind, b []byte) Value {
	v, err := Decode(kind, b)
	if err != nil {
		panic(err)
	}
	return v
}

// sortableFloat64Bits maps IEEE-754 bits onto a monotonic uint64 whose
// signed interpretation orders like the source floats. The transform is an
// involution, so it is its own inverse on decode.
func sortableFloat64Bits(bits uint64) uint64 {
	if bits&(1<<63) != 0 {
		bits ^= 0x7fffffffffffffff
	}
	return bits
}
