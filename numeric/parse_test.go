package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		input   string
		want    Value
		wantErr bool
	}{
		{"Int32", KindInt32, "42", Int32Value(42), false},
		{"Int32_Negative", KindInt32, "-42", Int32Value(-42), false},
		{"Int32_PlusSign", KindInt32, "+7", Int32Value(7), false},
		{"Int32_Min", KindInt32, "-2147483648", Int32Value(math.MinInt32), false},
		{"Int32_Max", KindInt32, "2147483647", Int32Value(math.MaxInt32), false},
		{"Int32_Overflow", KindInt32, "2147483648", Value{}, true},
		{"Int32_Float", KindInt32, "4.5", Value{}, true},
		{"Int32_Garbage", KindInt32, "abc", Value{}, true},
		{"Int64", KindInt64, "-9223372036854775808", Int64Value(math.MinInt64), false},
		{"Int64_Garbage", KindInt64, "12x", Value{}, true},
		{"Float64", KindFloat64, "1.5", Float64Value(1.5), false},
		{"Float64_Exponent", KindFloat64, "-2.5e10", Float64Value(-2.5e10), false},
		{"Float64_Inf", KindFloat64, "Infinity", Float64Value(math.Inf(1)), false},
		{"Float64_NegInf", KindFloat64, "-Inf", Float64Value(math.Inf(-1)), false},
		{"Float64_NaN", KindFloat64, "NaN", Value{}, true},
		{"Float64_Garbage", KindFloat64, "1.2.3", Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValueLenient(t *testing.T) {
	v, err := ParseValueLenient(KindInt32, "3.9")
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.Int32())

	v, err = ParseValueLenient(KindInt64, "-2.5")
	require.NoError(t, err)
	assert.Equal(t, int64(-2), v.Int64())

	_, err = ParseValueLenient(KindInt32, "abc")
	assert.Error(t, err)

	// Plain integers still parse exactly.
	v, err = ParseValueLenient(KindInt32, "10")
	require.NoError(t, err)
	assert.Equal(t, int32(10), v.Int32())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "42", FormatValue(Int32Value(42)))
	assert.Equal(t, "-7", FormatValue(Int64Value(-7)))
	assert.Equal(t, "1.5", FormatValue(Float64Value(1.5)))
	assert.Equal(t, "+Inf", FormatValue(Float64Value(math.Inf(1))))
}
