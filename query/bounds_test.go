package query

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/schema"
)

func ptr(s string) *string { return &s }

func intCfg(name string) *schema.FieldConfig {
	return &schema.FieldConfig{Name: name, Kind: numeric.KindInt32, Indexed: true}
}

func TestResolveBoundsInclusivity(t *testing.T) {
	cfg := intCfg("age")

	tests := []struct {
		name     string
		bounds   Bounds
		wantLow  int32
		wantHigh int32
	}{
		{
			"ExclusiveMin",
			Bounds{Min: ptr("5"), Max: ptr("10"), MinInclusive: false, MaxInclusive: true},
			6, 10,
		},
		{
			"ExclusiveBoth",
			Bounds{Min: ptr("5"), Max: ptr("10"), MinInclusive: false, MaxInclusive: false},
			6, 9,
		},
		{
			"InclusiveBoth",
			Bounds{Min: ptr("5"), Max: ptr("10"), MinInclusive: true, MaxInclusive: true},
			5, 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := ResolveBounds(cfg, tt.bounds)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLow, iv.Low.Int32())
			assert.Equal(t, tt.wantHigh, iv.High.Int32())
			assert.False(t, iv.Empty())
		})
	}
}

func TestResolveBoundsOpen(t *testing.T) {
	iv, err := ResolveBounds(intCfg("age"), Bounds{})
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), iv.Low.Int32())
	assert.Equal(t, int32(math.MaxInt32), iv.High.Int32())

	fcfg := &schema.FieldConfig{Name: "price", Kind: numeric.KindFloat64}
	iv, err = ResolveBounds(fcfg, Bounds{})
	require.NoError(t, err)
	assert.Equal(t, math.Inf(-1), iv.Low.Float64())
	assert.Equal(t, math.Inf(1), iv.High.Float64())
}

func TestResolveBoundsOpenEndNeverAdjusted(t *testing.T) {
	// Exclusivity applies only to supplied bounds; the open end stays at the
	// kind's extreme even with the flag unset.
	iv, err := ResolveBounds(intCfg("age"), Bounds{Max: ptr("10"), MaxInclusive: false})
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), iv.Low.Int32())
	assert.Equal(t, int32(9), iv.High.Int32())
}

func TestResolveBoundsExtremeAdjacency(t *testing.T) {
	// An exclusive bound already at the kind's extreme cannot step; the
	// interval is canonically empty instead of wrapping around.
	iv, err := ResolveBounds(intCfg("age"), Bounds{Min: ptr("2147483647"), MinInclusive: false})
	require.NoError(t, err)
	assert.True(t, iv.Empty())

	iv, err = ResolveBounds(intCfg("age"), Bounds{Max: ptr("-2147483648"), MaxInclusive: false})
	require.NoError(t, err)
	assert.True(t, iv.Empty())
}

func TestResolveBoundsFloatAdjacency(t *testing.T) {
	cfg := &schema.FieldConfig{Name: "price", Kind: numeric.KindFloat64}

	iv, err := ResolveBounds(cfg, Bounds{Min: ptr("1.0"), MinInclusive: false})
	require.NoError(t, err)
	low := iv.Low.Float64()
	assert.Greater(t, low, 1.0)
	assert.Equal(t, math.Nextafter(1.0, math.Inf(1)), low)

	iv, err = ResolveBounds(cfg, Bounds{Max: ptr("1.0"), MaxInclusive: false})
	require.NoError(t, err)
	assert.Equal(t, math.Nextafter(1.0, math.Inf(-1)), iv.High.Float64())
}

func TestResolveBoundsEmptyIntervalLegal(t *testing.T) {
	iv, err := ResolveBounds(intCfg("age"), Bounds{
		Min: ptr("10"), Max: ptr("5"), MinInclusive: true, MaxInclusive: true,
	})
	require.NoError(t, err)
	assert.True(t, iv.Empty())
}

func TestResolveBoundsParseError(t *testing.T) {
	_, err := ResolveBounds(intCfg("age"), Bounds{Min: ptr("abc"), MinInclusive: true})
	require.Error(t, err)

	var bpe *BoundParseError
	require.True(t, errors.As(err, &bpe))
	assert.Equal(t, "age", bpe.Field)
	assert.Equal(t, "abc", bpe.Token)
	assert.NotNil(t, errors.Unwrap(bpe))
}
