package numeric_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/testutil"
)

// Randomized round-trip and order-preservation checks across all kinds.
func TestCodecRandomized(t *testing.T) {
	rng := testutil.NewRNG(1234)

	for _, kind := range []numeric.Kind{numeric.KindInt32, numeric.KindInt64, numeric.KindFloat64} {
		t.Run(kind.String(), func(t *testing.T) {
			values := rng.Values(kind, 2000)

			for _, v := range values {
				got, err := numeric.Decode(kind, numeric.Encode(v))
				require.NoError(t, err)
				require.Equal(t, v, got)
			}

			sort.Slice(values, func(i, j int) bool {
				return values[i].Compare(values[j]) < 0
			})
			for i := 1; i < len(values); i++ {
				lo, hi := values[i-1], values[i]
				c := bytes.Compare(numeric.Encode(lo), numeric.Encode(hi))
				if lo.Compare(hi) == 0 {
					require.Zero(t, c, "equal values must encode identically")
				} else {
					require.Negative(t, c, "lo=%v hi=%v", lo, hi)
				}
			}
		})
	}
}
