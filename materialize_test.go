package pointfield

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/schema"
)

func repTypes(reps []Representation) []RepresentationType {
	types := make([]RepresentationType, len(reps))
	for i, r := range reps {
		types[i] = r.Type
	}
	return types
}

func TestCreateFieldsAllRepresentations(t *testing.T) {
	ft := NewFieldType(numeric.KindInt32)
	cfg := &schema.FieldConfig{
		Name: "age", Kind: numeric.KindInt32,
		Indexed: true, Stored: true, DocValues: true,
	}

	reps, err := ft.CreateFields(cfg, numeric.Int32Value(42), 1.0)
	require.NoError(t, err)
	assert.Equal(t,
		[]RepresentationType{RepIndexedPoint, RepNumericDocValue, RepStoredField},
		repTypes(reps))

	// Indexed point carries the order-preserving encoding.
	assert.Equal(t, numeric.Encode(numeric.Int32Value(42)), reps[0].Encoded)
	// Single-valued doc value carries plain two's complement bits.
	assert.Equal(t, int64(42), reps[1].Bits)
	// Stored copy is the native value.
	assert.Equal(t, int32(42), reps[2].Native.Int32())
}

func TestCreateFieldsFloatDocValueBits(t *testing.T) {
	ft := NewFieldType(numeric.KindFloat64)
	cfg := &schema.FieldConfig{Name: "price", Kind: numeric.KindFloat64, DocValues: true}

	reps, err := ft.CreateFields(cfg, numeric.Float64Value(1.5), 1.0)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, RepNumericDocValue, reps[0].Type)
	// IEEE-754 bits, not the sortable transform.
	assert.Equal(t, int64(math.Float64bits(1.5)), reps[0].Bits)
}

func TestCreateFieldsMultiValuedSortedSet(t *testing.T) {
	ft := NewFieldType(numeric.KindInt64)
	cfg := &schema.FieldConfig{
		Name: "scores", Kind: numeric.KindInt64, DocValues: true, MultiValued: true,
	}

	// One sorted-set entry per call; the caller aggregates.
	for _, v := range []int64{3, 7, 1} {
		reps, err := ft.CreateFields(cfg, numeric.Int64Value(v), 1.0)
		require.NoError(t, err)
		require.Len(t, reps, 1)
		assert.Equal(t, RepSortedSetDocValue, reps[0].Type)
		assert.Equal(t, numeric.Encode(numeric.Int64Value(v)), reps[0].Encoded)
	}
}

func TestCreateFieldsUnusedFieldDropped(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	ft := NewFieldType(numeric.KindInt32, WithLogger(logger))
	cfg := &schema.FieldConfig{Name: "ghost", Kind: numeric.KindInt32}

	reps, err := ft.CreateFields(cfg, numeric.Int32Value(1), 1.0)
	require.NoError(t, err)
	assert.Nil(t, reps)
	assert.Contains(t, buf.String(), "ghost")
}

func TestCreateFieldsBoostIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	ft := NewFieldType(numeric.KindInt32, WithLogger(logger))
	cfg := &schema.FieldConfig{Name: "age", Kind: numeric.KindInt32, Indexed: true}

	reps, err := ft.CreateFields(cfg, numeric.Int32Value(1), 2.5)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Contains(t, buf.String(), "boost")

	// Quiet at default levels.
	buf.Reset()
	quiet := NewFieldType(numeric.KindInt32, WithLogger(NewLogger(slog.NewTextHandler(&buf, nil))))
	_, err = quiet.CreateFields(cfg, numeric.Int32Value(1), 2.5)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestCreateFieldsRejectsNaN(t *testing.T) {
	ft := NewFieldType(numeric.KindFloat64)
	cfg := &schema.FieldConfig{Name: "price", Kind: numeric.KindFloat64, Indexed: true}

	_, err := ft.CreateFields(cfg, numeric.Float64Value(math.NaN()), 1.0)
	assert.ErrorIs(t, err, ErrNaNValue)
}

func TestReadableIndexedRoundTrip(t *testing.T) {
	ft := NewFieldType(numeric.KindFloat64)
	cfg := &schema.FieldConfig{Name: "price", Kind: numeric.KindFloat64, Indexed: true}

	encoded, err := ft.ReadableToIndexed(cfg, "-1.25")
	require.NoError(t, err)
	require.Len(t, encoded, 8)

	readable, err := ft.IndexedToReadable(encoded)
	require.NoError(t, err)
	assert.Equal(t, "-1.25", readable)
}

func TestStoredToIndexed(t *testing.T) {
	ft := NewFieldType(numeric.KindInt64)
	encoded, err := ft.StoredToIndexed(numeric.Int64Value(99))
	require.NoError(t, err)
	assert.Equal(t, numeric.Encode(numeric.Int64Value(99)), encoded)

	_, err = ft.StoredToIndexed(numeric.Int32Value(1))
	assert.Error(t, err)
}

// Materialized representations feed the collaborators directly: sanity-check
// that an indexed point lands searchable.
func TestMaterializedPointIsSearchable(t *testing.T) {
	ft := NewFieldType(numeric.KindInt32)
	cfg := &schema.FieldConfig{Name: "age", Kind: numeric.KindInt32, Indexed: true}

	mi := newSeededMemoryIndex(t, nil)
	reps, err := ft.CreateFields(cfg, numeric.Int32Value(33), 1.0)
	require.NoError(t, err)
	mi.Add(cfg.Name, reps[0].Encoded, 7)
	require.NoError(t, mi.Seal(context.Background()))

	q, err := ft.ExactQuery(mi, cfg, "33")
	require.NoError(t, err)
	got, err := q.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint32{7}, got.ToArray())
}
