package pointfield

import (
	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/schema"
)

// RepresentationType identifies a physical form of one logical field value.
type RepresentationType uint8

const (
	// RepIndexedPoint is the order-preserving encoded point for the index.
	RepIndexedPoint RepresentationType = iota + 1
	// RepSortedSetDocValue is an encoded entry of a multi-valued sorted set.
	RepSortedSetDocValue
	// RepNumericDocValue is a single-valued doc-value entry carrying raw
	// bits: the plain two's complement value for integers, the IEEE-754 bits
	// for floats. Deliberately not the order-preserving encoding.
	RepNumericDocValue
	// RepStoredField is the stored copy of the native logical value,
	// readable without decoding.
	RepStoredField
)

// String returns the string representation of the RepresentationType.
func (t RepresentationType) String() string {
	switch t {
	case RepIndexedPoint:
		return "IndexedPoint"
	case RepSortedSetDocValue:
		return "SortedSetDocValue"
	case RepNumericDocValue:
		return "NumericDocValue"
	case RepStoredField:
		return "StoredField"
	default:
		return "Unknown"
	}
}

// Representation is one physical form produced for a logical value. Exactly
// one payload field is meaningful per type: Encoded for points and sorted-set
// entries, Bits for numeric doc values, Native for stored fields.
type Representation struct {
	Type    RepresentationType
	Encoded []byte
	Bits    int64
	Native  numeric.Value
}

// CreateFields materializes one logical value into the physical
// representations the field configuration asks for.
//
// A field that is neither indexed, stored nor doc-valued yields nil; the
// value is dropped with a trace notice, not an error. Multi-valued doc
// values emit one sorted-set entry per call; the caller aggregates calls
// into the document's set. Document/field boost is not supported for point
// fields: a non-default boost is ignored with at most a trace notice.
func (ft *FieldType) CreateFields(cfg *schema.FieldConfig, v numeric.Value, boost float32) ([]Representation, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	if v.Kind() != ft.kind {
		return nil, &ErrKindMismatch{Expected: ft.kind, Actual: v.Kind()}
	}
	if v.IsNaN() {
		return nil, ErrNaNValue
	}

	if !cfg.Used() {
		if ft.logger.traceEnabled() {
			ft.logger.Trace("ignoring unindexed/unstored field", "field", cfg.Name)
		}
		return nil, nil
	}

	if boost != 1.0 && ft.logger.traceEnabled() {
		ft.logger.Trace("cannot use document/field boost for point field", "field", cfg.Name, "boost", boost)
	}

	reps := make([]Representation, 0, 3)
	if cfg.Indexed {
		reps = append(reps, Representation{Type: RepIndexedPoint, Encoded: numeric.Encode(v)})
	}
	if cfg.DocValues {
		if cfg.MultiValued {
			reps = append(reps, Representation{Type: RepSortedSetDocValue, Encoded: numeric.Encode(v)})
		} else {
			reps = append(reps, Representation{Type: RepNumericDocValue, Bits: v.RawBits()})
		}
	}
	if cfg.Stored {
		reps = append(reps, Representation{Type: RepStoredField, Native: v})
	}
	return reps, nil
}

// StoredToIndexed re-encodes a stored native value into its indexed point
// form, e.g. when rebuilding an index from stored fields.
func (ft *FieldType) StoredToIndexed(v numeric.Value) ([]byte, error) {
	if v.Kind() != ft.kind {
		return nil, &ErrKindMismatch{Expected: ft.kind, Actual: v.Kind()}
	}
	if v.IsNaN() {
		return nil, ErrNaNValue
	}
	return numeric.Encode(v), nil
}
