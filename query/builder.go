package query

import (
	"github.com/hupe1980/pointfield/index"
	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/schema"
)

// Builder constructs index queries for point fields. It is stateless apart
// from the factory reference and safe for concurrent use.
type Builder struct {
	factory index.Factory
}

// NewBuilder creates a Builder emitting queries through the given factory.
func NewBuilder(factory index.Factory) *Builder {
	return &Builder{factory: factory}
}

// Range resolves the textual bounds and builds the closed range query over
// encoded points.
func (b *Builder) Range(cfg *schema.FieldConfig, bounds Bounds) (index.Query, error) {
	iv, err := ResolveBounds(cfg, bounds)
	if err != nil {
		return nil, err
	}
	return b.factory.NewRangeQuery(cfg.Name, numeric.Encode(iv.Low), numeric.Encode(iv.High)), nil
}

// Exact parses the external value and builds an exact-match query.
func (b *Builder) Exact(cfg *schema.FieldConfig, external string) (index.Query, error) {
	v, err := numeric.ParseValue(cfg.Kind, external)
	if err != nil {
		return nil, &BoundParseError{Field: cfg.Name, Token: external, cause: err}
	}
	return b.factory.NewExactQuery(cfg.Name, numeric.Encode(v)), nil
}

// Set parses the external values and builds a set-membership query.
func (b *Builder) Set(cfg *schema.FieldConfig, externals []string) (index.Query, error) {
	encoded := make([][]byte, 0, len(externals))
	for _, external := range externals {
		v, err := numeric.ParseValue(cfg.Kind, external)
		if err != nil {
			return nil, &BoundParseError{Field: cfg.Name, Token: external, cause: err}
		}
		encoded = append(encoded, numeric.Encode(v))
	}
	return b.factory.NewSetQuery(cfg.Name, encoded), nil
}

// Field builds the default query for a single external value: an exact
// query when the field is indexed, otherwise a degenerate single-point
// closed range so that docValues-only fields remain queryable.
func (b *Builder) Field(cfg *schema.FieldConfig, external string) (index.Query, error) {
	if !cfg.Indexed && cfg.DocValues {
		inclusive := Bounds{
			Min: &external, Max: &external,
			MinInclusive: true, MaxInclusive: true,
		}
		return b.Range(cfg, inclusive)
	}
	return b.Exact(cfg, external)
}
