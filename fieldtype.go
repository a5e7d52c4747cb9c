package pointfield

import (
	"github.com/hupe1980/pointfield/docvalues"
	"github.com/hupe1980/pointfield/index"
	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/query"
	"github.com/hupe1980/pointfield/schema"
)

// FieldType is the numeric point field type for one kind. It is stateless
// apart from the injected logger and safe for concurrent use; all mutable
// query-time state lives in per-traversal projectors.
type FieldType struct {
	kind   numeric.Kind
	logger *Logger
}

// NewFieldType creates the field type for a numeric kind.
func NewFieldType(kind numeric.Kind, optFns ...Option) *FieldType {
	o := options{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&o)
	}
	return &FieldType{kind: kind, logger: o.logger}
}

// Kind returns the numeric kind of the field type.
func (ft *FieldType) Kind() numeric.Kind { return ft.kind }

// checkConfig verifies the configuration belongs to this field type.
func (ft *FieldType) checkConfig(cfg *schema.FieldConfig) error {
	if cfg.Kind != ft.kind {
		return &ErrKindMismatch{Expected: ft.kind, Actual: cfg.Kind}
	}
	return nil
}

// RangeQuery builds the range query for textual bounds against the factory.
func (ft *FieldType) RangeQuery(f index.Factory, cfg *schema.FieldConfig, bounds query.Bounds) (index.Query, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	return query.NewBuilder(f).Range(cfg, bounds)
}

// ExactQuery builds an exact-match query for one external value.
func (ft *FieldType) ExactQuery(f index.Factory, cfg *schema.FieldConfig, external string) (index.Query, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	return query.NewBuilder(f).Exact(cfg, external)
}

// SetQuery builds a set-membership query for several external values.
func (ft *FieldType) SetQuery(f index.Factory, cfg *schema.FieldConfig, externals []string) (index.Query, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	return query.NewBuilder(f).Set(cfg, externals)
}

// FieldQuery builds the default query for one external value: exact when the
// field is indexed, a degenerate single-point range when it only has doc
// values.
func (ft *FieldType) FieldQuery(f index.Factory, cfg *schema.FieldConfig, external string) (index.Query, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	return query.NewBuilder(f).Field(cfg, external)
}

// SingleValueSource builds a per-traversal projector selecting one value per
// document from the field. For single-valued fields any selector matches
// trivially; multi-valued fields require doc values.
func (ft *FieldType) SingleValueSource(cfg *schema.FieldConfig, selectorName string, set docvalues.SortedSet) (*docvalues.Projector, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	if err := cfg.CheckProjectability(); err != nil {
		return nil, err
	}
	sel, err := docvalues.ParseSelector(selectorName)
	if err != nil {
		return nil, err
	}
	return docvalues.NewProjector(ft.kind, docvalues.Select(set, sel)), nil
}

// ReadableToIndexed parses an external value and returns its encoded point
// form.
func (ft *FieldType) ReadableToIndexed(cfg *schema.FieldConfig, external string) ([]byte, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	v, err := numeric.ParseValue(ft.kind, external)
	if err != nil {
		return nil, err
	}
	return numeric.Encode(v), nil
}

// IndexedToReadable renders an encoded point back to its readable decimal
// form.
func (ft *FieldType) IndexedToReadable(encoded []byte) (string, error) {
	v, err := numeric.Decode(ft.kind, encoded)
	if err != nil {
		return "", err
	}
	return numeric.FormatValue(v), nil
}
