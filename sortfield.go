package pointfield

import (
	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/schema"
)

// SortField is a sort specification over one numeric field. Missing holds
// the substitute value positioning documents without the field, or nil for
// the engine default.
type SortField struct {
	Field   string
	Kind    numeric.Kind
	Reverse bool
	Missing *numeric.Value
}

// SortFieldFor builds the sort specification for the field. top selects
// descending-from-top order, otherwise ascending.
//
// The missing-value substitute depends on both the configured policy and
// the direction: sortMissingLast needs the kind's minimum under a
// descending sort so absent documents sink to the end, and the kind's
// maximum under an ascending one; sortMissingFirst is the mirror image.
// With neither flag set the engine default applies.
func (ft *FieldType) SortFieldFor(cfg *schema.FieldConfig, top bool) (*SortField, error) {
	if err := ft.checkConfig(cfg); err != nil {
		return nil, err
	}
	if err := cfg.CheckSortability(); err != nil {
		return nil, err
	}

	var missing *numeric.Value
	switch {
	case cfg.SortMissingLast:
		missing = missingSubstitute(ft.kind, top)
	case cfg.SortMissingFirst:
		missing = missingSubstitute(ft.kind, !top)
	}

	return &SortField{
		Field:   cfg.Name,
		Kind:    ft.kind,
		Reverse: top,
		Missing: missing,
	}, nil
}

// missingSubstitute returns the extreme placing missing documents last for
// the given direction: the minimum when sorting descending-from-top, the
// maximum when ascending.
func missingSubstitute(kind numeric.Kind, top bool) *numeric.Value {
	var v numeric.Value
	if top {
		v = kind.MinValue()
	} else {
		v = kind.MaxValue()
	}
	return &v
}
