// Package schema holds the per-field configuration of the point-field family
// and the capability checks other layers delegate to.
package schema

import (
	"fmt"

	"github.com/hupe1980/pointfield/numeric"
)

// FieldConfig describes one numeric field of the schema.
//
// Configurations are loaded by the schema subsystem, are immutable after
// load, and are referenced (never owned) by the codec, query, sort and
// projection layers.
type FieldConfig struct {
	Name        string
	Kind        numeric.Kind
	Indexed     bool
	Stored      bool
	DocValues   bool
	MultiValued bool

	// At most one of SortMissingFirst/SortMissingLast may be set.
	SortMissingFirst bool
	SortMissingLast  bool
}

// Validate checks the structural invariants of the configuration.
func (c *FieldConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("schema: field config without a name")
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("schema: field %q: invalid numeric kind", c.Name)
	}
	if c.SortMissingFirst && c.SortMissingLast {
		return fmt.Errorf("schema: field %q: sortMissingFirst and sortMissingLast are mutually exclusive", c.Name)
	}
	return nil
}

// CheckSortability reports whether the field can back a sort order.
// Point fields are never uninverted from the index, so sorting requires doc
// values on a single-valued field.
func (c *FieldConfig) CheckSortability() error {
	if !c.DocValues {
		return &UnsortableFieldError{Field: c.Name, Missing: "docValues"}
	}
	if c.MultiValued {
		return &UnsortableFieldError{Field: c.Name, Missing: "single-valued access (use a selector value source)"}
	}
	return nil
}

// CheckProjectability reports whether a single value can be selected from
// the field at query time. Multi-valued point fields require doc values;
// there is no uninversion fallback.
func (c *FieldConfig) CheckProjectability() error {
	if c.MultiValued && !c.DocValues {
		return &UnprojectableFieldError{Field: c.Name, Missing: "docValues"}
	}
	return nil
}

// CheckFacetability reports whether per-document values can be enumerated
// for faceting/statistics.
func (c *FieldConfig) CheckFacetability() error {
	if !c.DocValues && !c.Indexed {
		return &UnfacetableFieldError{Field: c.Name, Missing: "docValues or indexed"}
	}
	return nil
}

// Used reports whether any physical representation exists for the field.
// A field that is neither indexed, stored nor doc-valued is dropped.
func (c *FieldConfig) Used() bool {
	return c.Indexed || c.Stored || c.DocValues
}
