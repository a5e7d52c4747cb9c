package schema

import "fmt"

// UnsortableFieldError indicates a field configuration that cannot back a
// sort order. It is a request rejection, never retryable.
type UnsortableFieldError struct {
	Field   string
	Missing string
}

func (e *UnsortableFieldError) Error() string {
	return fmt.Sprintf("field %q cannot be sorted: missing %s", e.Field, e.Missing)
}

// UnprojectableFieldError indicates a multi-valued field without the doc
// values needed to select a single value at query time.
type UnprojectableFieldError struct {
	Field   string
	Missing string
}

func (e *UnprojectableFieldError) Error() string {
	return fmt.Sprintf("field %q cannot provide a single value: missing %s", e.Field, e.Missing)
}

// UnfacetableFieldError indicates a field without any representation that
// faceting/statistics could enumerate.
type UnfacetableFieldError struct {
	Field   string
	Missing string
}

func (e *UnfacetableFieldError) Error() string {
	return fmt.Sprintf("field %q cannot be faceted: missing %s", e.Field, e.Missing)
}
