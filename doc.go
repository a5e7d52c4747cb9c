// Package pointfield implements the numeric field-type layer of a document
// search engine's schema subsystem.
//
// A FieldType ties together the pieces a schema needs for one numeric kind:
// the order-preserving point codec, range/exact/set query construction with
// correct boundary-inclusivity arithmetic, sort-field construction with
// directional missing-value substitution, single-value projection of
// multi-valued doc-value sets, and the materialization of a logical value
// into its physical representations (indexed point, doc-value entry, stored
// copy).
//
// The underlying range-search index and the doc-values storage engine are
// external collaborators, consumed through the interfaces in the index and
// docvalues packages.
package pointfield
