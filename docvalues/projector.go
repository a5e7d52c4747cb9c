package docvalues

import (
	"fmt"

	"github.com/hupe1980/pointfield/numeric"
)

// AccessOrderError indicates a projection cursor queried with a doc ID lower
// than the last visited one. This is a caller programming error, not a
// recoverable condition: silently serving stale data would corrupt sort and
// facet results undetectably, so the violation fails loudly.
type AccessOrderError struct {
	LastDocID uint32
	DocID     uint32
}

func (e *AccessOrderError) Error() string {
	return fmt.Sprintf("docs out of order: lastDocID=%d docID=%d", e.LastDocID, e.DocID)
}

// Projector exposes a multi-valued field as a single-valued numeric view for
// one segment traversal.
//
// A Projector holds query-scoped mutable cursor state: doc IDs must be
// non-decreasing across calls, and one instance serves exactly one
// traversal. Callers needing parallel traversals create one projector each.
type Projector struct {
	kind      numeric.Kind
	view      SortedSetView
	lastDocID uint32
}

// NewProjector creates a projector decoding values of the given kind from
// the selected view.
func NewProjector(kind numeric.Kind, view SortedSetView) *Projector {
	return &Projector{kind: kind, view: view}
}

// advance enforces the sequential-access contract and positions the view.
func (p *Projector) advance(docID uint32) (bool, error) {
	if docID < p.lastDocID {
		return false, &AccessOrderError{LastDocID: p.lastDocID, DocID: docID}
	}
	p.lastDocID = docID
	return p.view.Advance(docID), nil
}

// ValueFor returns the selected value for docID, with ok=false when the
// document has no values for the field.
func (p *Projector) ValueFor(docID uint32) (numeric.Value, bool, error) {
	exists, err := p.advance(docID)
	if err != nil || !exists {
		return numeric.Value{}, false, err
	}
	v, err := numeric.Decode(p.kind, p.view.CurrentOrdinalBytes())
	if err != nil {
		return numeric.Value{}, false, err
	}
	return v, true, nil
}

// Exists reports whether docID has a value, without decoding.
func (p *Projector) Exists(docID uint32) (bool, error) {
	return p.advance(docID)
}

// FilledValue is the result cell of a ValueFiller. The same cell is
// overwritten on every Fill call; callers must copy Value out if they need
// it past the next call, and must never retain the pointer across documents
// expecting stable contents.
type FilledValue struct {
	Value  numeric.Value
	Exists bool
}

// ValueFiller is the bulk-consumer variant of ValueFor: one mutable result
// cell reused across calls so per-document projection does not allocate.
type ValueFiller struct {
	p    *Projector
	cell FilledValue
}

// Filler returns a ValueFiller bound to the projector's cursor.
func (p *Projector) Filler() *ValueFiller {
	return &ValueFiller{p: p}
}

// Cell returns the shared result cell.
func (f *ValueFiller) Cell() *FilledValue { return &f.cell }

// Fill overwrites the cell with the presence/value pair for docID.
func (f *ValueFiller) Fill(docID uint32) error {
	v, ok, err := f.p.ValueFor(docID)
	if err != nil {
		return err
	}
	f.cell.Value = v
	f.cell.Exists = ok
	return nil
}
