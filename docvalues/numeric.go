package docvalues

import (
	"iter"
	"sort"

	"github.com/hupe1980/pointfield/numeric"
)

// NumericColumn is an in-memory single-valued numeric doc-values column.
//
// Entries are stored as raw bits: the plain two's complement value for
// integer kinds and the IEEE-754 bits for floats. This is deliberately not
// the order-preserving point encoding; numeric doc-value consumers handle
// sort order themselves.
type NumericColumn struct {
	kind   numeric.Kind
	docIDs []uint32
	bits   []int64
	sorted bool
}

// NewNumericColumn creates an empty column for the given kind.
func NewNumericColumn(kind numeric.Kind) *NumericColumn {
	return &NumericColumn{kind: kind, sorted: true}
}

// Kind returns the numeric kind of the column.
func (c *NumericColumn) Kind() numeric.Kind { return c.kind }

// Add records the raw-bits entry for docID. A document holds at most one
// entry; single-valued fields enforce that upstream.
func (c *NumericColumn) Add(docID uint32, bits int64) {
	if c.sorted && len(c.docIDs) > 0 && docID < c.docIDs[len(c.docIDs)-1] {
		c.sorted = false
	}
	c.docIDs = append(c.docIDs, docID)
	c.bits = append(c.bits, bits)
}

// Get returns the value for docID, with ok=false when the document has no
// entry.
func (c *NumericColumn) Get(docID uint32) (numeric.Value, bool) {
	if !c.sorted {
		c.sortEntries()
	}
	i := sort.Search(len(c.docIDs), func(i int) bool { return c.docIDs[i] >= docID })
	if i == len(c.docIDs) || c.docIDs[i] != docID {
		return numeric.Value{}, false
	}
	return numeric.ValueFromRawBits(c.kind, c.bits[i]), true
}

// DocCount returns the number of entries in the column.
func (c *NumericColumn) DocCount() int { return len(c.docIDs) }

// All iterates the column's (docID, raw bits) entries in doc-ID order.
func (c *NumericColumn) All() iter.Seq2[uint32, int64] {
	if !c.sorted {
		c.sortEntries()
	}
	return func(yield func(uint32, int64) bool) {
		for i, docID := range c.docIDs {
			if !yield(docID, c.bits[i]) {
				return
			}
		}
	}
}

func (c *NumericColumn) sortEntries() {
	sort.Sort(&numericEntries{c})
	c.sorted = true
}

type numericEntries struct{ c *NumericColumn }

func (s *numericEntries) Len() int           { return len(s.c.docIDs) }
func (s *numericEntries) Less(i, j int) bool { return s.c.docIDs[i] < s.c.docIDs[j] }
func (s *numericEntries) Swap(i, j int) {
	s.c.docIDs[i], s.c.docIDs[j] = s.c.docIDs[j], s.c.docIDs[i]
	s.c.bits[i], s.c.bits[j] = s.c.bits[j], s.c.bits[i]
}
