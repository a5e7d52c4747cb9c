// Package docvalues projects multi-valued, sorted per-document value sets
// down to single numeric values for sorting and function evaluation.
//
// The storage engine that persists doc values is an external collaborator;
// this package fixes the cursor contracts it must satisfy and provides an
// in-memory implementation for tests and embedded use.
package docvalues

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Selector picks one representative value from a multi-valued sorted set.
type Selector uint8

const (
	// SelectorLowest picks the smallest value (first ordinal) per document.
	SelectorLowest Selector = iota
	// SelectorHighest picks the largest value (last ordinal) per document.
	SelectorHighest
)

// String returns the string representation of the Selector.
func (s Selector) String() string {
	switch s {
	case SelectorLowest:
		return "lowest"
	case SelectorHighest:
		return "highest"
	default:
		return "unknown"
	}
}

// UnsupportedSelectorError indicates an unrecognized selection policy name.
type UnsupportedSelectorError struct {
	Name string
}

func (e *UnsupportedSelectorError) Error() string {
	return fmt.Sprintf("unsupported single-value selector %q", e.Name)
}

// ParseSelector maps a policy name onto a Selector. The min/max aliases are
// accepted alongside the canonical names; matching is case-insensitive.
func ParseSelector(name string) (Selector, error) {
	switch strings.ToLower(name) {
	case "lowest", "min":
		return SelectorLowest, nil
	case "highest", "max":
		return SelectorHighest, nil
	default:
		return 0, &UnsupportedSelectorError{Name: name}
	}
}

// SortedSet is a per-segment cursor over the multi-valued sorted value sets
// of one field. Advance may only be called with non-decreasing doc IDs and
// is idempotent for repeated IDs. Ordinal(i) returns the encoded bytes of
// the i-th smallest value of the current document; the returned slice is
// only valid until the next Advance.
type SortedSet interface {
	Advance(docID uint32) bool
	Count() int
	Ordinal(i int) []byte
}

// SortedSetView is a SortedSet reduced to one value per document by a
// selection policy. CurrentOrdinalBytes is only valid after an Advance that
// returned true and until the next Advance.
type SortedSetView interface {
	Advance(docID uint32) bool
	CurrentOrdinalBytes() []byte
}

// Select wraps a sorted set into a single-valued view: SelectorLowest picks
// the first ordinal, SelectorHighest the last. Selection happens at the
// cursor layer; consumers only decode the selected bytes.
func Select(set SortedSet, sel Selector) SortedSetView {
	return &selectedView{set: set, sel: sel}
}

type selectedView struct {
	set SortedSet
	sel Selector
}

func (v *selectedView) Advance(docID uint32) bool {
	return v.set.Advance(docID)
}

func (v *selectedView) CurrentOrdinalBytes() []byte {
	if v.sel == SelectorHighest {
		return v.set.Ordinal(v.set.Count() - 1)
	}
	return v.set.Ordinal(0)
}

// MemorySortedSet is an in-memory sorted-set doc-values store. Values are
// added encoded and kept sorted per document on Seal; View hands out
// independent cursors, one per traversal.
type MemorySortedSet struct {
	docs   map[uint32][][]byte
	docIDs []uint32
	sealed bool
}

// NewMemorySortedSet creates an empty store.
func NewMemorySortedSet() *MemorySortedSet {
	return &MemorySortedSet{docs: make(map[uint32][][]byte)}
}

// Add records one encoded value for docID. The slice is retained.
func (m *MemorySortedSet) Add(docID uint32, encoded []byte) {
	if _, ok := m.docs[docID]; !ok {
		m.docIDs = append(m.docIDs, docID)
	}
	m.docs[docID] = append(m.docs[docID], encoded)
	m.sealed = false
}

// Seal sorts each document's value set and deduplicates equal entries,
// matching sorted-set semantics.
func (m *MemorySortedSet) Seal() {
	for docID, vals := range m.docs {
		sort.Slice(vals, func(i, j int) bool {
			return bytes.Compare(vals[i], vals[j]) < 0
		})
		deduped := vals[:0]
		for i, v := range vals {
			if i == 0 || !bytes.Equal(v, vals[i-1]) {
				deduped = append(deduped, v)
			}
		}
		m.docs[docID] = deduped
	}
	sort.Slice(m.docIDs, func(i, j int) bool { return m.docIDs[i] < m.docIDs[j] })
	m.sealed = true
}

// DocCount returns the number of documents holding at least one value.
func (m *MemorySortedSet) DocCount() int { return len(m.docIDs) }

// DocIDs returns the IDs of all documents holding values, ascending once
// the store is sealed. The slice is owned by the store.
func (m *MemorySortedSet) DocIDs() []uint32 { return m.docIDs }

// View returns a fresh cursor over the store. One cursor serves exactly one
// traversal; concurrent traversals each take their own.
func (m *MemorySortedSet) View() SortedSet {
	return &memoryCursor{store: m}
}

type memoryCursor struct {
	store   *MemorySortedSet
	current [][]byte
}

func (c *memoryCursor) Advance(docID uint32) bool {
	c.current = c.store.docs[docID]
	return len(c.current) > 0
}

func (c *memoryCursor) Count() int { return len(c.current) }

func (c *memoryCursor) Ordinal(i int) []byte { return c.current[i] }
