package index

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// ErrNotSealed is returned when a query executes against an index that has
// pending unsorted writes.
var ErrNotSealed = errors.New("index: not sealed, call Seal before querying")

// MemoryIndex is an in-memory point index over encoded values.
//
// Layout is columnar per field: an encoded-value column and an aligned doc-ID
// column, sorted by value bytes on Seal. Range queries binary-search the
// value column and collect the aligned doc IDs into a roaring bitmap.
//
// Writes and Seal are single-writer; after Seal the sorted columns are
// immutable and queries can run concurrently.
type MemoryIndex struct {
	fields map[string]*pointColumn
	sealed bool
}

// pointColumn stores aligned (encoded value, docID) pairs for one field.
// Invariant: len(values) == len(docIDs); sorted by value bytes once sealed,
// ties broken by docID for deterministic iteration.
type pointColumn struct {
	values [][]byte
	docIDs []uint32
}

// NewMemoryIndex creates an empty in-memory point index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{fields: make(map[string]*pointColumn)}
}

// Add indexes one encoded point for docID. Multi-valued fields call Add once
// per value. The encoded slice is retained; callers must not mutate it.
func (mi *MemoryIndex) Add(field string, encoded []byte, docID uint32) {
	col, ok := mi.fields[field]
	if !ok {
		col = &pointColumn{}
		mi.fields[field] = col
	}
	col.values = append(col.values, encoded)
	col.docIDs = append(col.docIDs, docID)
	mi.sealed = false
}

// Seal sorts all field columns. Fields are processed in parallel; the first
// context cancellation aborts the remaining work.
func (mi *MemoryIndex) Seal(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, col := range mi.fields {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			col.sort()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	mi.sealed = true
	return nil
}

// NumDocs returns the number of indexed entries for a field.
func (mi *MemoryIndex) NumDocs(field string) int {
	col, ok := mi.fields[field]
	if !ok {
		return 0
	}
	return len(col.docIDs)
}

func (c *pointColumn) sort() {
	sort.Sort((*byValue)(c))
}

// lowerBound returns the first position whose value is >= target.
func (c *pointColumn) lowerBound(target []byte) int {
	return sort.Search(len(c.values), func(i int) bool {
		return bytes.Compare(c.values[i], target) >= 0
	})
}

// upperBound returns the first position whose value is > target.
func (c *pointColumn) upperBound(target []byte) int {
	return sort.Search(len(c.values), func(i int) bool {
		return bytes.Compare(c.values[i], target) > 0
	})
}

type byValue pointColumn

func (s *byValue) Len() int { return len(s.values) }

func (s *byValue) Less(i, j int) bool {
	if c := bytes.Compare(s.values[i], s.values[j]); c != 0 {
		return c < 0
	}
	return s.docIDs[i] < s.docIDs[j]
}

func (s *byValue) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.docIDs[i], s.docIDs[j] = s.docIDs[j], s.docIDs[i]
}

// NewExactQuery implements Factory.
func (mi *MemoryIndex) NewExactQuery(field string, encoded []byte) Query {
	return &rangeQuery{idx: mi, field: field, low: encoded, high: encoded}
}

// NewRangeQuery implements Factory.
func (mi *MemoryIndex) NewRangeQuery(field string, lowEncoded, highEncoded []byte) Query {
	return &rangeQuery{idx: mi, field: field, low: lowEncoded, high: highEncoded}
}

// NewSetQuery implements Factory.
func (mi *MemoryIndex) NewSetQuery(field string, encoded [][]byte) Query {
	return &setQuery{idx: mi, field: field, members: encoded}
}

type rangeQuery struct {
	idx       *MemoryIndex
	field     string
	low, high []byte
}

func (q *rangeQuery) Field() string { return q.field }

func (q *rangeQuery) String() string {
	return fmt.Sprintf("range(%s: %x..%x)", q.field, q.low, q.high)
}

func (q *rangeQuery) Execute(ctx context.Context) (*roaring.Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !q.idx.sealed {
		return nil, ErrNotSealed
	}
	result := roaring.New()
	col, ok := q.idx.fields[q.field]
	if !ok {
		return result, nil
	}
	lo := col.lowerBound(q.low)
	hi := col.upperBound(q.high)
	if lo < hi {
		result.AddMany(col.docIDs[lo:hi])
	}
	return result, nil
}

type setQuery struct {
	idx     *MemoryIndex
	field   string
	members [][]byte
}

func (q *setQuery) Field() string { return q.field }

func (q *setQuery) String() string {
	return fmt.Sprintf("set(%s: %d members)", q.field, len(q.members))
}

func (q *setQuery) Execute(ctx context.Context) (*roaring.Bitmap, error) {
	if !q.idx.sealed {
		return nil, ErrNotSealed
	}
	result := roaring.New()
	for _, member := range q.members {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := q.idx.NewExactQuery(q.field, member).Execute(ctx)
		if err != nil {
			return nil, err
		}
		result.Or(part)
	}
	return result, nil
}
